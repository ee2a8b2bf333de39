// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scimtest is an in-memory enterprise SCIM directory served over
// HTTP. It backs the adapter and service tests and the scim-stub binary.
//
// A [Directory] holds users in insertion order, answers the four endpoints
// the client uses (list, probe, get, patch roles) and can be told to fail or
// hang individual requests. Every request it receives is recorded.
package scimtest

import (
	"bytes"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/models"
)

// MaxPageSize is the largest count the directory honours.
const MaxPageSize = 100

// Request is a recorded incoming request.
type Request struct {
	Method  string
	Path    string
	RawPath string
	Query   url.Values
	Header  http.Header
	Body    []byte
}

// Directory is a fake enterprise directory. The zero value is not usable;
// construct it with [NewDirectory].
type Directory struct {
	enterprise string
	token      string
	logger     *logger.Logger
	now        func() time.Time

	mu            sync.Mutex
	users         []models.ScimUser
	probeFailure  int
	pageFailures  map[int]int
	pageHangs     map[int]bool
	userFailures  map[string]int
	patchFailures map[string]int
	requests      []Request
}

// NewDirectory returns a directory for enterprise that accepts only token.
func NewDirectory(enterprise, token string, users ...models.ScimUser) *Directory {
	return &Directory{
		enterprise:    enterprise,
		token:         token,
		logger:        logger.Nop(),
		now:           time.Now,
		users:         slices.Clone(users),
		pageFailures:  make(map[int]int),
		pageHangs:     make(map[int]bool),
		userFailures:  make(map[string]int),
		patchFailures: make(map[string]int),
	}
}

// WithLogger makes the directory log every request through l.
func (d *Directory) WithLogger(l *logger.Logger) *Directory {
	d.logger = l
	return d
}

// Enterprise returns the slug the directory answers for.
func (d *Directory) Enterprise() string { return d.enterprise }

// Token returns the only bearer token the directory accepts.
func (d *Directory) Token() string { return d.token }

// AddUsers appends users.
func (d *Directory) AddUsers(users ...models.ScimUser) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, users...)
}

// Users returns a copy of all users in order.
func (d *Directory) Users() []models.ScimUser {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.users)
}

// User returns the user with the given id.
func (d *Directory) User(id string) (models.ScimUser, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOf(id)
	if i < 0 {
		return models.ScimUser{}, false
	}
	return d.users[i], true
}

// FailProbe makes the count=1 probe answer with status.
func (d *Directory) FailProbe(status int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.probeFailure = status
}

// FailPage makes the page starting at startIndex answer with status.
func (d *Directory) FailPage(startIndex, status int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pageFailures[startIndex] = status
}

// HangPage makes the page starting at startIndex block until the client
// gives up on it.
func (d *Directory) HangPage(startIndex int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pageHangs[startIndex] = true
}

// FailUser makes GET /Users/{id} answer with status.
func (d *Directory) FailUser(id string, status int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userFailures[id] = status
}

// FailPatch makes PATCH /Users/{id} answer with status.
func (d *Directory) FailPatch(id string, status int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.patchFailures[id] = status
}

// Requests returns every request received so far.
func (d *Directory) Requests() []Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.requests)
}

// PageRequests returns the startIndex/count pairs of all paged list
// requests, sorted by startIndex. Probe requests are not included.
func (d *Directory) PageRequests() []models.PageRequest {
	var pages []models.PageRequest
	for _, r := range d.Requests() {
		if r.Method != http.MethodGet || !r.Query.Has("startIndex") {
			continue
		}
		pages = append(pages, models.PageRequest{
			StartIndex: atoiDefault(r.Query.Get("startIndex"), 0),
			Count:      atoiDefault(r.Query.Get("count"), 0),
		})
	}
	slices.SortFunc(pages, func(a, b models.PageRequest) int { return a.StartIndex - b.StartIndex })
	return pages
}

// CountRequests returns how many recorded requests used method on path.
func (d *Directory) CountRequests(method, path string) int {
	n := 0
	for _, r := range d.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (d *Directory) record(r *http.Request, body []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		RawPath: r.URL.EscapedPath(),
		Query:   r.URL.Query(),
		Header:  r.Header.Clone(),
		Body:    bytes.Clone(body),
	})
}

// indexOf must be called with d.mu held.
func (d *Directory) indexOf(id string) int {
	return slices.IndexFunc(d.users, func(u models.ScimUser) bool { return u.ID == id })
}
