// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/scimtest"
	"github.com/MKhiriev/go-scim-owner/models"
)

// newTestAdapter creates a scimAdapter aimed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *scimAdapter {
	t.Helper()
	a, err := NewSCIMAdapter(config.ClientAdapter{APIURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*scimAdapter)
}

func newDirectoryServer(t *testing.T, n int) (*scimtest.Directory, *scimAdapter) {
	t.Helper()
	d := scimtest.NewDirectory("acme", "ghp_test", scimtest.GenerateUsers(n, 10)...)
	srv := httptest.NewServer(d.Handler())
	t.Cleanup(srv.Close)

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("acme", "ghp_test")
	return d, a
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewSCIMAdapter_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full", raw: "https://api.github.com/", want: "https://api.github.com"},
		{name: "no scheme", raw: "ghe.example.com/api/v3", want: "https://ghe.example.com/api/v3"},
		{name: "http kept", raw: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewSCIMAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestCredentials(t *testing.T) {
	a := newTestAdapter(t, "http://localhost")
	assert.Equal(t, "", a.DirectoryID())

	a.SetCredentials(" acme ", " tok ")
	assert.Equal(t, "acme", a.DirectoryID())
	assert.Equal(t, "tok", a.token)

	a.Reset()
	assert.Equal(t, "", a.DirectoryID())

	_, err := a.ProbeUsers(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// ── requests ────────────────────────────────────────────────────────────────

func TestProbeUsers_SendsHeaders(t *testing.T) {
	d, a := newDirectoryServer(t, 42)

	list, err := a.ProbeUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, list.TotalResults)
	assert.Len(t, list.Resources, 1)

	reqs := d.Requests()
	require.Len(t, reqs, 1)
	r := reqs[0]
	assert.Equal(t, http.MethodGet, r.Method)
	assert.Equal(t, "/scim/v2/enterprises/acme/Users", r.Path)
	assert.Equal(t, "1", r.Query.Get("count"))
	assert.False(t, r.Query.Has("startIndex"))
	assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
	assert.Equal(t, "application/scim+json", r.Header.Get("Accept"))
	assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
}

func TestListUsers_Page(t *testing.T) {
	d, a := newDirectoryServer(t, 250)

	list, err := a.ListUsers(context.Background(), models.PageRequest{StartIndex: 101, Count: 100})
	require.NoError(t, err)
	assert.Equal(t, 250, list.TotalResults)
	require.Len(t, list.Resources, 100)
	assert.Equal(t, scimtest.UserID(101), list.Resources[0].ID)
	assert.Equal(t, []models.PageRequest{{StartIndex: 101, Count: 100}}, d.PageRequests())
}

func TestGetUser(t *testing.T) {
	_, a := newDirectoryServer(t, 3)

	u, err := a.GetUser(context.Background(), scimtest.UserID(2))
	require.NoError(t, err)
	assert.Equal(t, "user0002", u.UserName)

	_, err = a.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, "Resource missing not found", statusErr.Body)
}

func TestGetUser_EscapesID(t *testing.T) {
	d, a := newDirectoryServer(t, 1)

	_, err := a.GetUser(context.Background(), "a/../b")
	assert.ErrorIs(t, err, ErrNotFound)

	reqs := d.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/scim/v2/enterprises/acme/Users/a%2F..%2Fb", reqs[0].RawPath)
}

func TestReplaceRoles(t *testing.T) {
	d, a := newDirectoryServer(t, 2)
	id := scimtest.UserID(1)

	require.NoError(t, a.ReplaceRoles(context.Background(), id, "enterprise_owner"))

	u, ok := d.User(id)
	require.True(t, ok)
	assert.Equal(t, []models.ScimRole{{Value: "enterprise_owner", Primary: true}}, u.Roles)

	reqs := d.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, http.MethodPatch, last.Method)
	assert.Equal(t, "application/scim+json", last.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(last.Body, &body))
	assert.Equal(t, []any{models.SchemaPatchOp}, body["schemas"])
	ops := body["Operations"].([]any)
	require.Len(t, ops, 1)
	op := ops[0].(map[string]any)
	assert.Equal(t, "replace", op["op"])
	assert.Equal(t, "roles", op["path"])
	assert.Equal(t, []any{map[string]any{"value": "enterprise_owner", "primary": true}}, op["value"])
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("  plain failure \n"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetCredentials("acme", "tok")

			err := a.ReplaceRoles(context.Background(), "u1", "user")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.Code)
			assert.Equal(t, "plain failure", statusErr.Body)
			assert.Contains(t, statusErr.Status, http.StatusText(tt.status))
		})
	}
}

func TestErrorBody_Truncated(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}
	got := errorBody(long)
	assert.Len(t, got, maxErrorBody+3)
}

func TestErrorBody_TruncatedOnRuneBoundary(t *testing.T) {
	// one ASCII byte shifts every 2-byte rune so byte 512 falls mid-rune
	body := "x" + strings.Repeat("ж", 600)

	got := errorBody([]byte(body))
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "ж..."))
	assert.Len(t, got, maxErrorBody-1+3)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	a.SetCredentials("acme", "tok")

	_, err := a.ProbeUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/scim+json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("acme", "tok")

	_, err := a.ProbeUsers(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestContextCancelled(t *testing.T) {
	d, a := newDirectoryServer(t, 150)
	d.HangPage(101)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := a.ListUsers(ctx, models.PageRequest{StartIndex: 101, Count: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── pacing ──────────────────────────────────────────────────────────────────

func TestRateLimit_PacesRequests(t *testing.T) {
	d := scimtest.NewDirectory("acme", "tok", scimtest.GenerateUsers(1, 0)...)
	srv := httptest.NewServer(d.Handler())
	defer srv.Close()

	a, err := NewSCIMAdapter(config.ClientAdapter{APIURL: srv.URL, RequestTimeout: time.Second, RateLimit: 10}, logger.Nop())
	require.NoError(t, err)
	a.SetCredentials("acme", "tok")

	start := time.Now()
	for i := 0; i < 12; i++ {
		_, err = a.ProbeUsers(context.Background())
		require.NoError(t, err)
	}
	// burst of 10, then two more at 100ms intervals
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	assert.Equal(t, 12, len(d.Requests()), "pacing must never drop or repeat requests")
}

func TestRateLimit_WaitHonoursContext(t *testing.T) {
	a, err := NewSCIMAdapter(config.ClientAdapter{APIURL: "http://127.0.0.1:1", RateLimit: 0.001}, logger.Nop())
	require.NoError(t, err)
	a.SetCredentials("acme", "tok")

	sa := a.(*scimAdapter)
	require.NotNil(t, sa.limiter)
	sa.limiter.Allow() // drain the single token

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = a.ProbeUsers(ctx)
	assert.ErrorIs(t, err, ErrTransport)
}
