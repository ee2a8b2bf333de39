// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth is returned when the directory rejects the credentials during
	// authentication or the membership probe.
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork is returned when the directory could not be reached at all.
	ErrNetwork = errors.New("network error")

	// ErrNotAuthenticated is returned when an operation needs credentials and
	// none are loaded or stored.
	ErrNotAuthenticated = errors.New("no authentication credentials found")

	// ErrInvalidInput is returned when an identifier fails validation before
	// any request is sent.
	ErrInvalidInput = errors.New("invalid input")
)

// RoleUpdateError is returned by role changes the directory did not accept.
// Status is 0 when no response was received.
type RoleUpdateError struct {
	MemberID   string
	RoleID     string
	Status     int
	StatusText string
	Body       string

	err error
}

func (e *RoleUpdateError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("failed to update role of member %s: %s", e.MemberID, e.Body)
	}
	if e.Body == "" {
		return fmt.Sprintf("failed to update role of member %s: %s", e.MemberID, e.StatusText)
	}
	return fmt.Sprintf("failed to update role of member %s: %s: %s", e.MemberID, e.StatusText, e.Body)
}

func (e *RoleUpdateError) Unwrap() error {
	return e.err
}
