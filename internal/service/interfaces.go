// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the client: the directory
// client that authenticates, lists members and changes roles, the session
// controller the UI drives, and the background refresh job.
//
// Every error leaving this package has been passed through
// utils.SanitizeError, so it is safe to show or log.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-scim-owner/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// DirectoryClient manages one authenticated connection to an enterprise
// directory.
type DirectoryClient interface {
	// Authenticate stores the credential in the vault, points the adapter at
	// the directory and probes it with GET /Users?count=1. It returns true
	// only if the probe succeeded. On a failed probe the credential stays in
	// the vault and the error wraps ErrAuth or ErrNetwork. A vault failure
	// wraps vault.ErrEncryption.
	Authenticate(ctx context.Context, directoryID, secret string) (bool, error)

	// LoadCredentials loads the stored credential into memory. It returns
	// false if nothing usable is stored.
	LoadCredentials(ctx context.Context) bool

	// FetchAll lists every member. Pages are fetched concurrently; a page
	// that fails contributes nothing and is logged. It fails only if no
	// credential is available or the probe fails.
	FetchAll(ctx context.Context) ([]models.Member, error)

	// FetchOne fetches a single member. The boolean is false on any failure.
	FetchOne(ctx context.Context, memberID string) (models.Member, bool)

	// ChangeRole replaces the member's roles with roleID. A rejected change
	// returns a *RoleUpdateError.
	ChangeRole(ctx context.Context, memberID, roleID string) (bool, error)

	// AssignElevated makes the member an enterprise owner.
	AssignElevated(ctx context.Context, memberID string) (bool, error)

	// RevokeElevated moves the member back to the baseline role.
	RevokeElevated(ctx context.Context, memberID string) (bool, error)

	// Reconcile returns the member list to show after a successful role
	// change. current is never modified.
	Reconcile(ctx context.Context, current []models.Member, memberID, requestedRoleID string) ReconcileResult

	// Logout clears the vault and the in-memory credential. Calling it twice
	// is not an error.
	Logout(ctx context.Context) error

	State() State
	IsAuthenticated() bool
	DirectoryID() string
	AvailableRoles() []models.RoleOption
}

// SessionController is the login/logout surface the UI drives.
type SessionController interface {
	// Restore resumes a previous session from the vault. Any failure yields
	// StateUnauthenticated and is not surfaced.
	Restore(ctx context.Context) State

	// Login trims its input and authenticates. On failure the reason is
	// recorded in Status().Error.
	Login(ctx context.Context, directoryID, secret string) bool

	// Logout ends the session and clears the recorded error.
	Logout(ctx context.Context)

	// Refresh fetches all members and records a failure as the session error.
	Refresh(ctx context.Context) ([]models.Member, error)

	Status() SessionStatus
	DismissError()
	Client() DirectoryClient
}

// BackgroundJob periodically refreshes the member list.
type BackgroundJob interface {
	// Start stops any running job and then calls FetchAll every interval,
	// handing each result to onResult. A non-positive interval defaults to
	// five minutes.
	Start(ctx context.Context, interval time.Duration, onResult func([]models.Member, error))

	// Stop cancels the job and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
