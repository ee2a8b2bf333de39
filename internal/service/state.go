package service

import "github.com/MKhiriev/go-scim-owner/models"

// State is the authentication state of a DirectoryClient.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// SessionStatus is a snapshot of the session for rendering.
type SessionStatus struct {
	State     State
	IsLoading bool
	// Error is the most recent failure, already sanitised. Empty when none.
	Error string
}

// ReconcileSource says where the members of a ReconcileResult came from.
type ReconcileSource int

const (
	// ReconcileAuthoritative means the changed member was re-read.
	ReconcileAuthoritative ReconcileSource = iota + 1
	// ReconcileRefreshed means the whole list was re-read.
	ReconcileRefreshed
	// ReconcileOptimistic means nothing could be re-read and the local copy
	// was patched.
	ReconcileOptimistic
)

func (s ReconcileSource) String() string {
	switch s {
	case ReconcileAuthoritative:
		return "authoritative"
	case ReconcileRefreshed:
		return "refreshed"
	case ReconcileOptimistic:
		return "optimistic"
	default:
		return "unknown"
	}
}

// ReconcileResult is the member list to display after a role change.
type ReconcileResult struct {
	Members []models.Member
	Source  ReconcileSource
}

// Authoritative reports whether Members reflects what the directory returned.
func (r ReconcileResult) Authoritative() bool {
	return r.Source == ReconcileAuthoritative || r.Source == ReconcileRefreshed
}
