package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/models"
)

// Page names registered in [RootModel].
const (
	pageLogin   = "login"
	pageMembers = "members"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// loginDoneMsg carries the outcome of a login attempt.
type loginDoneMsg struct {
	ok bool
}

// logoutRequestedMsg asks [RootModel] to stop background work before the
// members page logs out.
type logoutRequestedMsg struct{}

// loggedOutMsg moves the UI back to the login page. reason is empty after a
// user-initiated logout and holds the error when the session was lost.
type loggedOutMsg struct {
	reason string
}

// membersLoadedMsg carries a member listing. background is set for results
// delivered by the refresh job.
type membersLoadedMsg struct {
	members    []models.Member
	err        error
	background bool
}

// roleChangedMsg carries the outcome of a role change and the reconciled
// member list.
type roleChangedMsg struct {
	member models.Member
	roleID string
	err    error
	result service.ReconcileResult
}

// bannerExpiredMsg hides the transient banner with the same id.
type bannerExpiredMsg struct {
	id int
}
