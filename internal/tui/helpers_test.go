package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/internal/service/mock"
	"github.com/MKhiriev/go-scim-owner/models"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func strPtr(s string) *string { return &s }

// testMembers builds n members; every ownerEvery-th one is an owner.
func testMembers(n, ownerEvery int) []models.Member {
	out := make([]models.Member, 0, n)
	for i := 1; i <= n; i++ {
		m := models.Member{
			ID:              fmt.Sprintf("m-%02d", i),
			DisplayName:     fmt.Sprintf("Member %02d", i),
			PrimaryEmail:    fmt.Sprintf("member%02d@example.com", i),
			LoginHandle:     strPtr(fmt.Sprintf("login%02d", i)),
			RoleIdentifiers: []string{roles.BaselineRoleID},
			CanonicalRole:   roles.User,
		}
		if ownerEvery > 0 && i%ownerEvery == 0 {
			m.RoleIdentifiers = []string{roles.ElevatedRoleID}
			m.CanonicalRole = roles.EnterpriseOwner
			m.IsElevated = true
		}
		out = append(out, m)
	}
	return out
}

type sessionFixture struct {
	session *mock.MockSessionController
	client  *mock.MockDirectoryClient
	status  service.SessionStatus
}

// newSessionFixture returns mocks where Client, Status and DirectoryID may be
// called any number of times; Status reports f.status.
func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &sessionFixture{
		session: mock.NewMockSessionController(ctrl),
		client:  mock.NewMockDirectoryClient(ctrl),
		status:  service.SessionStatus{State: service.StateAuthenticated},
	}

	f.session.EXPECT().Client().Return(f.client).AnyTimes()
	f.session.EXPECT().Status().DoAndReturn(func() service.SessionStatus { return f.status }).AnyTimes()
	f.client.EXPECT().DirectoryID().Return("acme").AnyTimes()
	return f
}
