package tui

import (
	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/models"
)

// confirmModel asks before owner rights are granted or revoked.
type confirmModel struct {
	member models.Member
	grant  bool
}

func (m confirmModel) View() string {
	action := "Grant " + roles.EnterpriseOwner + " to"
	if !m.grant {
		action = "Revoke " + roles.EnterpriseOwner + " from"
	}

	content := action + " \"" + m.member.DisplayName + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
