package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/models"
)

// rolePicker lets the operator choose one role from the catalogue for a
// single member. The cursor starts on the member's current role.
type rolePicker struct {
	member  models.Member
	options []models.RoleOption
	idx     int
}

func newRolePicker(member models.Member, options []models.RoleOption) *rolePicker {
	p := &rolePicker{member: member, options: options}
	for i, o := range options {
		if roles.DisplayName(o.Value) == member.CanonicalRole {
			p.idx = i
			break
		}
	}
	return p
}

// update handles one key. It returns the chosen role id when the operator
// confirms, and done when the picker should close.
func (p *rolePicker) update(msg tea.KeyMsg) (roleID string, done bool) {
	switch {
	case key.Matches(msg, keys.esc):
		return "", true
	case key.Matches(msg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(msg, keys.down):
		if p.idx < len(p.options)-1 {
			p.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(p.options) == 0 {
			return "", true
		}
		return p.options[p.idx].Value, true
	}
	return "", false
}

func (p *rolePicker) view() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Change role of %s\n", p.member.DisplayName)
	fmt.Fprintf(&b, "Current: %s\n\n", p.member.CanonicalRole)

	for i, o := range p.options {
		cursor := "  "
		if i == p.idx {
			cursor = "> "
		}
		line := cursor + o.Display
		if roles.DisplayName(o.Value) == p.member.CanonicalRole {
			line += " (current)"
		}
		if i == p.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: apply │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
