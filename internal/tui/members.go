// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/app"
	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/models"
)

// writeClipboard is swapped in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

// MembersModel is the main screen: the enterprise member list with search,
// owner filter, paging and role changes.
type MembersModel struct {
	ctx     context.Context
	session service.SessionController

	members []models.Member
	visible []models.Member
	page    int
	cursor  int
	filter  ownerFilter

	search    textinput.Model
	searching bool

	loading  bool
	changing bool
	picker   *rolePicker
	confirm  *confirmModel

	errMsg string
	banner bannerState
}

// NewMembersModel creates an empty [MembersModel]. Members are loaded by Init.
func NewMembersModel(ctx context.Context, session service.SessionController) *MembersModel {
	search := textinput.New()
	search.Placeholder = "name, e-mail, login or department"
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40

	return &MembersModel{
		ctx:     ctx,
		session: session,
		search:  search,
	}
}

// Init implements [tea.Model]. It starts a full member fetch.
func (m *MembersModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *MembersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case membersLoadedMsg:
		return m, m.handleLoaded(msg)
	case roleChangedMsg:
		return m, m.handleRoleChanged(msg)
	case bannerExpiredMsg:
		m.banner.expire(msg.id)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MembersModel) handleLoaded(msg membersLoadedMsg) tea.Cmd {
	if !msg.background {
		m.loading = false
	}

	if msg.err != nil {
		if m.session.Status().State == service.StateUnauthenticated {
			reason := msg.err.Error()
			return func() tea.Msg { return loggedOutMsg{reason: reason} }
		}
		if msg.background {
			return m.banner.show(bannerWarning, app.MsgFetchFailed+": "+humanizeError(msg.err))
		}
		// the session controller keeps the error for the persistent banner
		return nil
	}

	m.members = msg.members
	m.apply()
	return nil
}

func (m *MembersModel) handleRoleChanged(msg roleChangedMsg) tea.Cmd {
	m.changing = false

	if msg.err != nil {
		m.errMsg = app.MsgRoleUpdateFailed + ": " + humanizeError(msg.err)
		return nil
	}

	m.errMsg = ""
	m.members = msg.result.Members
	m.apply()

	text := fmt.Sprintf(app.MsgRoleUpdated, msg.member.DisplayName, roles.DisplayName(msg.roleID))
	if !msg.result.Authoritative() {
		return m.banner.show(bannerWarning, text+" ("+app.MsgOptimisticState+")")
	}
	return m.banner.show(bannerSuccess, text)
}

func (m *MembersModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			member := m.confirm.member
			m.confirm = nil
			return m, m.toggleOwner(member)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.picker != nil {
		roleID, done := m.picker.update(msg)
		if !done {
			return m, nil
		}
		member := m.picker.member
		m.picker = nil
		if roleID == "" {
			return m, nil
		}
		return m, m.startRoleChange(member, roleID, func(ctx context.Context, c service.DirectoryClient) (bool, error) {
			return c.ChangeRole(ctx, member.ID, roleID)
		})
	}

	if m.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.resetPosition()
			return m, nil
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.resetPosition()
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		start, end := pageBounds(len(m.visible), m.page)
		if m.cursor < end-start-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.prevPage):
		if m.page > 0 {
			m.page--
			m.cursor = 0
		}
	case key.Matches(msg, keys.nextPage):
		if m.page < pageCount(len(m.visible))-1 {
			m.page++
			m.cursor = 0
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.filter):
		m.filter = m.filter.next()
		m.resetPosition()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.resetPosition()
		}
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.enter):
		if member, ok := m.selected(); ok && !m.changing {
			m.picker = newRolePicker(member, m.session.Client().AvailableRoles())
		}
	case key.Matches(msg, keys.owner):
		if member, ok := m.selected(); ok && !m.changing {
			m.confirm = &confirmModel{member: member, grant: !member.IsElevated}
		}
	case key.Matches(msg, keys.copy):
		return m, m.copyEmail()
	case key.Matches(msg, keys.dismiss):
		m.session.DismissError()
		m.errMsg = ""
	case key.Matches(msg, keys.logout):
		if m.loading || m.changing {
			return m, nil
		}
		return m, func() tea.Msg { return logoutRequestedMsg{} }
	}

	return m, nil
}

func (m *MembersModel) toggleOwner(member models.Member) tea.Cmd {
	if member.IsElevated {
		return m.startRoleChange(member, roles.BaselineRoleID, func(ctx context.Context, c service.DirectoryClient) (bool, error) {
			return c.RevokeElevated(ctx, member.ID)
		})
	}
	return m.startRoleChange(member, roles.ElevatedRoleID, func(ctx context.Context, c service.DirectoryClient) (bool, error) {
		return c.AssignElevated(ctx, member.ID)
	})
}

func (m *MembersModel) copyEmail() tea.Cmd {
	member, ok := m.selected()
	if !ok || member.PrimaryEmail == "" {
		return nil
	}

	if err := writeClipboard(member.PrimaryEmail); err != nil {
		return m.banner.show(bannerWarning, app.MsgCopyFailed)
	}
	return m.banner.show(bannerInfo, fmt.Sprintf(app.MsgCopied, member.PrimaryEmail))
}

// startRoleChange runs change and then reconciles the list against the
// directory. The list snapshot is taken now; Reconcile never modifies it.
func (m *MembersModel) startRoleChange(
	member models.Member,
	roleID string,
	change func(context.Context, service.DirectoryClient) (bool, error),
) tea.Cmd {
	if m.changing {
		return nil
	}
	m.changing = true
	m.errMsg = ""

	ctx := m.ctx
	client := m.session.Client()
	snapshot := m.members

	return func() tea.Msg {
		ok, err := change(ctx, client)
		if err == nil && !ok {
			err = fmt.Errorf("%s was not updated", member.DisplayName)
		}
		if err != nil {
			return roleChangedMsg{member: member, roleID: roleID, err: err}
		}

		return roleChangedMsg{
			member: member,
			roleID: roleID,
			result: client.Reconcile(ctx, snapshot, member.ID, roleID),
		}
	}
}

func (m *MembersModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		members, err := session.Refresh(ctx)
		return membersLoadedMsg{members: members, err: err}
	}
}

func (m *MembersModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Logout(ctx)
		return loggedOutMsg{}
	}
}

// clear drops everything tied to the previous session.
func (m *MembersModel) clear() {
	m.members = nil
	m.visible = nil
	m.filter = filterAll
	m.search.SetValue("")
	m.search.Blur()
	m.searching = false
	m.picker = nil
	m.confirm = nil
	m.changing = false
	m.errMsg = ""
	m.banner.current = nil
	m.page, m.cursor = 0, 0
}

func (m *MembersModel) resetPosition() {
	m.page, m.cursor = 0, 0
	m.apply()
}

// apply recomputes the visible rows and keeps page and cursor in range.
func (m *MembersModel) apply() {
	m.visible = filterMembers(m.members, m.search.Value(), m.filter)

	m.page = min(m.page, pageCount(len(m.visible))-1)
	start, end := pageBounds(len(m.visible), m.page)
	m.cursor = max(min(m.cursor, end-start-1), 0)
}

func (m *MembersModel) selected() (models.Member, bool) {
	start, end := pageBounds(len(m.visible), m.page)
	i := start + m.cursor
	if i < start || i >= end {
		return models.Member{}, false
	}
	return m.visible[i], true
}

// View implements [tea.Model].
func (m *MembersModel) View() string {
	if m.picker != nil {
		return m.picker.view()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder

	owners, others := countOwners(m.members)
	fmt.Fprintf(&b, "Enterprise: %s   Members: %d   Owners: %d   Non-owners: %d\n",
		m.session.Client().DirectoryID(), len(m.members), owners, others)
	fmt.Fprintf(&b, "Filter: %s   Page %d/%d   Showing %d\n",
		m.filter, m.page+1, pageCount(len(m.visible)), len(m.visible))
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.members) == 0:
		b.WriteString("Loading members...\n")
	case len(m.visible) == 0:
		b.WriteString("No members match.\n")
	default:
		m.writeTable(&b)
	}

	if m.loading && len(m.members) > 0 {
		b.WriteString("\nRefreshing...\n")
	}
	if m.changing {
		b.WriteString("\nUpdating role...\n")
	}

	if banner := m.banner.view(); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}
	if errText := m.errorText(); errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errText + "  (x: dismiss)"))
		b.WriteString("\n")
	}

	return renderPage("ENTERPRISE MEMBERS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ ←/→: page │ /: search │ f: filter │ enter: role │ o: owner │ c: copy e-mail │ r: refresh │ L: logout │ q: quit")
}

func (m *MembersModel) errorText() string {
	if e := m.session.Status().Error; e != "" {
		return e
	}
	return m.errMsg
}

func (m *MembersModel) writeTable(b *strings.Builder) {
	fmt.Fprintf(b, "  %s %s %s %s %s\n",
		padRight("NAME", 24), padRight("E-MAIL", 30), padRight("DEPARTMENT", 16), padRight("ROLE", 18), "LAST ACTIVITY")

	start, end := pageBounds(len(m.visible), m.page)
	for i, member := range m.visible[start:end] {
		role := padRight(member.CanonicalRole, 18)
		if member.IsElevated {
			role = ownerStyle.Render(role)
		}

		line := fmt.Sprintf("%s %s %s %s %s",
			padRight(member.DisplayName, 24),
			padRight(member.PrimaryEmail, 30),
			padRight(valueOr(member.Department, "Unknown"), 16),
			role,
			shortDate(member.LastActivity),
		)

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if member, ok := m.selected(); ok {
		fmt.Fprintf(b, "\nLogin: %s   Role ids: %s\n",
			valueOr(member.LoginHandle, "-"), strings.Join(member.RoleIdentifiers, ", "))
	}
}
