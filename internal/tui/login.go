// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/app"
	"github.com/MKhiriev/go-scim-owner/internal/service"
)

const errMissingLoginFields = "Enterprise name and token are required"

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (enterprise slug and access token) and dispatches an async
// login through the session controller. On success a [loginDoneMsg] is
// produced and handled by [RootModel], which opens the member list.
type LoginModel struct {
	ctx     context.Context
	session service.SessionController

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel]. The enterprise field receives focus
// immediately; the token field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionController) *LoginModel {
	enterpriseInput := textinput.New()
	enterpriseInput.Placeholder = "enterprise slug"
	enterpriseInput.CharLimit = 100
	enterpriseInput.Width = 40
	enterpriseInput.Focus()

	tokenInput := textinput.New()
	tokenInput.Placeholder = "ghp_..."
	tokenInput.CharLimit = 255
	tokenInput.Width = 40
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{enterpriseInput, tokenInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginDoneMsg]  clears the submitting state; on failure shows the
//     session error and clears the token.
//   - [loggedOutMsg]  resets the form and shows why the session ended.
//   - tab / shift+tab move focus between the inputs.
//   - enter validates the inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if !msg.ok {
			m.errMsg = m.session.Status().Error
			if m.errMsg == "" {
				m.errMsg = app.MsgInvalidCredentials
			}
			m.inputs[1].SetValue("")
		}
		return m, nil
	case loggedOutMsg:
		m.reset()
		if msg.reason != "" {
			m.errMsg = msg.reason
		} else {
			m.notice = app.MsgLoggedOut
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			enterprise := strings.TrimSpace(m.inputs[0].Value())
			token := strings.TrimSpace(m.inputs[1].Value())
			if enterprise == "" || token == "" {
				m.errMsg = errMissingLoginFields
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(enterprise, token)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Enterprise  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Token       │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("GITHUB ENTERPRISE LOGIN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: sign in │ ctrl+b: about")
}

func (m *LoginModel) cmdLogin(enterprise, token string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loginDoneMsg{ok: session.Login(ctx, enterprise, token)}
	}
}

func (m *LoginModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
