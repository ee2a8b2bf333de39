package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/models"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global ctrl+c quit and the about window
// 3) handles NavigateTo, login and logout messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	refresher *refresher

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers the login and member pages and opens startPage.
// refresher may be nil when background refresh is disabled.
func NewRootModel(ctx context.Context, session service.SessionController, startPage string, buildInfo models.AppBuildInfo, refresher *refresher) RootModel {
	return RootModel{
		pages: map[string]tea.Model{
			pageLogin:   NewLoginModel(ctx, session),
			pageMembers: NewMembersModel(ctx, session),
		},
		current:   startPage,
		refresher: refresher,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == pageMembers {
		r.refresher.start()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.switchTo(msg.Page, msg.Payload)
	case loginDoneMsg:
		if msg.ok {
			r.refresher.start()
			return r.switchTo(pageMembers, nil)
		}
	case logoutRequestedMsg:
		// no refresh may run while the session is cleared
		r.refresher.stop()
		if members, ok := r.pages[pageMembers].(*MembersModel); ok {
			return r, members.cmdLogout()
		}
		return r, nil
	case loggedOutMsg:
		r.refresher.stop()
		if members, ok := r.pages[pageMembers].(*MembersModel); ok {
			members.clear()
		}

		r.showBuildInfo = false
		r.current = pageLogin
		login, cmd := r.pages[pageLogin].Update(msg)
		r.pages[pageLogin] = login
		return r, tea.Batch(login.Init(), cmd)
	case membersLoadedMsg:
		// late results of a stopped refresh job
		if msg.background && r.current != pageMembers {
			return r, nil
		}
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for name, page := range r.pages {
			next, cmd := page.Update(msg)
			r.pages[name] = next
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	next, cmd := page.Update(msg)
	r.pages[r.current] = next
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return ""
	}
	return page.View()
}

func (r RootModel) switchTo(name string, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, exists := r.pages[name]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = name

	cmd := next.Init()
	if payload != nil {
		cmd = tea.Batch(cmd, func() tea.Msg { return payload })
	}
	return r, cmd
}
