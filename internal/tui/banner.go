package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// bannerTTL is how long a transient banner stays on screen.
const bannerTTL = 5 * time.Second

type bannerKind int

const (
	bannerInfo bannerKind = iota
	bannerSuccess
	bannerWarning
)

type banner struct {
	id   int
	kind bannerKind
	text string
}

// bannerState holds at most one transient banner. Each banner gets a fresh
// id so that the expiry of an older banner never hides a newer one.
type bannerState struct {
	seq     int
	current *banner
}

// show replaces the current banner and returns the command that expires it.
func (b *bannerState) show(kind bannerKind, text string) tea.Cmd {
	b.seq++
	id := b.seq
	b.current = &banner{id: id, kind: kind, text: text}

	return tea.Tick(bannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

func (b *bannerState) expire(id int) {
	if b.current != nil && b.current.id == id {
		b.current = nil
	}
}

func (b *bannerState) text() string {
	if b.current == nil {
		return ""
	}
	return b.current.text
}

func (b *bannerState) view() string {
	if b.current == nil {
		return ""
	}

	switch b.current.kind {
	case bannerSuccess:
		return successStyle.Render(b.current.text)
	case bannerWarning:
		return warningStyle.Render(b.current.text)
	default:
		return infoStyle.Render(b.current.text)
	}
}
