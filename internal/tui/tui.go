// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the scim-owner client. It only
// talks to the session controller and the directory client it exposes.
package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/models"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

// TUI runs the Bubble Tea program.
type TUI struct {
	services        *service.ClientServices
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration
	logger          *logger.Logger
}

// New creates a TUI. A refreshInterval of zero disables background refresh.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, refreshInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:        services,
		buildInfo:       buildInfo,
		refreshInterval: refreshInterval,
		logger:          logger,
	}
}

// Run restores a stored session, opens the matching page and blocks until
// the program exits.
func (t *TUI) Run(ctx context.Context) error {
	start := pageLogin
	if t.services.Session.Restore(ctx) == service.StateAuthenticated {
		start = pageMembers
	}
	t.logger.Info().Str("page", start).Msg("starting ui")

	var r *refresher
	if t.refreshInterval > 0 && t.services.RefreshJob != nil {
		r = &refresher{ctx: ctx, job: t.services.RefreshJob, interval: t.refreshInterval}
	}

	root := NewRootModel(ctx, t.services.Session, start, t.buildInfo, r)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	if r != nil {
		r.send = program.Send
	}
	defer r.stop()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// refresher connects the background refresh job to the running program.
// All methods are safe on a nil receiver, which means "disabled".
type refresher struct {
	ctx      context.Context
	job      service.BackgroundJob
	interval time.Duration
	send     func(tea.Msg)

	mu      sync.Mutex
	running bool
}

func (r *refresher) start() {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true

	send := r.send
	r.job.Start(r.ctx, r.interval, func(members []models.Member, err error) {
		if send != nil {
			// Send blocks while Update runs, and Update may be stopping this job.
			go send(membersLoadedMsg{members: members, err: err, background: true})
		}
	})
}

func (r *refresher) stop() {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	r.job.Stop()
}
