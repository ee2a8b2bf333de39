// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-scim-owner/internal/app"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
	"github.com/MKhiriev/go-scim-owner/internal/vault"
	"github.com/MKhiriev/go-scim-owner/models"
)

type sessionController struct {
	vault  vault.CredentialVault
	client DirectoryClient

	mu      sync.RWMutex
	loading bool
	err     string

	logger *logger.Logger
}

// NewSessionController creates a SessionController on top of client. The
// vault is consulted directly only to check whether a record exists.
func NewSessionController(v vault.CredentialVault, client DirectoryClient, logger *logger.Logger) SessionController {
	return &sessionController{
		vault:  v,
		client: client,
		logger: logger,
	}
}

func (s *sessionController) Restore(ctx context.Context) State {
	stored, err := s.vault.HasStored(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not check for stored credentials")
		return StateUnauthenticated
	}
	if !stored {
		return StateUnauthenticated
	}

	if !s.client.LoadCredentials(ctx) || !s.client.IsAuthenticated() {
		return StateUnauthenticated
	}

	s.logger.Info().Str("directory", s.client.DirectoryID()).Msg("session restored")
	return StateAuthenticated
}

func (s *sessionController) Login(ctx context.Context, directoryID, secret string) bool {
	directoryID = strings.TrimSpace(directoryID)
	secret = strings.TrimSpace(secret)

	s.begin()
	ok, err := s.client.Authenticate(ctx, directoryID, secret)
	if ok {
		s.finish("")
		return true
	}

	s.finish(loginMessage(err, secret))
	return false
}

// loginMessage picks the text shown after a failed login. Rejected
// credentials get a fixed message; anything else is shown sanitised.
func loginMessage(err error, secret string) string {
	if err == nil || errors.Is(err, ErrAuth) {
		return app.MsgInvalidCredentials
	}
	return utils.SanitizeMessage(err.Error(), secret)
}

func (s *sessionController) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("logout did not clear the vault")
	}

	s.mu.Lock()
	s.err = ""
	s.loading = false
	s.mu.Unlock()
}

func (s *sessionController) Refresh(ctx context.Context) ([]models.Member, error) {
	s.begin()

	members, err := s.client.FetchAll(ctx)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, ErrNotAuthenticated) {
			msg = app.MsgNotAuthenticated
		}
		s.finish(msg)
		return nil, err
	}

	s.finish("")
	return members, nil
}

func (s *sessionController) Status() SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SessionStatus{
		State:     s.client.State(),
		IsLoading: s.loading,
		Error:     s.err,
	}
}

func (s *sessionController) DismissError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *sessionController) Client() DirectoryClient {
	return s.client
}

func (s *sessionController) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *sessionController) finish(errMsg string) {
	s.mu.Lock()
	s.loading = false
	s.err = errMsg
	s.mu.Unlock()
}
