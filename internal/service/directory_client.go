// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-scim-owner/internal/adapter"
	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/roles"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
	"github.com/MKhiriev/go-scim-owner/internal/validators"
	"github.com/MKhiriev/go-scim-owner/internal/vault"
	"github.com/MKhiriev/go-scim-owner/models"
)

type directoryClient struct {
	vault     vault.CredentialVault
	adapter   adapter.DirectoryAdapter
	validator validators.Validator
	ids       *utils.UUIDGenerator
	cfg       config.ClientDirectory

	mu    sync.RWMutex
	cred  models.Credential
	state State

	logger *logger.Logger
}

// NewDirectoryClient creates a DirectoryClient. It starts unauthenticated;
// call LoadCredentials or Authenticate before fetching.
func NewDirectoryClient(v vault.CredentialVault, a adapter.DirectoryAdapter, cfg config.ClientDirectory, logger *logger.Logger) DirectoryClient {
	return &directoryClient{
		vault:     v,
		adapter:   a,
		validator: validators.NewDirectoryValidator(),
		ids:       utils.NewUUIDGenerator(),
		cfg:       cfg,
		state:     StateUnauthenticated,
		logger:    logger,
	}
}

func (d *directoryClient) Authenticate(ctx context.Context, directoryID, secret string) (bool, error) {
	cred := models.Credential{
		DirectoryID: strings.TrimSpace(directoryID),
		Secret:      strings.TrimSpace(secret),
	}
	if err := d.validator.Validate(ctx, cred); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	log := d.logger.With().
		Str("directory", cred.DirectoryID).
		Str("token", utils.MaskToken(cred.Secret)).
		Logger()

	if !utils.IsValidGitHubToken(cred.Secret) {
		log.Warn().Msg("token does not look like a GitHub access token")
	}

	d.setState(StateAuthenticating)

	if err := d.vault.Store(ctx, cred.DirectoryID, cred.Secret); err != nil {
		d.forget()
		log.Error().Err(utils.SanitizeError(err, cred.Secret)).Msg("failed to store credentials")
		return false, utils.SanitizeError(err, cred.Secret)
	}

	d.use(cred)

	if _, err := d.adapter.ProbeUsers(ctx); err != nil {
		// the vault keeps the credential so a retry does not need re-entry
		d.forget()
		mapped := mapProbeError(err, cred.Secret)
		log.Warn().Err(mapped).Msg("authentication probe failed")
		return false, mapped
	}

	d.setState(StateAuthenticated)
	log.Info().Msg("authenticated")

	return true, nil
}

func (d *directoryClient) LoadCredentials(ctx context.Context) bool {
	cred, ok, err := d.vault.Load(ctx)
	if err != nil {
		d.logger.Warn().Err(err).Msg("failed to load stored credentials")
		return false
	}
	if !ok || !cred.IsComplete() {
		return false
	}

	d.use(cred)
	d.setState(StateAuthenticated)
	d.logger.Debug().Str("directory", cred.DirectoryID).Msg("credentials loaded")

	return true
}

func (d *directoryClient) FetchAll(ctx context.Context) ([]models.Member, error) {
	cred, ok := d.credentials()
	if !ok {
		if !d.LoadCredentials(ctx) {
			return nil, ErrNotAuthenticated
		}
		cred, _ = d.credentials()
	}

	fetchID := d.ids.Generate()
	log := d.logger.With().Str("fetch_id", fetchID).Str("directory", cred.DirectoryID).Logger()

	probe, err := d.adapter.ProbeUsers(ctx)
	if err != nil {
		if isCredentialRejection(err) {
			d.forget()
		}
		mapped := mapProbeError(err, cred.Secret)
		log.Error().Err(mapped).Msg("member count probe failed")
		return nil, mapped
	}

	pages := PlanPages(probe.TotalResults, d.cfg.PageSize)
	results := make([][]models.ScimUser, len(pages))
	var failed atomic.Int32

	var g errgroup.Group
	if d.cfg.MaxConcurrency > 0 {
		g.SetLimit(d.cfg.MaxConcurrency)
	}
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			users, err := d.fetchPage(ctx, page)
			if err != nil {
				failed.Add(1)
				log.Warn().
					Err(utils.SanitizeError(err, cred.Secret)).
					Int("start_index", page.StartIndex).
					Int("count", page.Count).
					Msg("page fetch failed, continuing without it")
				return nil
			}
			results[i] = users
			return nil
		})
	}
	_ = g.Wait()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	members := assemble(results)
	log.Info().
		Int("total", probe.TotalResults).
		Int("pages", len(pages)).
		Int32("failed_pages", failed.Load()).
		Int("members", len(members)).
		Msg("members fetched")

	return members, nil
}

func (d *directoryClient) fetchPage(ctx context.Context, page models.PageRequest) ([]models.ScimUser, error) {
	if d.cfg.PageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.PageTimeout)
		defer cancel()
	}

	list, err := d.adapter.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}
	return list.Resources, nil
}

// assemble flattens pages in order, keeping the first occurrence of each ID.
// Offsets can shift while pages are read, so the same user may appear twice.
func assemble(pages [][]models.ScimUser) []models.Member {
	members := make([]models.Member, 0)
	seen := make(map[string]struct{})
	for _, users := range pages {
		for _, u := range users {
			if _, dup := seen[u.ID]; dup {
				continue
			}
			seen[u.ID] = struct{}{}
			members = append(members, ToMember(u))
		}
	}
	return members
}

func (d *directoryClient) FetchOne(ctx context.Context, memberID string) (models.Member, bool) {
	if _, ok := d.credentials(); !ok {
		return models.Member{}, false
	}
	if err := d.validator.Validate(ctx, models.RoleChange{MemberID: memberID}, validators.FieldMemberID); err != nil {
		return models.Member{}, false
	}

	user, err := d.adapter.GetUser(ctx, memberID)
	if err != nil {
		d.logger.Debug().Err(d.sanitize(err)).Str("member_id", memberID).Msg("member fetch failed")
		return models.Member{}, false
	}

	return ToMember(user), true
}

func (d *directoryClient) ChangeRole(ctx context.Context, memberID, roleID string) (bool, error) {
	cred, ok := d.credentials()
	if !ok {
		return false, ErrNotAuthenticated
	}

	change := models.RoleChange{MemberID: memberID, RoleID: roleID}
	if err := d.validator.Validate(ctx, change); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	log := d.logger.With().Str("member_id", memberID).Str("role_id", roleID).Logger()
	if !roles.IsAssignable(roleID) {
		log.Warn().Msg("role is not in the known catalogue, sending it as is")
	}

	if err := d.adapter.ReplaceRoles(ctx, memberID, roleID); err != nil {
		mapped := mapRoleUpdateError(err, change, cred.Secret)
		log.Error().Err(mapped).Msg("role change rejected")
		return false, mapped
	}

	log.Info().Str("role", roles.DisplayName(roleID)).Msg("role changed")
	return true, nil
}

func (d *directoryClient) AssignElevated(ctx context.Context, memberID string) (bool, error) {
	return d.ChangeRole(ctx, memberID, roles.ElevatedRoleID)
}

func (d *directoryClient) RevokeElevated(ctx context.Context, memberID string) (bool, error) {
	return d.ChangeRole(ctx, memberID, roles.BaselineRoleID)
}

func (d *directoryClient) Logout(ctx context.Context) error {
	// the vault goes first: a fetch that finds no credential in memory
	// reloads it from the vault
	err := d.vault.Clear(ctx)
	d.forget()

	if err != nil {
		d.logger.Error().Err(err).Msg("failed to clear stored credentials")
		return fmt.Errorf("logout: %w", err)
	}

	d.logger.Info().Msg("logged out")
	return nil
}

func (d *directoryClient) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *directoryClient) IsAuthenticated() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state == StateAuthenticated && d.cred.IsComplete()
}

func (d *directoryClient) DirectoryID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cred.DirectoryID
}

func (d *directoryClient) AvailableRoles() []models.RoleOption {
	return roles.AvailableRoles()
}

func (d *directoryClient) credentials() (models.Credential, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cred, d.cred.IsComplete()
}

func (d *directoryClient) use(cred models.Credential) {
	d.mu.Lock()
	d.cred = cred
	d.mu.Unlock()

	d.adapter.SetCredentials(cred.DirectoryID, cred.Secret)
}

func (d *directoryClient) forget() {
	d.mu.Lock()
	d.cred = models.Credential{}
	d.state = StateUnauthenticated
	d.mu.Unlock()

	d.adapter.Reset()
}

func (d *directoryClient) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

func (d *directoryClient) sanitize(err error) error {
	cred, _ := d.credentials()
	return utils.SanitizeError(err, cred.Secret)
}
