// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the enterprise SCIM endpoint.
//
// The primary abstraction is [DirectoryAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewSCIMAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*StatusError] that
// unwraps to a sentinel ([ErrUnauthorized] for 401, [ErrNotFound] for 404,
// ...). Failures where no response arrived wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-scim-owner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_adapter_mock.go -package=mock

// DirectoryAdapter is the transport used by the directory client. All
// requests are scoped to the enterprise set with SetCredentials.
type DirectoryAdapter interface {
	// SetCredentials sets the enterprise slug and bearer token used by all
	// subsequent requests. Safe to call while requests are in flight.
	SetCredentials(directoryID, token string)

	// Reset forgets the credentials.
	Reset()

	// DirectoryID returns the configured enterprise slug, or "".
	DirectoryID() string

	// ListUsers fetches one page of GET /Users?startIndex=&count=.
	ListUsers(ctx context.Context, page models.PageRequest) (models.ListResponse, error)

	// ProbeUsers fetches GET /Users?count=1. It validates the credentials and
	// reports the directory size in TotalResults.
	ProbeUsers(ctx context.Context) (models.ListResponse, error)

	// GetUser fetches GET /Users/{id}.
	GetUser(ctx context.Context, id string) (models.ScimUser, error)

	// ReplaceRoles sends PATCH /Users/{id} setting the role list to exactly
	// one primary role.
	ReplaceRoles(ctx context.Context, id, roleID string) error
}
