// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/MKhiriev/go-scim-owner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_vault_mock.go -package=mock

// CredentialVault keeps a single directory credential encrypted at rest.
type CredentialVault interface {
	// Store encrypts the pair with a fresh salt and IV and overwrites any
	// previously stored record. Cipher and persistence failures wrap
	// [ErrEncryption].
	Store(ctx context.Context, directoryID, secret string) error

	// Load returns the stored credential. The boolean is false, with a nil
	// error, when nothing has been stored yet. A record that exists but
	// cannot be opened wraps [ErrDecryption].
	Load(ctx context.Context) (models.Credential, bool, error)

	// Clear removes the stored record. Clearing an empty vault is not an error.
	Clear(ctx context.Context) error

	// HasStored reports whether a record exists without decrypting it.
	HasStored(ctx context.Context) (bool, error)
}
