// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault encrypts the directory credential with a password-derived
// key and persists it as a single record in a [store.KeyValueStore].
//
// The record is stored under [StorageKey] as JSON:
//
//	{"salt":[...16 ints],"iv":[...16 ints],"data":[...ciphertext+tag]}
//
// The default password is a fixed application constant. It only obfuscates
// the token: anyone who can read the database and this binary can decrypt it.
// Deployments that need confidentiality set APP_VAULT_PASSWORD to a user
// secret and may switch APP_VAULT_KDF to argon2id.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scim-owner/internal/crypto"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/store"
	"github.com/MKhiriev/go-scim-owner/models"
)

const (
	// StorageKey is the key the encrypted record is stored under.
	StorageKey = "gh_enterprise_creds"

	// DefaultPassword is used when no password is configured.
	DefaultPassword = "default-key"
)

// Vault is the default [CredentialVault].
type Vault struct {
	store    store.KeyValueStore
	deriver  crypto.KeyDeriver
	password string
	logger   *logger.Logger
}

// New builds a vault over kv. An empty password selects [DefaultPassword]
// and a nil deriver selects PBKDF2.
func New(kv store.KeyValueStore, deriver crypto.KeyDeriver, password string, logger *logger.Logger) *Vault {
	if password == "" {
		password = DefaultPassword
	}
	if deriver == nil {
		deriver = crypto.NewPBKDF2Deriver()
	}

	return &Vault{
		store:    kv,
		deriver:  deriver,
		password: password,
		logger:   logger,
	}
}

func (v *Vault) Store(ctx context.Context, directoryID, secret string) error {
	record, err := v.seal(models.Credential{DirectoryID: directoryID, Secret: secret})
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Store").Msg("failed to seal credential")
		return err
	}

	blob, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record: %v", ErrEncryption, err)
	}

	if err = v.store.Put(ctx, StorageKey, blob); err != nil {
		v.logger.Err(err).Str("func", "Vault.Store").Msg("failed to persist credential record")
		return fmt.Errorf("%w: persist credential record: %w", ErrEncryption, err)
	}

	v.logger.Debug().
		Str("func", "Vault.Store").
		Str("kdf", v.deriver.Name()).
		Msg("credential record stored")
	return nil
}

func (v *Vault) Load(ctx context.Context) (models.Credential, bool, error) {
	blob, err := v.store.Get(ctx, StorageKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("read credential record: %w", err)
	}

	var record models.EncryptedRecord
	if err = json.Unmarshal(blob, &record); err != nil {
		v.logger.Warn().Err(err).Str("func", "Vault.Load").Msg("stored record is not valid JSON")
		return models.Credential{}, false, fmt.Errorf("%w: decode record: %v", ErrDecryption, err)
	}

	cred, err := v.open(record)
	if err != nil {
		v.logger.Warn().Err(err).Str("func", "Vault.Load").Msg("failed to open credential record")
		return models.Credential{}, false, err
	}

	return cred, true, nil
}

func (v *Vault) Clear(ctx context.Context) error {
	if err := v.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear credential record: %w", err)
	}
	return nil
}

func (v *Vault) HasStored(ctx context.Context) (bool, error) {
	ok, err := v.store.Exists(ctx, StorageKey)
	if err != nil {
		return false, fmt.Errorf("check credential record: %w", err)
	}
	return ok, nil
}

func (v *Vault) seal(cred models.Credential) (models.EncryptedRecord, error) {
	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	iv, err := crypto.RandomBytes(crypto.IVSize)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	plain, err := json.Marshal(cred)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: encode credential: %v", ErrEncryption, err)
	}

	key := v.deriver.DeriveKey(v.password, salt)
	data, err := crypto.Seal(key, iv, plain)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	return models.EncryptedRecord{Salt: salt, IV: iv, Data: data}, nil
}

func (v *Vault) open(record models.EncryptedRecord) (models.Credential, error) {
	if len(record.Salt) != crypto.SaltSize || len(record.IV) != crypto.IVSize {
		return models.Credential{}, fmt.Errorf("%w: malformed salt or iv", ErrDecryption)
	}

	key := v.deriver.DeriveKey(v.password, record.Salt)
	plain, err := crypto.Open(key, record.IV, record.Data)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	var cred models.Credential
	if err = json.Unmarshal(plain, &cred); err != nil {
		return models.Credential{}, fmt.Errorf("%w: decode credential: %v", ErrDecryption, err)
	}

	return cred, nil
}
