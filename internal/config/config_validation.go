// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the ranges of the merged [StructuredConfig]. Requirements
// that only one binary has are checked by the per-binary views.
func (cfg *StructuredConfig) validate() error {
	d := cfg.Directory
	if d.RequestTimeout < 0 || d.PageTimeout < 0 || d.MaxConcurrency < 0 || d.RateLimit < 0 || d.PageSize < 0 {
		return fmt.Errorf("%w: negative values are not allowed", ErrInvalidDirectoryConfigs)
	}
	if d.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size %d exceeds %d", ErrInvalidDirectoryConfigs, d.PageSize, MaxPageSize)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	switch strings.ToLower(cfg.App.VaultKDF) {
	case "", DefaultVaultKDF, "argon2id":
	default:
		return fmt.Errorf("%w: unknown vault kdf %q", ErrInvalidAppConfigs, cfg.App.VaultKDF)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.APIURL) == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RateLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Directory.PageTimeout <= 0 || cfg.Directory.MaxConcurrency < 1 ||
		cfg.Directory.PageSize < 1 || cfg.Directory.PageSize > MaxPageSize {
		return ErrInvalidDirectoryConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.VaultPassword == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Address == "" || cfg.Enterprise == "" || cfg.Token == "" || cfg.Users < 0 || cfg.OwnerEvery < 0 {
		return ErrInvalidStubConfigs
	}
	return nil
}
