// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the key-derivation and authenticated-encryption
// primitives used by the local credential vault. It knows nothing about
// storage, the network or the directory.
//
// Scheme used by the vault:
//
//	salt, iv = RandomBytes(16), RandomBytes(16)   (fresh per store)
//	key      = KeyDeriver.DeriveKey(password, salt)
//	data     = Seal(key, iv, plaintext)            (AES-256-GCM, tag appended)
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_deriver_mock.go -package=mock

// KeyDeriver turns a low-entropy password and a random salt into a 256-bit
// symmetric key with a deliberately slow function. Implementations must be
// deterministic: the same password and salt always yield the same key.
type KeyDeriver interface {
	// DeriveKey returns a 32-byte key for password and salt.
	DeriveKey(password string, salt []byte) []byte

	// Name returns the configuration name of the derivation function
	// ("pbkdf2" or "argon2id").
	Name() string
}
