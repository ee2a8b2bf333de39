// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Key derivation names accepted by [NewKeyDeriver].
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// KeyLength is the derived key size in bytes (AES-256).
const KeyLength = 32

// PBKDF2Iterations is the iteration count of the default deriver.
const PBKDF2Iterations = 100_000

// pbkdf2Deriver is PBKDF2-HMAC-SHA256. It is the default because records
// written by earlier releases were derived this way.
type pbkdf2Deriver struct {
	iterations int
}

// NewPBKDF2Deriver returns a PBKDF2-HMAC-SHA256 [KeyDeriver] with
// [PBKDF2Iterations] iterations and a 256-bit output.
func NewPBKDF2Deriver() KeyDeriver {
	return &pbkdf2Deriver{iterations: PBKDF2Iterations}
}

// DeriveKey implements [KeyDeriver].
func (p *pbkdf2Deriver) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, p.iterations, KeyLength, sha256.New)
}

// Name implements [KeyDeriver].
func (p *pbkdf2Deriver) Name() string {
	return KDFPBKDF2
}

// argon2idDeriver derives keys with Argon2id.
type argon2idDeriver struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2idDeriver constructs a [KeyDeriver] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2idDeriver() KeyDeriver {
	return &argon2idDeriver{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
	}
}

// DeriveKey implements [KeyDeriver].
func (a *argon2idDeriver) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, KeyLength)
}

// Name implements [KeyDeriver].
func (a *argon2idDeriver) Name() string {
	return KDFArgon2id
}

// NewKeyDeriver returns the deriver registered under name. An empty name
// selects PBKDF2. Unknown names yield [ErrUnknownKDF].
func NewKeyDeriver(name string) (KeyDeriver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", KDFPBKDF2:
		return NewPBKDF2Deriver(), nil
	case KDFArgon2id:
		return NewArgon2idDeriver(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, name)
	}
}
