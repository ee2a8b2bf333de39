// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Credential is the plaintext secret pair the vault protects. It exists in
// clear form only in process memory while a session is active.
type Credential struct {
	// DirectoryID is the enterprise slug used to build the SCIM base path.
	DirectoryID string `json:"enterpriseName"`

	// Secret is the bearer token sent with every directory request.
	Secret string `json:"token"`
}

// IsComplete reports whether both halves of the credential are present.
// A partially decoded record is treated the same as no record at all.
func (c Credential) IsComplete() bool {
	return c.DirectoryID != "" && c.Secret != ""
}

// EncryptedRecord is the only unit the vault persists. Salt and IV are
// freshly generated on every store call; Data is the AES-GCM ciphertext
// including its authentication tag.
type EncryptedRecord struct {
	Salt ByteSeq `json:"salt"`
	IV   ByteSeq `json:"iv"`
	Data ByteSeq `json:"data"`
}

// ByteSeq is a byte slice encoded in JSON as an array of integers
// (e.g. [12,255,0]) instead of the default base64 string.
type ByteSeq []byte

// MarshalJSON implements [json.Marshaler].
func (b ByteSeq) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON implements [json.Unmarshaler]. Every element must be an
// integer in the range 0..255.
func (b *ByteSeq) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("decode byte sequence: %w", err)
	}

	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("decode byte sequence: value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}

	*b = out
	return nil
}
