package vault

import "errors"

var (
	// ErrEncryption is returned when a credential record cannot be sealed
	// or persisted.
	ErrEncryption = errors.New("credential encryption failed")

	// ErrDecryption is returned when a stored record exists but cannot be
	// opened: corrupt JSON, wrong password or a tampered ciphertext.
	ErrDecryption = errors.New("credential decryption failed")
)
