package crypto

import "errors"

var (
	ErrUnknownKDF         = errors.New("unknown key derivation function")
	ErrInvalidKeyLength   = errors.New("invalid key length")
	ErrEmptyIV            = errors.New("empty iv")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrAuthentication     = errors.New("message authentication failed")
)
