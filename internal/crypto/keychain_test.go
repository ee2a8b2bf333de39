package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestPBKDF2_DeterministicForSameInputs(t *testing.T) {
	kdf := NewPBKDF2Deriver()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := kdf.DeriveKey(password, salt)
	k2 := kdf.DeriveKey(password, salt)

	if len(k1) != KeyLength {
		t.Fatalf("key length = %d, want %d", len(k1), KeyLength)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestPBKDF2_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdf := NewPBKDF2Deriver()

	k1 := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x01}, SaltSize))
	k2 := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x02}, SaltSize))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestPBKDF2_DefaultIterations(t *testing.T) {
	kdf := NewPBKDF2Deriver().(*pbkdf2Deriver)
	if kdf.iterations < 100_000 {
		t.Fatalf("iterations = %d, want at least 100000", kdf.iterations)
	}
}

// RFC 7914 §11 PBKDF2-HMAC-SHA256 vector (c = 1), truncated to 32 bytes.
func TestPBKDF2_KnownVector(t *testing.T) {
	kdf := &pbkdf2Deriver{iterations: 1}

	got := hex.EncodeToString(kdf.DeriveKey("passwd", []byte("salt")))
	want := "55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc"
	if got != want {
		t.Fatalf("derived key = %s, want %s", got, want)
	}
}

func TestArgon2id_DeterministicAndSaltSensitive(t *testing.T) {
	kdf := NewArgon2idDeriver()

	salt := bytes.Repeat([]byte{0x42}, SaltSize)
	k1 := kdf.DeriveKey("pw", salt)
	k2 := kdf.DeriveKey("pw", salt)
	k3 := kdf.DeriveKey("pw", bytes.Repeat([]byte{0x43}, SaltSize))

	if len(k1) != KeyLength {
		t.Fatalf("key length = %d, want %d", len(k1), KeyLength)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected argon2id to be deterministic")
	}
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestNewKeyDeriver(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantName string
		wantErr  bool
	}{
		{name: "empty defaults to pbkdf2", in: "", wantName: KDFPBKDF2},
		{name: "pbkdf2", in: "pbkdf2", wantName: KDFPBKDF2},
		{name: "argon2id mixed case", in: " Argon2ID ", wantName: KDFArgon2id},
		{name: "unknown", in: "scrypt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kdf, err := NewKeyDeriver(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKDF) {
					t.Fatalf("err = %v, want ErrUnknownKDF", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kdf.Name() != tt.wantName {
				t.Fatalf("name = %s, want %s", kdf.Name(), tt.wantName)
			}
		})
	}
}
