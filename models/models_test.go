package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSeq_EncodesAsIntegerArray(t *testing.T) {
	rec := EncryptedRecord{Salt: ByteSeq{0, 255}, IV: ByteSeq{12}, Data: ByteSeq{}}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"salt":[0,255],"iv":[12],"data":[]}`, string(raw))

	var back EncryptedRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, rec, back)
}

func TestByteSeq_UnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"out of range", `[1,256]`},
		{"negative", `[-1]`},
		{"base64 string", `"AAE="`},
		{"object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ByteSeq
			err := json.Unmarshal([]byte(tt.in), &b)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode byte sequence")
		})
	}
}

func TestCredential_IsComplete(t *testing.T) {
	assert.True(t, Credential{DirectoryID: "acme", Secret: "t"}.IsComplete())
	assert.False(t, Credential{DirectoryID: "acme"}.IsComplete())
	assert.False(t, Credential{Secret: "t"}.IsComplete())
	assert.False(t, Credential{}.IsComplete())
}

func TestCredential_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(Credential{DirectoryID: "acme", Secret: "tok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"enterpriseName":"acme","token":"tok"}`, string(raw))
}

func TestNewReplaceRolesPatch(t *testing.T) {
	raw, err := json.Marshal(NewReplaceRolesPatch("enterprise_owner"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"schemas": ["urn:ietf:params:scim:api:messages:2.0:PatchOp"],
		"Operations": [{"op":"replace","path":"roles","value":[{"value":"enterprise_owner","primary":true}]}]
	}`, string(raw))
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")
	assert.Equal(t, "v1.2.0", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "abc123", info.Commit())
}
