package kdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 5869 test case 1.
func TestHKDFVector(t *testing.T) {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")

	okm := make([]byte, 42)
	n, err := HKDF(ikm, salt, info, okm)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t,
		"3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865",
		hex.EncodeToString(okm))
}

func TestDeriveKey(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")

	k1, err := DeriveKey(secret, "message", 32)
	require.NoError(t, err)
	k2, err := DeriveKey(secret, "message", 32)
	require.NoError(t, err)
	k3, err := DeriveKey(secret, "other", 32)
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
