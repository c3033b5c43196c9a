package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF fills buffer from HKDF-SHA256(secret, salt, info).
func HKDF(secret, salt, info, buffer []byte) (int, error) {
	h := hkdf.New(sha256.New, secret, salt, info)
	return io.ReadFull(h, buffer)
}

// DeriveKey expands a DH shared secret into a size-byte symmetric key.
// No salt: the secret is already uniformly random per key pair.
func DeriveKey(sharedSecret []byte, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := HKDF(sharedSecret, nil, []byte(info), key); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return key, nil
}
