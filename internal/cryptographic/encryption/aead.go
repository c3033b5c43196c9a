package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	TagSize   = 16
	NonceSize = 12
	KeySize   = 32
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return aead, nil
}

// AEADEncrypt seals plaintext with AES-256-GCM and a random nonce.
// Output layout is tag || nonce || ciphertext.
func AEADEncrypt(key, plaintext, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("rand.Read nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, aad)
	ctLen := len(sealed) - TagSize

	out := make([]byte, 0, TagSize+NonceSize+ctLen)
	out = append(out, sealed[ctLen:]...)
	out = append(out, nonce...)
	out = append(out, sealed[:ctLen]...)
	return out, nil
}

func AEADDecrypt(key, payload, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(payload) < TagSize+NonceSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCiphertextTooShort, len(payload))
	}
	tag := payload[:TagSize]
	nonce := payload[TagSize : TagSize+NonceSize]
	ct := payload[TagSize+NonceSize:]

	sealed := make([]byte, 0, len(ct)+TagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plain, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("aead.Open: %w", err)
	}
	return plain, nil
}
