package dh

import (
	"crypto/ed25519"
	"crypto/sha512"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/curve25519"
)

var ErrInvalidPublicKey = errors.New("invalid ed25519 public key")

// Perform X25519 scalar multiplication: priv * pub
func X25519SharedSecret(priv, pub [32]byte) ([]byte, error) {
	return curve25519.X25519(priv[:], pub[:])
}

// PrivateKeyToX25519 returns the clamped scalar ed25519 derives from the seed,
// so the same key pair signs and agrees on secrets.
func PrivateKeyToX25519(priv ed25519.PrivateKey) [32]byte {
	h := sha512.Sum512(priv.Seed())
	var scalar [32]byte
	copy(scalar[:], h[:32])
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	return scalar
}

// PublicKeyToX25519 maps an Edwards point to its Montgomery u-coordinate.
func PublicKeyToX25519(pub ed25519.PublicKey) ([32]byte, error) {
	var out [32]byte
	if len(pub) != ed25519.PublicKeySize {
		return out, fmt.Errorf("%w: length %d", ErrInvalidPublicKey, len(pub))
	}
	p, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	copy(out[:], p.BytesMontgomery())
	return out, nil
}

// SharedSecret runs X25519 between our ed25519 private key and their ed25519
// public key. Both sides of a conversation get the same bytes.
func SharedSecret(priv ed25519.PrivateKey, theirPub ed25519.PublicKey) ([]byte, error) {
	pub, err := PublicKeyToX25519(theirPub)
	if err != nil {
		return nil, err
	}
	shared, err := X25519SharedSecret(PrivateKeyToX25519(priv), pub)
	if err != nil {
		return nil, fmt.Errorf("x25519: %w", err)
	}
	return shared, nil
}
