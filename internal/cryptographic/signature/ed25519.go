package signature

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
)

var ErrInvalidSeed = errors.New("invalid ed25519 seed")

func NewEd25519Keypair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// Ed25519FromSeed expands a 32-byte private key as stored by ledger wallets.
func Ed25519FromSeed(seed []byte) (ed25519.PublicKey, ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, nil, fmt.Errorf("%w: length %d", ErrInvalidSeed, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), priv, nil
}

func ED25519Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

func ED25519Verify(pub ed25519.PublicKey, message []byte, signature []byte) bool {
	return ed25519.Verify(pub, message, signature)
}
