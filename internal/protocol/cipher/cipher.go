package cipher

import (
	"crypto/ed25519"
	"fmt"

	"ledger_message/internal/account"
	"ledger_message/internal/cryptographic/dh"
	"ledger_message/internal/cryptographic/encryption"
	"ledger_message/internal/cryptographic/kdf"
)

// MessageKeyInfo separates message keys from any other use of the shared secret.
const MessageKeyInfo = "ledger-message-encryption"

type (
	// Cipher encrypts message bodies between two ledger accounts: X25519 over
	// the accounts' ed25519 keys, HKDF-SHA256, then AES-256-GCM.
	// It holds no state and is safe for concurrent use.
	Cipher struct {
	}
)

func New() *Cipher {
	return &Cipher{}
}

// SharedKey derives the symmetric key both parties compute for each other.
func SharedKey(kp *account.KeyPair, otherPublicKey ed25519.PublicKey) ([]byte, error) {
	shared, err := dh.SharedSecret(kp.PrivateKey(), otherPublicKey)
	if err != nil {
		return nil, err
	}
	return kdf.DeriveKey(shared, MessageKeyInfo, encryption.KeySize)
}

func (c *Cipher) Encrypt(sender *account.KeyPair, recipientPublicKey ed25519.PublicKey, plaintext []byte) ([]byte, error) {
	key, err := SharedKey(sender, recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("derive message key: %w", err)
	}
	return encryption.AEADEncrypt(key, plaintext, nil)
}

func (c *Cipher) Decrypt(recipient *account.KeyPair, senderPublicKey ed25519.PublicKey, ciphertext []byte) ([]byte, error) {
	key, err := SharedKey(recipient, senderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("derive message key: %w", err)
	}
	return encryption.AEADDecrypt(key, ciphertext, nil)
}
