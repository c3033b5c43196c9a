// Package account holds ledger key material handles and the public identity
// derived from them.
package account

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"ledger_message/internal/cryptographic/signature"
	"ledger_message/internal/model"
	"ledger_message/internal/utils/hexutil"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	AddressSize        = 25
	addressChecksumLen = 4
)

var (
	ErrInvalidKey     = errors.New("invalid key")
	ErrInvalidAddress = errors.New("invalid address")
)

type (
	// KeyPair is an opaque handle to an ed25519 key. The private half never
	// leaves the package except through PrivateKey for crypto capabilities.
	KeyPair struct {
		privateKey ed25519.PrivateKey
		publicKey  ed25519.PublicKey
	}

	PublicAccount struct {
		publicKey ed25519.PublicKey
		network   model.NetworkType
		address   Address
	}

	Address [AddressSize]byte
)

// NewKeyPair loads a key pair from its 32-byte private key in hex.
func NewKeyPair(privateKeyHex string) (*KeyPair, error) {
	seed, err := hexutil.ToBytes(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	pub, priv, err := signature.Ed25519FromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &KeyPair{privateKey: priv, publicKey: pub}, nil
}

func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := signature.NewEd25519Keypair()
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}
	return &KeyPair{privateKey: priv, publicKey: pub}, nil
}

func (k *KeyPair) PrivateKey() ed25519.PrivateKey {
	return k.privateKey
}

func (k *KeyPair) PrivateKeyHex() string {
	return hexutil.ToHex(k.privateKey.Seed())
}

func (k *KeyPair) PublicKey() ed25519.PublicKey {
	return k.publicKey
}

func (k *KeyPair) PublicKeyHex() string {
	return hexutil.ToHex(k.publicKey)
}

func (k *KeyPair) Sign(data []byte) []byte {
	return signature.ED25519Sign(k.privateKey, data)
}

func (k *KeyPair) PublicAccount(network model.NetworkType) *PublicAccount {
	return newPublicAccount(k.publicKey, network)
}

// NewPublicAccount validates a 32-byte public key in hex.
func NewPublicAccount(publicKeyHex string, network model.NetworkType) (*PublicAccount, error) {
	if !network.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", model.ErrUnknownNetwork, uint8(network))
	}
	pub, err := hexutil.ToBytes(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: public key length %d", ErrInvalidKey, len(pub))
	}
	return newPublicAccount(pub, network), nil
}

func newPublicAccount(pub ed25519.PublicKey, network model.NetworkType) *PublicAccount {
	key := make(ed25519.PublicKey, len(pub))
	copy(key, pub)
	return &PublicAccount{
		publicKey: key,
		network:   network,
		address:   deriveAddress(key, network),
	}
}

func (p *PublicAccount) PublicKey() ed25519.PublicKey {
	return p.publicKey
}

func (p *PublicAccount) PublicKeyHex() string {
	return hexutil.ToHex(p.publicKey)
}

func (p *PublicAccount) Network() model.NetworkType {
	return p.network
}

func (p *PublicAccount) Address() Address {
	return p.address
}

func (p *PublicAccount) Verify(data, sig []byte) bool {
	return signature.ED25519Verify(p.publicKey, data, sig)
}

func (p *PublicAccount) Equal(other *PublicAccount) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.network == other.network && bytes.Equal(p.publicKey, other.publicKey)
}

// deriveAddress: network || RIPEMD160(SHA3-256(pub)) || SHA3-256(prefix)[:4].
func deriveAddress(pub ed25519.PublicKey, network model.NetworkType) Address {
	keyHash := sha3.Sum256(pub)
	r := ripemd160.New()
	r.Write(keyHash[:])

	var addr Address
	addr[0] = byte(network)
	copy(addr[1:21], r.Sum(nil))

	checksum := sha3.Sum256(addr[:21])
	copy(addr[21:], checksum[:addressChecksumLen])
	return addr
}

// ParseAddress accepts the base32 form with or without dashes.
func ParseAddress(s string) (Address, error) {
	var addr Address
	raw := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	b, err := base32.StdEncoding.DecodeString(raw)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != AddressSize {
		return addr, fmt.Errorf("%w: length %d", ErrInvalidAddress, len(b))
	}
	copy(addr[:], b)
	if !addr.Valid() {
		return addr, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return addr, nil
}

func (a Address) String() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

func (a Address) Network() model.NetworkType {
	return model.NetworkType(a[0])
}

// Valid checks the embedded checksum.
func (a Address) Valid() bool {
	checksum := sha3.Sum256(a[:21])
	return bytes.Equal(checksum[:addressChecksumLen], a[21:])
}
