// Package hash knows the digest algorithms a ledger secret lock can name and
// how long their hex digests are.
package hash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"ledger_message/internal/utils/hexutil"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

var ErrInvalidArgument = errors.New("invalid hash algorithm")

type Algorithm uint8

const (
	Sha3_256 Algorithm = iota
	Hash_160
	Hash_256
)

var algorithmNames = map[Algorithm]string{
	Sha3_256: "sha3_256",
	Hash_160: "hash_160",
	Hash_256: "hash_256",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(a))
}

func Parse(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidArgument, name)
}

// IsValidLength reports whether digest is hex of the size a produces.
// Hash_160 also accepts the 32-byte form some clients send zero padded.
// An unknown algorithm is a caller bug and returns ErrInvalidArgument.
func IsValidLength(a Algorithm, digest string) (bool, error) {
	if _, ok := algorithmNames[a]; !ok {
		return false, fmt.Errorf("%w: %d", ErrInvalidArgument, uint8(a))
	}
	if !hexutil.IsHexString(digest) {
		return false, nil
	}

	switch a {
	case Hash_160:
		return len(digest) == 40 || len(digest) == 64, nil
	default:
		return len(digest) == 64, nil
	}
}

// Sum computes the digest a names over data.
func Sum(a Algorithm, data []byte) ([]byte, error) {
	switch a {
	case Sha3_256:
		sum := sha3.Sum256(data)
		return sum[:], nil
	case Hash_160:
		inner := sha256.Sum256(data)
		h := ripemd160.New()
		h.Write(inner[:])
		return h.Sum(nil), nil
	case Hash_256:
		inner := sha256.Sum256(data)
		outer := sha256.Sum256(inner[:])
		return outer[:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidArgument, uint8(a))
	}
}
