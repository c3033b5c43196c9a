// Package hexutil converts between the uppercase hex strings used on the wire
// and raw bytes.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("invalid hex encoding")

// ToHex renders b as uppercase hex, two digits per byte, no separators.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// IsHexString reports whether s has even length and only hex digits.
// The empty string is valid hex.
func IsHexString(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// ToBytes decodes s (either case).
func ToBytes(s string) ([]byte, error) {
	if !IsHexString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, truncate(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// ToText decodes s and reinterprets the bytes as UTF-8 text.
// With stripNulls set, trailing zero bytes are dropped first.
func ToText(s string, stripNulls bool) (string, error) {
	b, err := ToBytes(s)
	if err != nil {
		return "", err
	}
	return BytesToText(b, stripNulls), nil
}

// BytesToText is ToText for already decoded bytes.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func BytesToText(b []byte, stripNulls bool) string {
	if stripNulls {
		end := len(b)
		for end > 0 && b[end-1] == 0 {
			end--
		}
		b = b[:end]
	}
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}

// Normalize upper-cases s after validating it.
func Normalize(s string) (string, error) {
	if !IsHexString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, truncate(s))
	}
	return strings.ToUpper(s), nil
}

func truncate(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
