package model

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"ledger_message/internal/utils/hexutil"
)

var (
	ErrInvalidArity = errors.New("limb array must have exactly two elements")
	ErrOutOfRange   = errors.New("limb out of range")
)

type (
	// Limb64 is an unsigned 64-bit ledger value split into two 32-bit halves,
	// lower first. Node DTOs carry it as the JSON array [lower, higher].
	Limb64 struct {
		lower  uint32
		higher uint32
	}
)

func FromUint64(v uint64) Limb64 {
	return Limb64{
		lower:  uint32(v & 0xFFFFFFFF),
		higher: uint32(v >> 32),
	}
}

// FromLimbs builds a Limb64 from its wire array. Signed input is accepted so
// that negative values coming from loosely typed sources are rejected here.
func FromLimbs(limbs []int64) (Limb64, error) {
	if len(limbs) != 2 {
		return Limb64{}, fmt.Errorf("%w: got %d", ErrInvalidArity, len(limbs))
	}
	for i, v := range limbs {
		if v < 0 || v > math.MaxUint32 {
			return Limb64{}, fmt.Errorf("%w: element %d = %d", ErrOutOfRange, i, v)
		}
	}
	return Limb64{lower: uint32(limbs[0]), higher: uint32(limbs[1])}, nil
}

// FromHex parses the 16 digit id form (higher half first).
func FromHex(s string) (Limb64, error) {
	b, err := hexutil.ToBytes(s)
	if err != nil {
		return Limb64{}, err
	}
	if len(b) != 8 {
		return Limb64{}, fmt.Errorf("%w: want 8 bytes, got %d", ErrOutOfRange, len(b))
	}
	return FromUint64(binary.BigEndian.Uint64(b)), nil
}

func (l Limb64) Lower() uint32 {
	return l.lower
}

func (l Limb64) Higher() uint32 {
	return l.higher
}

func (l Limb64) Uint64() uint64 {
	return uint64(l.higher)<<32 | uint64(l.lower)
}

func (l Limb64) WireArray() [2]uint32 {
	return [2]uint32{l.lower, l.higher}
}

func (l Limb64) Hex() string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], l.Uint64())
	return hexutil.ToHex(b[:])
}

func (l Limb64) String() string {
	return strconv.FormatUint(l.Uint64(), 10)
}

func (l Limb64) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.WireArray())
}

func (l *Limb64) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode limb array: %w", err)
	}

	limbs := make([]int64, len(raw))
	for i, n := range raw {
		v, err := n.Int64()
		if err != nil {
			return fmt.Errorf("%w: element %d = %s", ErrOutOfRange, i, n)
		}
		limbs[i] = v
	}

	parsed, err := FromLimbs(limbs)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
