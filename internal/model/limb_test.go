package model

import (
	"encoding/json"
	"math"
	"testing"

	"ledger_message/internal/utils/hexutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint64Split(t *testing.T) {
	tests := []struct {
		name   string
		value  uint64
		lower  uint32
		higher uint32
	}{
		{name: "zero", value: 0, lower: 0, higher: 0},
		{name: "low only", value: 0xFFFFFFFF, lower: 0xFFFFFFFF, higher: 0},
		{name: "carry", value: 1 << 32, lower: 0, higher: 1},
		{name: "max", value: math.MaxUint64, lower: 0xFFFFFFFF, higher: 0xFFFFFFFF},
		{name: "mixed", value: 0x0123456789ABCDEF, lower: 0x89ABCDEF, higher: 0x01234567},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromUint64(tt.value)
			assert.Equal(t, tt.lower, l.Lower())
			assert.Equal(t, tt.higher, l.Higher())
			assert.Equal(t, [2]uint32{tt.lower, tt.higher}, l.WireArray())
		})
	}
}

func TestLimbRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, 1 << 31, 1<<32 - 1, 1 << 32, 1<<63 + 7, math.MaxUint64} {
		wire := FromUint64(v).WireArray()

		l, err := FromLimbs([]int64{int64(wire[0]), int64(wire[1])})
		require.NoError(t, err)
		assert.Equal(t, v, l.Uint64())
	}
}

func TestFromLimbsErrors(t *testing.T) {
	tests := []struct {
		name  string
		limbs []int64
		want  error
	}{
		{name: "empty", limbs: nil, want: ErrInvalidArity},
		{name: "one", limbs: []int64{1}, want: ErrInvalidArity},
		{name: "three", limbs: []int64{1, 2, 3}, want: ErrInvalidArity},
		{name: "negative lower", limbs: []int64{-1, 0}, want: ErrOutOfRange},
		{name: "negative higher", limbs: []int64{0, -5}, want: ErrOutOfRange},
		{name: "too wide", limbs: []int64{math.MaxUint32 + 1, 0}, want: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLimbs(tt.limbs)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLimbJSON(t *testing.T) {
	l := FromUint64(0x0000000A00000001)

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 10]`, string(data))

	var decoded Limb64
	require.NoError(t, json.Unmarshal([]byte(`[1, 10]`), &decoded))
	assert.Equal(t, l, decoded)

	var dto struct {
		Amount Limb64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":[3294802500,2243684972]}`), &dto))
	assert.Equal(t, uint64(2243684972)<<32|3294802500, dto.Amount.Uint64())
}

func TestLimbJSONErrors(t *testing.T) {
	var l Limb64
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &l), ErrInvalidArity)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[-1, 0]`), &l), ErrOutOfRange)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1.5, 0]`), &l), ErrOutOfRange)
	assert.Error(t, json.Unmarshal([]byte(`"12"`), &l))
}

func TestLimbHex(t *testing.T) {
	l := FromUint64(0x0123456789ABCDEF)
	assert.Equal(t, "0123456789ABCDEF", l.Hex())
	assert.Equal(t, "81985529216486895", l.String())

	parsed, err := FromHex("0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, l, parsed)

	_, err = FromHex("0123")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromHex("zz")
	assert.ErrorIs(t, err, hexutil.ErrInvalidEncoding)
}
