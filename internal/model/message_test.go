package model

import (
	"strings"
	"testing"

	"ledger_message/internal/utils/hexutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delegationPayload() string {
	return PersistentDelegationUnlockMarker +
		strings.Repeat("AB", (PersistentHarvestingDelegationHexSize-len(PersistentDelegationUnlockMarker))/2)
}

func TestNewPlainMessage(t *testing.T) {
	m := NewPlainMessage("hello")

	assert.Equal(t, PlainMessageType, m.Type())
	assert.Equal(t, "hello", m.Payload())
	assert.Equal(t, "0068656C6C6F", m.ToHex())

	text, err := m.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestNewRawMessage(t *testing.T) {
	m := NewRawMessage([]byte{0x02, 0xab, 0xcd})

	assert.Equal(t, RawMessageType, m.Type())
	assert.Equal(t, "02ABCD", m.Payload())
	assert.Equal(t, "02ABCD", m.ToHex(), "raw messages carry no marker")

	b, err := m.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0xab, 0xcd}, b)
}

func TestNewRawMessageFromHex(t *testing.T) {
	m, err := NewRawMessageFromHex("02abcd")
	require.NoError(t, err)
	assert.Equal(t, "02ABCD", m.Payload())

	_, err = NewRawMessageFromHex("02abc")
	assert.ErrorIs(t, err, hexutil.ErrInvalidEncoding)
}

func TestNewEncryptedPayloadMessage(t *testing.T) {
	m, err := NewEncryptedPayloadMessage("deadbeef")
	require.NoError(t, err)

	assert.Equal(t, EncryptedMessageType, m.Type())
	assert.Equal(t, "DEADBEEF", m.Payload())
	assert.Equal(t, "01DEADBEEF", m.ToHex())

	_, err = NewEncryptedPayloadMessage("nothex")
	assert.ErrorIs(t, err, hexutil.ErrInvalidEncoding)
}

func TestNewPersistentHarvestingDelegationMessage(t *testing.T) {
	payload := delegationPayload()
	require.Len(t, payload, PersistentHarvestingDelegationHexSize)

	m, err := NewPersistentHarvestingDelegationMessage(strings.ToLower(payload))
	require.NoError(t, err)
	assert.Equal(t, PersistentHarvestingDelegationMessageType, m.Type())
	assert.Equal(t, payload, m.Payload())
	assert.Equal(t, payload, m.ToHex())

	tests := []struct {
		name    string
		payload string
	}{
		{name: "short", payload: payload[:len(payload)-2]},
		{name: "wrong marker", payload: "00" + payload[2:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPersistentHarvestingDelegationMessage(tt.payload)
			assert.ErrorIs(t, err, ErrInvalidDelegation)
		})
	}
}

func TestDecodeHexStripsPadding(t *testing.T) {
	text, err := DecodeHex("68656C6C6F000000")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = DecodeHex("686")
	assert.ErrorIs(t, err, hexutil.ErrInvalidEncoding)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "plain", PlainMessageType.String())
	assert.Equal(t, "encrypted", EncryptedMessageType.String())
	assert.Equal(t, "raw", RawMessageType.String())
	assert.Equal(t, "persistent_harvesting_delegation", PersistentHarvestingDelegationMessageType.String())
	assert.Equal(t, "unknown(0x07)", MessageType(7).String())
}
