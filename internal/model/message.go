package model

import (
	"errors"
	"fmt"
	"strings"

	"ledger_message/internal/utils/hexutil"
)

type MessageType uint8

const (
	PlainMessageType                          MessageType = 0x00
	EncryptedMessageType                      MessageType = 0x01
	PersistentHarvestingDelegationMessageType MessageType = 0xFE
	// RawMessageType has no marker on the wire.
	RawMessageType MessageType = 0xFF
)

const (
	PersistentDelegationUnlockMarker      = "FE2A8061577301E2"
	PersistentHarvestingDelegationHexSize = 264
)

var ErrInvalidDelegation = errors.New("invalid persistent harvesting delegation payload")

func (t MessageType) String() string {
	switch t {
	case PlainMessageType:
		return "plain"
	case EncryptedMessageType:
		return "encrypted"
	case PersistentHarvestingDelegationMessageType:
		return "persistent_harvesting_delegation"
	case RawMessageType:
		return "raw"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(t))
	}
}

type (
	// Message is the transaction message field. Plain messages keep their
	// payload as text; every other kind keeps uppercase hex.
	Message struct {
		kind    MessageType
		payload string
	}
)

func NewPlainMessage(text string) Message {
	return Message{kind: PlainMessageType, payload: text}
}

func NewRawMessage(b []byte) Message {
	return Message{kind: RawMessageType, payload: hexutil.ToHex(b)}
}

// NewRawMessageFromHex keeps the whole hex string, marker included.
func NewRawMessageFromHex(payload string) (Message, error) {
	upper, err := hexutil.Normalize(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{kind: RawMessageType, payload: upper}, nil
}

// NewEncryptedPayloadMessage wraps ciphertext hex without decrypting it.
func NewEncryptedPayloadMessage(ciphertextHex string) (Message, error) {
	upper, err := hexutil.Normalize(ciphertextHex)
	if err != nil {
		return Message{}, err
	}
	return Message{kind: EncryptedMessageType, payload: upper}, nil
}

// NewPersistentHarvestingDelegationMessage keeps the record opaque; only the
// marker, size and hex syntax are checked.
func NewPersistentHarvestingDelegationMessage(payload string) (Message, error) {
	upper, err := hexutil.Normalize(payload)
	if err != nil {
		return Message{}, err
	}
	if !IsPersistentHarvestingDelegation(upper) {
		return Message{}, fmt.Errorf("%w: want %d hex chars starting with %s, got %d",
			ErrInvalidDelegation, PersistentHarvestingDelegationHexSize, PersistentDelegationUnlockMarker, len(upper))
	}
	return Message{kind: PersistentHarvestingDelegationMessageType, payload: upper}, nil
}

// IsPersistentHarvestingDelegation expects an already upper-cased payload.
func IsPersistentHarvestingDelegation(upperHex string) bool {
	return len(upperHex) == PersistentHarvestingDelegationHexSize &&
		strings.HasPrefix(upperHex, PersistentDelegationUnlockMarker)
}

func (m Message) Type() MessageType {
	return m.kind
}

func (m Message) Payload() string {
	return m.payload
}

// ToHex renders the wire form: marker byte (if any) followed by the payload.
func (m Message) ToHex() string {
	switch m.kind {
	case PlainMessageType:
		return "00" + hexutil.ToHex([]byte(m.payload))
	case EncryptedMessageType:
		return "01" + m.payload
	default:
		return m.payload
	}
}

func (m Message) ToBytes() ([]byte, error) {
	return hexutil.ToBytes(m.ToHex())
}

// Text recovers readable content. Encrypted payloads come back as whatever
// the ciphertext bytes decode to; use the codec to decrypt them.
func (m Message) Text() (string, error) {
	if m.kind == PlainMessageType {
		return m.payload, nil
	}
	return DecodeHex(m.payload)
}

func (m Message) String() string {
	return fmt.Sprintf("%s:%s", m.kind, m.payload)
}

// DecodeHex turns a hex payload into text, dropping trailing zero padding.
func DecodeHex(hex string) (string, error) {
	return hexutil.ToText(hex, true)
}
