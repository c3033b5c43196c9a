// Package message decodes transaction message payloads into typed messages
// and encrypts or decrypts message bodies between accounts.
//
// Wire format (uppercase hex):
//
//	Raw:        payload as is, no marker
//	Plain:      00 || hex(utf-8 text)
//	Encrypted:  01 || hex(ciphertext)
//	Delegation: FE2A8061577301E2 || ... (fixed 264 hex chars)
package message

import (
	"strconv"

	"ledger_message/internal/model"
	"ledger_message/internal/utils/hexutil"
	"ledger_message/internal/utils/log"

	"go.uber.org/zap"
)

// FromHexPayload picks the message kind from the leading marker. It never
// drops data: anything without a known marker comes back as Raw. Only input
// that is not hex at all fails, with hexutil.ErrInvalidEncoding.
func FromHexPayload(payload string) (model.Message, error) {
	if payload == "" {
		return model.NewRawMessage(nil), nil
	}

	upper, err := hexutil.Normalize(payload)
	if err != nil {
		return model.Message{}, err
	}

	if model.IsPersistentHarvestingDelegation(upper) {
		return model.NewPersistentHarvestingDelegationMessage(upper)
	}

	marker, err := strconv.ParseUint(upper[:2], 16, 8)
	if err != nil {
		return model.Message{}, err
	}

	switch model.MessageType(marker) {
	case model.PlainMessageType:
		text, err := model.DecodeHex(upper[2:])
		if err != nil {
			return model.Message{}, err
		}
		return model.NewPlainMessage(text), nil
	case model.EncryptedMessageType:
		return model.NewEncryptedPayloadMessage(upper[2:])
	default:
		log.Debug("unrecognized message marker, keeping raw payload",
			zap.String("marker", upper[:2]), zap.Int("size", len(upper)/2))
		return model.NewRawMessageFromHex(upper)
	}
}

// FromBuffer is FromHexPayload for raw bytes.
func FromBuffer(b []byte) (model.Message, error) {
	if len(b) == 0 {
		return model.NewRawMessage(nil), nil
	}
	return FromHexPayload(hexutil.ToHex(b))
}
