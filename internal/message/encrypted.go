package message

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"ledger_message/internal/account"
	"ledger_message/internal/model"
	"ledger_message/internal/utils/hexutil"
	"ledger_message/internal/utils/log"

	"go.uber.org/zap"
)

var (
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrMissingAccount   = errors.New("public account is required")
	ErrMissingKeyPair   = errors.New("key pair is required")
	ErrNotEncrypted     = errors.New("message is not encrypted")
)

type (
	// Cipher is the asymmetric encryption capability the codec delegates to.
	// Implementations must be safe for concurrent use if the codec is shared.
	Cipher interface {
		Encrypt(sender *account.KeyPair, recipientPublicKey ed25519.PublicKey, plaintext []byte) ([]byte, error)
		Decrypt(recipient *account.KeyPair, senderPublicKey ed25519.PublicKey, ciphertext []byte) ([]byte, error)
	}

	// EncryptedMessage is an Encrypted message plus the account it was
	// addressed to, when known. Messages decoded from the wire have no
	// recipient.
	EncryptedMessage struct {
		model.Message
		Recipient *account.PublicAccount
	}

	Codec struct {
		cipher Cipher
	}
)

func NewCodec(c Cipher) *Codec {
	return &Codec{cipher: c}
}

// Create encrypts plainText from sender to recipient.
func (c *Codec) Create(plainText string, recipient *account.PublicAccount, sender *account.KeyPair) (*EncryptedMessage, error) {
	if recipient == nil {
		return nil, ErrMissingAccount
	}
	if sender == nil {
		return nil, ErrMissingKeyPair
	}

	ct, err := c.cipher.Encrypt(sender, recipient.PublicKey(), []byte(plainText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	msg, err := model.NewEncryptedPayloadMessage(hexutil.ToHex(ct))
	if err != nil {
		return nil, err
	}
	return &EncryptedMessage{Message: msg, Recipient: recipient}, nil
}

// Decrypt opens msg with the recipient's key pair and the sender's public
// account and returns the text as a Plain message. Failures of the cipher
// are reported as ErrDecryptionFailed and never retried.
func (c *Codec) Decrypt(msg model.Message, recipient *account.KeyPair, sender *account.PublicAccount) (model.Message, error) {
	if msg.Type() != model.EncryptedMessageType {
		return model.Message{}, fmt.Errorf("%w: got %s", ErrNotEncrypted, msg.Type())
	}
	if recipient == nil {
		return model.Message{}, ErrMissingKeyPair
	}
	if sender == nil {
		return model.Message{}, ErrMissingAccount
	}

	ct, err := hexutil.ToBytes(msg.Payload())
	if err != nil {
		return model.Message{}, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	plain, err := c.cipher.Decrypt(recipient, sender.PublicKey(), ct)
	if err != nil {
		log.Debug("decrypt message failed", zap.String("sender", sender.PublicKeyHex()), zap.Error(err))
		return model.Message{}, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	text, err := model.DecodeHex(hexutil.ToHex(plain))
	if err != nil {
		return model.Message{}, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return model.NewPlainMessage(text), nil
}

// DecryptMessage is Decrypt for a message that knows its recipient; it
// refuses a key pair that does not belong to that recipient.
func (c *Codec) DecryptMessage(msg *EncryptedMessage, recipient *account.KeyPair, sender *account.PublicAccount) (model.Message, error) {
	if msg == nil {
		return model.Message{}, ErrNotEncrypted
	}
	if msg.Recipient != nil && recipient != nil &&
		msg.Recipient.PublicKeyHex() != recipient.PublicKeyHex() {
		return model.Message{}, fmt.Errorf("%w: key pair does not match recipient %s",
			ErrDecryptionFailed, msg.Recipient.Address())
	}
	return c.Decrypt(msg.Message, recipient, sender)
}
