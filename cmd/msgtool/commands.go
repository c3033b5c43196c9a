package main

import (
	"errors"
	"fmt"
	"strconv"

	"ledger_message/internal/account"
	"ledger_message/internal/cryptographic/hash"
	"ledger_message/internal/message"
	"ledger_message/internal/model"
	"ledger_message/internal/protocol/cipher"
	"ledger_message/internal/utils/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errMissingArgument = errors.New("missing argument")

func requireArg(c *cli.Context, name string) (string, error) {
	if c.Args().Len() < 1 {
		return "", fmt.Errorf("%w: %s", errMissingArgument, name)
	}
	return c.Args().First(), nil
}

func plainCommand() *cli.Command {
	return &cli.Command{
		Name:      "plain",
		Usage:     "print the wire hex of a plain text message",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			text, err := requireArg(c, "text")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, model.NewPlainMessage(text).ToHex())
			return nil
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "identify a wire payload and print its content",
		ArgsUsage: "<hex>",
		Action: func(c *cli.Context) error {
			payload, err := requireArg(c, "hex")
			if err != nil {
				return err
			}
			m, err := message.FromHexPayload(payload)
			if err != nil {
				return err
			}
			log.Debug("decoded message", zap.Stringer("type", m.Type()))

			fmt.Fprintf(c.App.Writer, "type: %s\n", m.Type())
			fmt.Fprintf(c.App.Writer, "payload: %s\n", m.Payload())
			if m.Type() == model.PlainMessageType {
				fmt.Fprintf(c.App.Writer, "text: %s\n", m.Payload())
			}
			return nil
		},
	}
}

func encryptCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Usage:     "encrypt a message for a recipient and print its wire hex",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sender-key", Usage: "sender private key (hex)", Required: true},
			&cli.StringFlag{Name: "recipient-pub", Usage: "recipient public key (hex)", Required: true},
		},
		Action: func(c *cli.Context) error {
			text, err := requireArg(c, "text")
			if err != nil {
				return err
			}
			sender, err := account.NewKeyPair(c.String("sender-key"))
			if err != nil {
				return err
			}
			recipient, err := account.NewPublicAccount(c.String("recipient-pub"), rt.cfg.NetworkType())
			if err != nil {
				return err
			}

			em, err := message.NewCodec(cipher.New()).Create(text, recipient, sender)
			if err != nil {
				return err
			}
			log.Info("message encrypted", zap.Stringer("recipient", recipient.Address()))
			fmt.Fprintln(c.App.Writer, em.ToHex())
			return nil
		},
	}
}

func decryptCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Usage:     "decrypt an encrypted wire payload",
		ArgsUsage: "<hex>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "recipient-key", Usage: "recipient private key (hex)", Required: true},
			&cli.StringFlag{Name: "sender-pub", Usage: "sender public key (hex)", Required: true},
		},
		Action: func(c *cli.Context) error {
			payload, err := requireArg(c, "hex")
			if err != nil {
				return err
			}
			recipient, err := account.NewKeyPair(c.String("recipient-key"))
			if err != nil {
				return err
			}
			sender, err := account.NewPublicAccount(c.String("sender-pub"), rt.cfg.NetworkType())
			if err != nil {
				return err
			}
			m, err := message.FromHexPayload(payload)
			if err != nil {
				return err
			}

			plain, err := message.NewCodec(cipher.New()).Decrypt(m, recipient, sender)
			if err != nil {
				log.Error("decrypt failed", zap.Error(err))
				return err
			}
			fmt.Fprintln(c.App.Writer, plain.Payload())
			return nil
		},
	}
}

func keygenCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate a key pair and print its address on the configured network",
		Action: func(c *cli.Context) error {
			kp, err := account.GenerateKeyPair()
			if err != nil {
				return err
			}
			pub := kp.PublicAccount(rt.cfg.NetworkType())
			fmt.Fprintf(c.App.Writer, "private: %s\n", kp.PrivateKeyHex())
			fmt.Fprintf(c.App.Writer, "public: %s\n", pub.PublicKeyHex())
			fmt.Fprintf(c.App.Writer, "address: %s\n", pub.Address())
			return nil
		},
	}
}

func limbCommand() *cli.Command {
	return &cli.Command{
		Name:      "limb",
		Usage:     "split a uint64 into [lower, higher] or join --lower/--higher back",
		ArgsUsage: "[uint64]",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "lower"},
			&cli.Int64Flag{Name: "higher"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("lower") || c.IsSet("higher") {
				l, err := model.FromLimbs([]int64{c.Int64("lower"), c.Int64("higher")})
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%s %s\n", l, l.Hex())
				return nil
			}

			arg, err := requireArg(c, "uint64")
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", model.ErrOutOfRange, err)
			}
			data, err := model.FromUint64(v).MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, string(data))
			return nil
		},
	}
}

func hashCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "hashcheck",
		Usage:     "check that a hex digest has the length its algorithm produces",
		ArgsUsage: "<hex>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algo", Usage: "sha3_256, hash_160 or hash_256", Value: "sha3_256"},
		},
		Action: func(c *cli.Context) error {
			digest, err := requireArg(c, "hex")
			if err != nil {
				return err
			}
			algo, err := hash.Parse(c.String("algo"))
			if err != nil {
				return err
			}
			ok, err := hash.IsValidLength(algo, digest)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, ok)
			return nil
		},
	}
}
