package main

import (
	"fmt"
	"os"

	"ledger_message/internal/config"
	"ledger_message/internal/utils/log"

	"github.com/urfave/cli/v2"
)

type runtime struct {
	cfg config.Config
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	rt := &runtime{cfg: config.Default()}

	return &cli.App{
		Name:  "msgtool",
		Usage: "encode, decode and encrypt ledger transaction messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Before: rt.setup,
		After: func(*cli.Context) error {
			log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			plainCommand(),
			decodeCommand(),
			encryptCommand(rt),
			decryptCommand(rt),
			keygenCommand(rt),
			limbCommand(),
			hashCheckCommand(),
		},
	}
}

func (rt *runtime) setup(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		rt.cfg = cfg
	}
	if level := c.String("log-level"); level != "" {
		rt.cfg.LogLevel = level
	}
	return log.Init(rt.cfg.LogLevel, rt.cfg.LogDevelopment)
}
