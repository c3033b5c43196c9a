package config

import (
	"fmt"
	"strings"

	"ledger_message/internal/model"

	"github.com/BurntSushi/toml"
)

const (
	DefaultNetwork  = "mijin_test"
	DefaultLogLevel = "info"
)

type Config struct {
	Network        string `toml:"network"`
	LogLevel       string `toml:"log_level"`
	LogDevelopment bool   `toml:"log_development"`
}

func Default() Config {
	return Config{
		Network:  DefaultNetwork,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a TOML file and fills in defaults for anything left out.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := model.ParseNetworkType(c.Network); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return nil
}

// NetworkType is only meaningful on a validated config.
func (c Config) NetworkType() model.NetworkType {
	n, _ := model.ParseNetworkType(c.Network)
	return n
}
