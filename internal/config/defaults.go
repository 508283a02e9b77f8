package config

import (
	_ "embed"
	"errors"
)

//go:embed defaults/puzzlebox.yaml
var defaultAppYAML []byte

var (
	ErrBadTickRate = errors.New("config: tick_rate must be between 1 and 120")
	ErrBadTheme    = errors.New("config: theme must be \"dark\" or \"light\"")
)

// DefaultAppConfig returns the default application configuration. It is
// the final fallback when the embedded YAML cannot be parsed.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Display: DisplayConfig{
			Theme:    "dark",
			TickRate: 30,
		},
		Database: DatabaseConfig{
			Path: "~/.puzzlebox/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKeyPath: "~/.puzzlebox/ssh_host_key",
		},
	}
}
