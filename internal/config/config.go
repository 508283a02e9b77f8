// Package config provides YAML-based application configuration for the
// puzzle collection: display, database and SSH serving settings.
package config

// AppConfig contains all platform-level settings. Game rules are fixed
// in the game packages and are not configurable here.
type AppConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Database DatabaseConfig `yaml:"database"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	Theme    string `yaml:"theme"`     // "dark" or "light"
	TickRate int    `yaml:"tick_rate"` // game ticks per second
}

// DatabaseConfig defines where scores are persisted.
type DatabaseConfig struct {
	Path string `yaml:"path"` // sqlite file, ~ is expanded
}

// SSHConfig defines the optional SSH serving mode.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Validate checks the configuration for usable values.
func (c *AppConfig) Validate() error {
	if c.Display.TickRate < 1 || c.Display.TickRate > 120 {
		return ErrBadTickRate
	}
	if c.Display.Theme != "dark" && c.Display.Theme != "light" {
		return ErrBadTheme
	}
	return nil
}
