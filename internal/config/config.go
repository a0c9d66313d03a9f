package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional user settings read from a TOML file. Everything
// has a sensible default; the file only exists to override them.
type Config struct {
	// Frequency is the initial automatic stepping rate in steps per
	// second. It is snapped to the nearest supported rate at startup.
	Frequency float64 `toml:"frequency"`

	// Width overrides the ribbon window width in cells. Zero means size
	// to the terminal.
	Width int `toml:"width"`

	// LogFile is where debug logging goes.
	LogFile string `toml:"log_file"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Frequency: 1,
		LogFile:   "noseburn_debug.log",
	}
}

// Load reads a config file over the defaults. A missing file is not an
// error; a present but unreadable or invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Frequency <= 0 {
		return nil, fmt.Errorf("config %s: frequency must be positive", path)
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("config %s: width must not be negative", path)
	}
	return cfg, nil
}
