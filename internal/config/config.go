package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"go.arith.dev/pkg"
)

// Config holds the settings of the interactive loop
type Config struct {
	Prompt   string `toml:"prompt"`
	Format   string `toml:"format"`
	NoColor  bool   `toml:"no_color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads the file named by ARITH_CONFIG, or the first config
// found in the default locations. Having no file at all is not an error.
func LoadDefault() (*Config, error) {
	if path := os.Getenv("ARITH_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./arith.toml"}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "arith", "config.toml"))
	}

	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = "> "
	}
	if c.Format == "" {
		c.Format = string(arith.FormatDebug)
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks that the named format and log level exist
func (c *Config) Validate() error {
	if _, err := arith.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

func (c *Config) OutputFormat() arith.Format {
	f, err := arith.ParseFormat(c.Format)
	if err != nil {
		return arith.FormatDebug
	}

	return f
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}

	return level
}
