// Package config loads the host CLI configuration.
package config

// #region imports
import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region config

// Config carries host-level settings; the core pipeline takes them as
// plain arguments and never reads files itself.
type Config struct {
	DBPath       string `yaml:"db_path"`
	ThinkDelayMS int    `yaml:"think_delay_ms"`
	Seed         *int64 `yaml:"seed"` // nil = time-seeded context fallback
}

// ThinkDelay returns the configured delay as a duration.
func (c Config) ThinkDelay() time.Duration {
	return time.Duration(c.ThinkDelayMS) * time.Millisecond
}

// #endregion

// #region defaults

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DBPath:       envOr("FORMSIGHT_DB", "formsight.db"),
		ThinkDelayMS: 800,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion

// #region load

// Load reads a yaml config file, falling back to defaults for a missing
// path or a missing file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion
