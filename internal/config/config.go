package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// StorageConfig selects and locates the durable key-value backend.
type StorageConfig struct {
	// Backend is "sqlite" (default) or "disk".
	Backend string `yaml:"backend"`
	// Path is the database file (sqlite) or directory (disk).
	Path string `yaml:"path"`
}

// BasicAuthConfig, if present, gates the whole API behind HTTP Basic
// Authentication. PasswordHash is a bcrypt hash, never the plaintext.
type BasicAuthConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Timezone is the IANA zone events are interpreted in for export
	// and rollover. Empty means the process-local zone.
	Timezone string `yaml:"timezone"`

	Storage StorageConfig `yaml:"storage"`

	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty"`
}

// Default returns the configuration a first run starts from.
func Default() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "orchard.db",
		},
	}
}

// Normalize fills in missing values so partially-filled configs still
// behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.Storage.Backend {
	case "sqlite", "disk":
	default:
		c.Storage.Backend = "sqlite"
	}
	if c.Storage.Path == "" {
		if c.Storage.Backend == "disk" {
			c.Storage.Path = "orchard-data"
		} else {
			c.Storage.Path = "orchard.db"
		}
	}
}

// ApplyEnv overlays ORCHARD_* environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ORCHARD_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("ORCHARD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ORCHARD_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("ORCHARD_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("ORCHARD_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from the given YAML path. A missing file is
// a first run: a default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".orchard-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
