// Package config loads optional tool defaults from the XDG config directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// Config holds defaults overridable per invocation by CLI flags.
type Config struct {
	// Archiver is the external archiver binary name or path.
	Archiver string `toml:"archiver"`
	// Compression is the default compression selector (z, b or n).
	Compression string `toml:"compression"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Archiver:    "mpqcli",
		Compression: string(types.CompressionZlib),
	}
}

// Load reads config.toml from the XDG config directory. A missing file
// yields the built-in defaults.
func Load() (Config, error) {
	return LoadFrom(filepath.Join(xdg.ConfigHome, "mpqbuild", "config.toml"))
}

// LoadFrom reads configuration from an explicit path, filling unset fields
// with defaults and validating the compression selector.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "cannot parse config file %s", path)
	}

	if cfg.Archiver == "" {
		cfg.Archiver = Default().Archiver
	}
	if cfg.Compression == "" {
		cfg.Compression = Default().Compression
	}
	if _, err := types.ParseCompression(cfg.Compression); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid config file %s", path)
	}

	return cfg, nil
}
