// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	History   HistoryConfig   `toml:"history"`
}

// GeneratorConfig maps generator settings. Nil fields were not set in the file.
type GeneratorConfig struct {
	Length    *int  `toml:"length"`
	MinLength *int  `toml:"min-length"`
	MaxLength *int  `toml:"max-length"`
	Uppercase *bool `toml:"uppercase"`
	Lowercase *bool `toml:"lowercase"`
	Numbers   *bool `toml:"numbers"`
	Symbols   *bool `toml:"symbols"`
}

// HistoryConfig maps copy history settings.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
