// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth is the nesting limit used by [DefaultConfig].
const DefaultMaxDepth = 64

// Config controls the behavior of a [Decoder].
type Config struct {
	// MaxDepth limits how deep composite values and untyped values may be
	// nested. Exceeding the limit results in a [*FormatError]. A value of 0
	// disables the limit.
	MaxDepth int

	// LogLevel is the minimum level of log events emitted by the decoder, as
	// understood by zerolog.ParseLevel. An empty string keeps the level of the
	// logger passed to [NewDecoder].
	LogLevel string
}

// DefaultConfig returns the configuration used by the package level decoding
// functions.
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		LogLevel: zerolog.Disabled.String(),
	}
}

// fileConfig mirrors the on-disk layout of a decoder configuration.
type fileConfig struct {
	MaxDepth int    `toml:"max_depth"`
	LogLevel string `toml:"log_level"`
}

// LoadConfig reads a TOML configuration from path. Keys that are not present
// keep their value from [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load decoder config: %w", err)
	}
	return configFrom(raw, meta)
}

// ParseConfig parses a TOML configuration from s. See [LoadConfig].
func ParseConfig(s string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(s, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse decoder config: %w", err)
	}
	return configFrom(raw, meta)
}

func configFrom(raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New("unknown decoder config keys: " + strings.Join(keys, ", "))
	}

	cfg := DefaultConfig()
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether all fields of c hold acceptable values.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}
