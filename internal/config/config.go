// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves gscholar settings from defaults, a YAML config
// file and GSCHOLAR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/L04DB4L4NC3R/gscholar/internal/logging"
	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// EnvPrefix is prepended to every environment override, e.g.
// GSCHOLAR_HTTP_TIMEOUT for http.timeout.
const EnvPrefix = "GSCHOLAR"

var (
	ErrInvalidTimeout     = errors.New("http.timeout must be positive")
	ErrInvalidFormat      = errors.New("output.format must be one of table, json, yaml, csl")
	ErrInvalidLogLevel    = errors.New("log.level must be one of debug, info, warn, error")
	ErrInvalidConcurrency = errors.New("batch.concurrency must be positive")
)

// SetDefaults registers every known key on v. Keys must be known for
// environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "gscholar/0.1")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", string(types.OutputTable))
	v.SetDefault("search.escape", true)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("library.path", "")
	v.SetDefault("metrics.textfile", "")
}

// BindEnv enables GSCHOLAR_* overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load applies defaults, unmarshals v and validates the result. Config file
// reading is left to the caller so a missing file is not an error here.
func Load(v *viper.Viper) (types.Config, error) {
	SetDefaults(v)
	BindEnv(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot repair.
func Validate(cfg types.Config) error {
	if cfg.HTTP.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if !cfg.Output.Format.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, cfg.Output.Format)
	}
	if !logging.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, cfg.Log.Level)
	}
	if cfg.Batch.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
