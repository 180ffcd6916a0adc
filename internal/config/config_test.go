// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "gscholar/0.1", cfg.HTTP.UserAgent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, types.OutputTable, cfg.Output.Format)
	assert.True(t, cfg.Search.Escape)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Empty(t, cfg.Library.Path)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
http:
  timeout: 5s
  user_agent: custom/2.0
log:
  level: debug
output:
  format: csl
search:
  escape: false
batch:
  concurrency: 8
library:
  path: /tmp/lib.db
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "custom/2.0", cfg.HTTP.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, types.OutputCSL, cfg.Output.Format)
	assert.False(t, cfg.Search.Escape)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, "/tmp/lib.db", cfg.Library.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GSCHOLAR_OUTPUT_FORMAT", "json")
	t.Setenv("GSCHOLAR_HTTP_TIMEOUT", "2s")
	t.Setenv("GSCHOLAR_METRICS_TEXTFILE", "/tmp/gscholar.prom")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, types.OutputJSON, cfg.Output.Format)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "/tmp/gscholar.prom", cfg.Metrics.Textfile)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{"zero timeout", "http.timeout", "0s", ErrInvalidTimeout},
		{"unknown format", "output.format", "bibtex", ErrInvalidFormat},
		{"unknown level", "log.level", "verbose", ErrInvalidLogLevel},
		{"zero concurrency", "batch.concurrency", 0, ErrInvalidConcurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
