package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasks-api/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(cfg *config.Config)
		wantLevel     log.Level
		wantFormatter log.Formatter
	}{
		{"defaults", func(cfg *config.Config) {}, log.InfoLevel, log.TextFormatter},
		{"debug", func(cfg *config.Config) { cfg.Application.Debug = true }, log.DebugLevel, log.TextFormatter},
		{"json", func(cfg *config.Config) { cfg.Application.LogFormat = config.LogFormatJSON }, log.InfoLevel, log.JSONFormatter},
		{"logfmt", func(cfg *config.Config) { cfg.Application.LogFormat = config.LogFormatLogfmt }, log.InfoLevel, log.LogfmtFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)

			opts := OptionsFromConfig(cfg)
			assert.Equal(t, tt.wantLevel, opts.Level)
			assert.Equal(t, tt.wantFormatter, opts.Formatter)
			assert.Equal(t, "tasks-api", opts.Prefix)
		})
	}

	assert.Equal(t, DefaultOptions(), OptionsFromConfig(nil))
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.InfoLevel, Formatter: log.TextFormatter})

	logger.Debug("hidden")
	logger.Info("shown", "port", 3000)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "port=3000")
}

func TestNew_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.DebugLevel, Formatter: log.JSONFormatter, Prefix: "tasks-api"})

	logger.Info("request", "status", 201)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, float64(201), entry["status"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Info("nothing")
	})
}
