package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) Lookup {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(mapLookup(nil))
	require.NoError(t, err)
	assert.Empty(t, cfg.EventsURL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOnRunner(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{"GITHUB_ACTIONS": "true"}))
	require.NoError(t, err)
	assert.Equal(t, "workflow", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		"GITHUB_ACTIONS":       "true",
		"PAGERDUTY_EVENTS_URL": "http://localhost:9999/v2/enqueue",
		"LOG_FORMAT":           "TEXT",
		"LOG_LEVEL":            "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v2/enqueue", cfg.EventsURL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(mapLookup(map[string]string{"LOG_FORMAT": "xml"}))
	assert.ErrorContains(t, err, "LOG_FORMAT")

	_, err = Load(mapLookup(map[string]string{"LOG_LEVEL": "loud"}))
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
