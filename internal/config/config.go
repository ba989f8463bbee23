package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config contains process-level settings. Step inputs are read through the
// runner host, not from here.
type Config struct {
	// EventsURL overrides the Events API endpoint; empty keeps the client default.
	EventsURL string
	LogFormat string
	LogLevel  slog.Level
}

const (
	defaultLogFormat = "json"
	defaultLogLevel  = slog.LevelInfo
)

// Lookup resolves an environment variable.
type Lookup func(key string) (string, bool)

// Load builds a Config from environment variables with sane defaults.
// A nil lookup reads the process environment.
func Load(lookup Lookup) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	format := defaultLogFormat
	if getenvDefault(lookup, "GITHUB_ACTIONS", "") == "true" {
		format = "workflow"
	}

	cfg := &Config{
		EventsURL: getenvDefault(lookup, "PAGERDUTY_EVENTS_URL", ""),
		LogFormat: strings.ToLower(getenvDefault(lookup, "LOG_FORMAT", format)),
		LogLevel:  defaultLogLevel,
	}

	switch cfg.LogFormat {
	case "workflow", "json", "text":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be one of workflow, json, text; got %q", cfg.LogFormat)
	}

	if level := getenvDefault(lookup, "LOG_LEVEL", ""); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

func getenvDefault(lookup Lookup, key, fallback string) string {
	if val, ok := lookup(key); ok && val != "" {
		return val
	}
	return fallback
}
