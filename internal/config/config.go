// Package config centralises configuration parsing for the report CLI.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration for a report run.
type Config struct {
	SnapshotPath string // Path to the records export file (.yaml/.yml/.json).
	AnchorDate   string // Calendar day streaks anchor on; empty means today.
	Pretty       bool   // Indent the JSON summary for humans.
}

// Load reads environment variables into Config, applying sensible defaults.
func Load() Config {
	return Config{
		SnapshotPath: getEnv("SNAPSHOT_PATH", "snapshot.yaml"),
		AnchorDate:   getEnv("ANCHOR_DATE", ""),
		Pretty:       getBoolEnv("REPORT_PRETTY", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
