// Package config loads the CEE defaults that are deliberately kept out of
// code: regulatory constants change at the program level, not at release
// time, so they arrive through the environment (optionally via a .env file).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the externally supplied CEE defaults.
type Config struct {
	// DefaultLedWatt is the category-default wattage of one LED, used when
	// a lighting product carries no ledWattConstant of its own. 0 means
	// unconfigured: lighting lines then flag their per-LED base as missing
	// instead of guessing a value.
	DefaultLedWatt float64

	// DefaultBonification seeds the organization prime settings when the
	// collection is empty. The core falls back to 2 on its own.
	DefaultBonification float64
}

// Load reads the configuration from the environment, loading .env first when
// present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DefaultLedWatt:      getEnvFloat("CEE_DEFAULT_LED_WATT", 0),
		DefaultBonification: getEnvFloat("CEE_DEFAULT_BONIFICATION", 2),
	}
}

func getEnvFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return fallback
	}
	return v
}
