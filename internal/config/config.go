package config

import (
	"os"
	"strconv"
)

// Config holds all patrol configuration.
type Config struct {
	// LogDir is the root directory holding the internal/ and external/ zone
	// subdirectories that logs are collected into.
	LogDir string
	// OutPath is where the consolidated xlsx report is written.
	OutPath string
	// Debug enables verbose extraction trace on stderr.
	Debug bool
}

// Load reads configuration from environment variables with sensible defaults.
// CLI flags layer on top of these values.
func Load() Config {
	return Config{
		LogDir:  getenv("PATROL_LOG_DIR", "logs"),
		OutPath: getenv("PATROL_OUT", "total_results.xlsx"),
		Debug:   getenvBool("PATROL_DEBUG", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
