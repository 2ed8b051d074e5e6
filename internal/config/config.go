package config

import "os"

// Config holds application configuration loaded from environment variables.
type Config struct {
	ScenarioPath string
	SaveDir      string
	ArchiveDir   string
	LogLevel     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ScenarioPath: os.Getenv("SCENARIO_FILE"), // empty = built-in tables
		SaveDir:      envOrDefault("SAVE_DIR", "saves"),
		ArchiveDir:   envOrDefault("ARCHIVE_DIR", "archive"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
