package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the ambient, non-computational settings of the tool.
// The world calculation itself never reads the environment; only
// observability is configurable here.
type Config struct {
	Environment string
	Logging     LoggingConfig
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

// Load reads an optional .env file and the WORLDFORGE_* variables.
func Load() *Config {
	// Missing .env is fine; the defaults below apply.
	_ = godotenv.Load()

	environment := getEnv("WORLDFORGE_ENV", "development")
	jsonFormat := environment == "production" || getEnv("WORLDFORGE_LOG_JSON", "") == "true"

	return &Config{
		Environment: environment,
		Logging: LoggingConfig{
			Level:      getEnv("WORLDFORGE_LOG_LEVEL", "warn"),
			JSONFormat: jsonFormat,
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
