package config

import (
	"log"
	"os"
	"strconv"
)

const (
	environmentProduction = "production"
	defaultSampleRate     = 44100
)

// Config holds the application configuration.
// Everything is optional: with no environment set the service runs on the embedded catalogue
// without persistence or rendering to disk.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Storage
	DatabaseURL string // Postgres DSN for generation history; empty disables history

	// Catalogue
	CataloguePath string // JSON or YAML mood catalogue; empty uses the embedded one
	RandomSeed    int64  // Template selection seed; 0 seeds from the clock

	// Rendering
	RenderOutputDir  string // Where `play` writes .mid and .wav files
	RenderSampleRate int

	// Interactive CLI
	HistoryFile string
}

func Load() *Config {
	return &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		Port:             getEnv("PORT", "8080"),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CataloguePath:    getEnv("CATALOGUE_PATH", ""),
		RandomSeed:       getEnvInt64("RANDOM_SEED", 0),
		RenderOutputDir:  getEnv("RENDER_OUTPUT_DIR", "renders"),
		RenderSampleRate: int(getEnvInt64("RENDER_SAMPLE_RATE", defaultSampleRate)),
		HistoryFile:      getEnv("CLI_HISTORY_FILE", ".vibe_chords_history"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}

// HistoryEnabled returns true when a database is configured for generation history
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}
