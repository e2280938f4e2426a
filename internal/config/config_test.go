package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "SENTRY_DSN", "DATABASE_URL", "CATALOGUE_PATH", "RANDOM_SEED", "RENDER_OUTPUT_DIR", "RENDER_SAMPLE_RATE", "CLI_HISTORY_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.CataloguePath)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, "renders", cfg.RenderOutputDir)
	assert.Equal(t, 44100, cfg.RenderSampleRate)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/chords")
	t.Setenv("CATALOGUE_PATH", "moods.yaml")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("RENDER_SAMPLE_RATE", "22050")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "moods.yaml", cfg.CataloguePath)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 22050, cfg.RenderSampleRate)
}

func TestGetEnvInt64_InvalidFallsBack(t *testing.T) {
	t.Setenv("RANDOM_SEED", "not-a-number")
	assert.Equal(t, int64(7), getEnvInt64("RANDOM_SEED", 7))
}
