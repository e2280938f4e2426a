package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOGUE_PATH", "")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("DATABASE_URL", "")

	generateFlags.template = -1
	generateFlags.json = false
	generateFlags.render = false
	moodsFlags.templates = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "--key", "C", "--mood", "feliz", "--template", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Numerals: I - IV - V - I")
	assert.Contains(t, out, "Chords:   C -> F -> G -> C")
}

func TestGenerateCommand_JSON(t *testing.T) {
	out, err := execute(t, "generate", "-k", "Am", "-m", "triste", "--template", "0", "--json")
	require.NoError(t, err)

	var result progression.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, catalogue.MoodID("triste"), result.Mood)
	assert.Equal(t, "Am", result.Key)
	assert.Len(t, result.Chords, 4)
}

func TestGenerateCommand_Errors(t *testing.T) {
	_, err := execute(t, "generate", "--key", "C", "--mood", "euforico")
	assert.ErrorIs(t, err, catalogue.ErrUnknownMood)

	_, err = execute(t, "generate", "--key", "H", "--mood", "feliz")
	assert.Error(t, err)

	_, err = execute(t, "generate", "--key", "C", "--mood", "feliz", "--template", "42")
	assert.ErrorIs(t, err, progression.ErrTemplateOutOfRange)
}

func TestMoodsCommand(t *testing.T) {
	out, err := execute(t, "moods", "--templates")
	require.NoError(t, err)
	assert.Contains(t, out, "dancante_groovy")
	assert.Contains(t, out, "0: I - IV - V - I")
	assert.Contains(t, out, "Keys: C, C#")
}

func TestFilterSensitiveHeaders(t *testing.T) {
	filtered := filterSensitiveHeaders(map[string]string{
		"Authorization": "Bearer x",
		"cookie":        "a=b",
		"Content-Type":  "application/json",
	})
	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["cookie"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}
