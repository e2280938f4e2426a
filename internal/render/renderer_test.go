package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "renders")
	cat := catalogue.MustDefault()
	resolver := progression.NewResolver(cat, progression.FixedSelector(0))

	result, err := resolver.Resolve("F#m", "misterioso")
	require.NoError(t, err)
	perf, err := cat.Performance("misterioso")
	require.NoError(t, err)

	out, err := NewRenderer(dir, 8000).Render(result, perf)
	require.NoError(t, err)

	assert.Len(t, out.ID, 36)
	assert.True(t, strings.HasPrefix(filepath.Base(out.MIDIPath), "misterioso_Fsm_"))
	assert.Equal(t, strings.TrimSuffix(out.MIDIPath, ".mid"), strings.TrimSuffix(out.WAVPath, ".wav"))
	assert.Equal(t, perf.BPM, out.Arrangement.BPM)

	for _, path := range []string{out.MIDIPath, out.WAVPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestNewRenderer_DefaultSampleRate(t *testing.T) {
	r := NewRenderer("x", 0)
	assert.Equal(t, DefaultSampleRate, r.sampleRate)
}
