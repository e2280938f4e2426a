package render

import (
	"testing"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/models"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultOf(chords ...string) *progression.Result {
	numerals := make([]string, len(chords))
	for i := range chords {
		numerals[i] = "I"
	}
	return &progression.Result{Mood: "feliz", Key: "C", Numerals: numerals, Chords: chords}
}

func notesInBar(notes []models.NoteEvent, bar int) []models.NoteEvent {
	var out []models.NoteEvent
	for _, n := range notes {
		if int(n.StartBeats/BeatsPerBar) == bar {
			out = append(out, n)
		}
	}
	return out
}

func TestArrange_Block(t *testing.T) {
	perf := catalogue.Performance{BPM: 130, Instrument: 29, Style: catalogue.StyleBlock}

	arr, err := Arrange(resultOf("C", "F", "G", "C"), perf)
	require.NoError(t, err)

	assert.Equal(t, 130, arr.BPM)
	assert.Equal(t, 29, arr.Instrument)
	assert.Equal(t, 16.0, arr.LengthBeats)
	assert.Len(t, arr.Chords, 4)
	assert.Len(t, arr.Notes, 4*4*3)

	first := arr.Notes[0]
	assert.Equal(t, 60, first.MidiNoteNumber)
	assert.Equal(t, 100, first.Velocity)
	assert.Equal(t, 0.0, first.StartBeats)
	assert.InDelta(t, 0.9, first.DurationBeats, 1e-9)

	// Second beat carries the weaker accent
	assert.Equal(t, 80, arr.Notes[3].Velocity)
	assert.Equal(t, 1.0, arr.Notes[3].StartBeats)

	bar2 := notesInBar(arr.Notes, 1)
	require.NotEmpty(t, bar2)
	assert.Equal(t, 65, bar2[0].MidiNoteNumber, "F in the second bar")
	assert.Equal(t, "F", arr.Chords[1].ChordSymbol)
	assert.Equal(t, 4.0, arr.Chords[1].StartBeats)
}

func TestArrange_Strum(t *testing.T) {
	perf := catalogue.Performance{BPM: 80, Instrument: 5, Style: catalogue.StyleStrum}

	arr, err := Arrange(resultOf("C"), perf)
	require.NoError(t, err)

	require.Len(t, arr.Notes, 8)
	var pitches []int
	for i, n := range arr.Notes {
		pitches = append(pitches, n.MidiNoteNumber)
		assert.Equal(t, float64(i)*0.5, n.StartBeats)
		assert.Equal(t, 0.5, n.DurationBeats)
	}
	assert.Equal(t, []int{60, 64, 67, 60, 64, 67, 60, 64}, pitches)
}

func TestArrange_Rhythmic(t *testing.T) {
	perf := catalogue.Performance{BPM: 110, Instrument: 27, Style: catalogue.StyleRhythmic}

	arr, err := Arrange(resultOf("Dm7"), perf)
	require.NoError(t, err)

	assert.Len(t, arr.Notes, 8*4)
	assert.InDelta(t, 0.425, arr.Notes[0].DurationBeats, 1e-9)
	assert.Equal(t, 3.5, arr.Notes[len(arr.Notes)-1].StartBeats)
}

func TestArrange_PlaceholderIsSilentBar(t *testing.T) {
	arr, err := Arrange(resultOf("C", "(IX?)", "G"), catalogue.DefaultPerformance)
	require.NoError(t, err)

	assert.Equal(t, 12.0, arr.LengthBeats)
	require.Len(t, arr.Chords, 3)
	assert.True(t, arr.Chords[1].Silent)
	assert.False(t, arr.Chords[2].Silent)
	assert.Empty(t, notesInBar(arr.Notes, 1))
	assert.NotEmpty(t, notesInBar(arr.Notes, 2))
}

func TestArrange_Errors(t *testing.T) {
	_, err := Arrange(nil, catalogue.DefaultPerformance)
	assert.Error(t, err)

	_, err = Arrange(resultOf("C"), catalogue.Performance{BPM: 0, Style: catalogue.StyleBlock})
	assert.Error(t, err)

	_, err = Arrange(resultOf("C"), catalogue.Performance{BPM: 90, Style: "polka"})
	assert.Error(t, err)

	_, err = Arrange(resultOf("Q"), catalogue.DefaultPerformance)
	assert.Error(t, err)
}

func TestEveryCatalogueStyleHasTemplate(t *testing.T) {
	cat := catalogue.MustDefault()
	for _, mood := range cat.Moods() {
		perf, err := cat.Performance(mood)
		require.NoError(t, err)
		_, err = TemplateForStyle(perf.Style)
		assert.NoError(t, err, mood)
	}
}
