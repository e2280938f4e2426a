package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordToMIDI(t *testing.T) {
	tests := []struct {
		name     string
		chord    string
		octave   int
		expected []int
	}{
		{name: "major triad", chord: "C", octave: 4, expected: []int{60, 64, 67}},
		{name: "minor triad", chord: "Am", octave: 4, expected: []int{69, 72, 76}},
		{name: "sharp root", chord: "F#", octave: 4, expected: []int{66, 70, 73}},
		{name: "flat root", chord: "Bb", octave: 3, expected: []int{58, 62, 65}},
		{name: "diminished", chord: "Bdim", octave: 4, expected: []int{71, 74, 77}},
		{name: "dominant seventh", chord: "G7", octave: 4, expected: []int{67, 71, 74, 77}},
		{name: "major seventh", chord: "Cmaj7", octave: 4, expected: []int{60, 64, 67, 71}},
		{name: "minor seventh", chord: "Dm7", octave: 4, expected: []int{62, 65, 69, 72}},
		{name: "sharp minor seventh", chord: "C#m7", octave: 4, expected: []int{61, 64, 68, 71}},
		{name: "out of range notes dropped", chord: "G", octave: 9, expected: []int{127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := ChordToMIDI(tt.chord, tt.octave)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, notes)
		})
	}
}

func TestChordToMIDI_Invalid(t *testing.T) {
	for _, chord := range []string{"", "H", "(IX?)", "x7"} {
		_, err := ChordToMIDI(chord, 4)
		assert.Error(t, err, chord)
	}

	_, err := ChordToMIDI("C", 10)
	assert.Error(t, err, "every note above 127")
}
