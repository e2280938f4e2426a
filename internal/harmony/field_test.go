package harmony

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHarmonicField(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected []string
	}{
		{
			name:     "C major",
			key:      "C",
			expected: []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"},
		},
		{
			name:     "A minor",
			key:      "Am",
			expected: []string{"Am", "Bdim", "C", "Dm", "Em", "F", "G"},
		},
		{
			name:     "F# major wraps past B",
			key:      "F#",
			expected: []string{"F#", "G#m", "A#m", "B", "C#", "D#m", "Fdim"},
		},
		{
			name:     "D# minor",
			key:      "D#m",
			expected: []string{"D#m", "Fdim", "F#", "G#m", "A#m", "B", "C#"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.key)
			require.NoError(t, err)

			field := BuildHarmonicField(key)
			assert.Equal(t, tt.expected, field.Symbols())
		})
	}
}

func TestBuildHarmonicField_AllKeys(t *testing.T) {
	keys := AllKeys()
	require.Len(t, keys, 24)

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			field := BuildHarmonicField(key)
			require.Len(t, field, DegreeCount)
			assert.Equal(t, key.Tonic, field[0].Root, "degree 0 must be built on the tonic")

			qualities := degreeQualities[key.Mode]
			for i, chord := range field {
				assert.Equal(t, qualities[i], chord.Quality, "degree %d", i)
				assert.Equal(t, key.Tonic.Transpose(scaleIntervals[key.Mode][i]), chord.Root, "degree %d", i)
			}
		})
	}
}

func TestFieldFor_InvalidTonic(t *testing.T) {
	for _, tonic := range []string{"H", "", "Db", "C##", "X#"} {
		t.Run(tonic, func(t *testing.T) {
			_, err := FieldFor(tonic, Major)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidKey))

			var keyErr *InvalidKeyError
			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, tonic, keyErr.Input)
		})
	}
}

func TestFieldFor_Valid(t *testing.T) {
	field, err := FieldFor("g", Major)
	require.NoError(t, err)
	assert.Equal(t, "G", field[0].String())
	assert.Equal(t, "F#dim", field[6].String())
}
