package harmony

// DegreeCount is the number of diatonic scale degrees
const DegreeCount = 7

// HarmonicField holds the diatonic chord of every scale degree, index 0 being the tonic chord.
// Resolution indexes into it by degree, so the order is significant.
type HarmonicField [DegreeCount]Chord

// Semitone offsets from the tonic
var scaleIntervals = map[Mode][DegreeCount]int{
	Major: {0, 2, 4, 5, 7, 9, 11},
	Minor: {0, 2, 3, 5, 7, 8, 10},
}

// Triad quality per degree
var degreeQualities = map[Mode][DegreeCount]Quality{
	Major: {QualityMajor, QualityMinor, QualityMinor, QualityMajor, QualityMajor, QualityMinor, QualityDiminished},
	Minor: {QualityMinor, QualityDiminished, QualityMajor, QualityMinor, QualityMinor, QualityMajor, QualityMajor},
}

// BuildHarmonicField computes the seven diatonic chords of a key
func BuildHarmonicField(key Key) HarmonicField {
	intervals := scaleIntervals[key.Mode]
	qualities := degreeQualities[key.Mode]

	var field HarmonicField
	for i := 0; i < DegreeCount; i++ {
		field[i] = Chord{
			Root:    key.Tonic.Transpose(intervals[i]),
			Quality: qualities[i],
		}
	}
	return field
}

// FieldFor builds the harmonic field from a tonic spelling and a mode.
// It fails with an *InvalidKeyError when the tonic is not a recognized pitch name.
func FieldFor(tonic string, mode Mode) (HarmonicField, error) {
	pitch, err := ParsePitch(tonic)
	if err != nil {
		return HarmonicField{}, err
	}
	return BuildHarmonicField(Key{Tonic: pitch, Mode: mode}), nil
}

// Symbols flattens the field to display strings
func (f HarmonicField) Symbols() []string {
	symbols := make([]string, len(f))
	for i, chord := range f {
		symbols[i] = chord.String()
	}
	return symbols
}
