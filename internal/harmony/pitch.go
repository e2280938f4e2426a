package harmony

import "strings"

// Pitch is one of the 12 equal-tempered pitch classes (C = 0 ... B = 11)
type Pitch int

// PitchCount is the number of pitch classes in an octave
const PitchCount = 12

// Canonical spellings, sharps only
var pitchNames = [PitchCount]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String returns the canonical (sharp) spelling of the pitch
func (p Pitch) String() string {
	return pitchNames[p.normalize()]
}

// Transpose returns the pitch moved by the given number of semitones
func (p Pitch) Transpose(semitones int) Pitch {
	return Pitch(int(p) + semitones).normalize()
}

func (p Pitch) normalize() Pitch {
	return Pitch(((int(p) % PitchCount) + PitchCount) % PitchCount)
}

// ParsePitch parses one of the 12 canonical spellings.
// The letter is case-insensitive ("c#" == "C#"); flats are not accepted.
func ParsePitch(name string) (Pitch, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for i, candidate := range pitchNames {
		if candidate == normalized {
			return Pitch(i), nil
		}
	}
	return 0, &InvalidKeyError{Input: name}
}

// PitchNames returns the canonical spellings in pitch-class order
func PitchNames() []string {
	names := make([]string, PitchCount)
	copy(names, pitchNames[:])
	return names
}
