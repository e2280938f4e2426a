package render

import (
	"fmt"
	"strings"
)

// Note semitone offsets from C, accepting both sharp and flat spellings
var noteOffsets = map[string]int{
	"C":  0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
}

const (
	midiMin = 0
	midiMax = 127
)

// ChordToMIDI converts a chord symbol to MIDI note numbers, root first.
// Supports the qualities the resolver emits: C, Cm, Cdim, C7, Cmaj7, Cm7 (plus aug/sus).
// Octave follows the C4 = 60 convention.
func ChordToMIDI(chordSymbol string, octave int) ([]int, error) {
	root, rest, err := splitRoot(chordSymbol)
	if err != nil {
		return nil, fmt.Errorf("invalid chord root: %w", err)
	}

	rootMIDI := (octave+1)*12 + noteOffsets[root]
	intervals := chordIntervals(rest)

	notes := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		midiNote := rootMIDI + interval
		if midiNote < midiMin || midiNote > midiMax {
			continue // Skip out-of-range notes
		}
		notes = append(notes, midiNote)
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("no valid MIDI notes generated for chord: %s", chordSymbol)
	}
	return notes, nil
}

// splitRoot separates "F#m7" into "F#" and "m7"
func splitRoot(chordSymbol string) (string, string, error) {
	if len(chordSymbol) == 0 {
		return "", "", fmt.Errorf("empty chord symbol")
	}

	root := chordSymbol[:1]
	if len(chordSymbol) > 1 && (chordSymbol[1] == '#' || chordSymbol[1] == 'b') {
		root = chordSymbol[:2]
	}

	if _, ok := noteOffsets[root]; !ok {
		return "", "", fmt.Errorf("invalid root note: %s", root)
	}
	return root, chordSymbol[len(root):], nil
}

// chordIntervals returns semitones above the root for a quality suffix
func chordIntervals(quality string) []int {
	// Extract sevenths BEFORE looking at the triad marker, "maj7" must not read as minor
	seventh := 0
	switch {
	case strings.HasSuffix(quality, "maj7"):
		seventh = 11
		quality = strings.TrimSuffix(quality, "maj7")
	case strings.HasSuffix(quality, "7"):
		seventh = 10
		quality = strings.TrimSuffix(quality, "7")
	}

	var intervals []int
	switch quality {
	case "m", "min":
		intervals = []int{0, 3, 7} // Root, Minor 3rd, Perfect 5th
	case "dim":
		intervals = []int{0, 3, 6} // Root, Minor 3rd, Diminished 5th
		if seventh == 10 {
			seventh = 9 // dim7 is a diminished seventh
		}
	case "aug":
		intervals = []int{0, 4, 8} // Root, Major 3rd, Augmented 5th
	case "sus2":
		intervals = []int{0, 2, 7}
	case "sus4":
		intervals = []int{0, 5, 7}
	default:
		intervals = []int{0, 4, 7} // Root, Major 3rd, Perfect 5th
	}

	if seventh > 0 {
		intervals = append(intervals, seventh)
	}
	return intervals
}
