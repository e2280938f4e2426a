package progression

import (
	"fmt"

	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
)

// Roman numeral -> scale degree (0-6)
//
// Flat numerals (bII, bIII, bVI, bVII) share the degree of their natural
// counterpart and are NOT lowered a semitone, so "bVI" in C resolves to Am.
// This mirrors the reference catalogue's behavior and is pinned by tests until
// the intended harmony is decided.
var numeralDegrees = map[string]int{
	"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6,
	"i": 0, "ii": 1, "iii": 2, "iv": 3, "v": 4, "vi": 5, "vii": 6,

	"bII": 1, "bIII": 2, "bVI": 5, "bVII": 6,

	"ii°": 1, "i(maj7)": 0, "im7": 0, "ivm7": 3,
	"I7": 0, "IV7": 3, "V7": 4,
}

// Numerals whose chord quality replaces the diatonic one
var qualityOverrides = map[string]harmony.Quality{
	"bVII":    harmony.QualityMajor,
	"ii°":     harmony.QualityDiminished,
	"i(maj7)": harmony.QualityMajor7,
	"im7":     harmony.QualityMinor7,
	"ivm7":    harmony.QualityMinor7,
	"I7":      harmony.QualityDominant7,
	"IV7":     harmony.QualityDominant7,
	"V7":      harmony.QualityDominant7,
}

// ResolveToken maps a Roman numeral onto the harmonic field.
// ok is false when the numeral is not supported.
func ResolveToken(token string, field harmony.HarmonicField) (harmony.Chord, bool) {
	degree, ok := numeralDegrees[token]
	if !ok {
		return harmony.Chord{}, false
	}

	chord := field[degree]
	if quality, overridden := qualityOverrides[token]; overridden {
		chord = chord.WithQuality(quality)
	}
	return chord, true
}

// Placeholder is the symbol emitted for a numeral that cannot be resolved
func Placeholder(token string) string {
	return fmt.Sprintf("(%s?)", token)
}

// IsPlaceholder reports whether a resolved symbol is an unresolved-numeral placeholder
func IsPlaceholder(symbol string) bool {
	return len(symbol) >= 3 && symbol[0] == '(' && symbol[len(symbol)-2:] == "?)"
}

// SupportedNumerals returns every numeral the resolver understands
func SupportedNumerals() []string {
	numerals := make([]string, 0, len(numeralDegrees))
	for numeral := range numeralDegrees {
		numerals = append(numerals, numeral)
	}
	return numerals
}
