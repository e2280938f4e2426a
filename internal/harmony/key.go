package harmony

import "strings"

// Mode is the scale pattern of a key. Only major and natural minor exist.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// Key is a tonic plus a mode
type Key struct {
	Tonic Pitch
	Mode  Mode
}

// String returns the key in the compact form used by the CLI and API ("C", "F#m")
func (k Key) String() string {
	if k.Mode == Minor {
		return k.Tonic.String() + "m"
	}
	return k.Tonic.String()
}

// ParseKey parses a key such as "C", "G#" or "Am". A trailing lowercase "m" selects minor.
func ParseKey(text string) (Key, error) {
	trimmed := strings.TrimSpace(text)
	mode := Major
	tonic := trimmed
	if strings.HasSuffix(trimmed, "m") {
		mode = Minor
		tonic = strings.TrimSuffix(trimmed, "m")
	}

	pitch, err := ParsePitch(tonic)
	if err != nil {
		return Key{}, &InvalidKeyError{Input: text}
	}
	return Key{Tonic: pitch, Mode: mode}, nil
}

// AllKeys returns the 24 supported keys: 12 major in pitch order, then 12 minor
func AllKeys() []Key {
	keys := make([]Key, 0, PitchCount*2)
	for _, mode := range []Mode{Major, Minor} {
		for p := 0; p < PitchCount; p++ {
			keys = append(keys, Key{Tonic: Pitch(p), Mode: mode})
		}
	}
	return keys
}

// KeyNames returns the spelling of every supported key, in AllKeys order
func KeyNames() []string {
	keys := AllKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}
