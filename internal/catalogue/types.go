package catalogue

import (
	"fmt"
	"strings"
)

// MoodID identifies a mood ("feliz", "triste", ...). The valid set is whatever the loaded catalogue defines.
type MoodID string

// Style is how a renderer voices each chord of a progression
type Style string

const (
	StyleBlock    Style = "block"    // chord struck on every beat
	StyleStrum    Style = "strum"    // fingerpicked, chord tones one after another
	StyleRhythmic Style = "rhythmic" // chord hits on eighths
)

// Names used by the first version of the catalogue
var styleAliases = map[string]Style{
	"batido":    StyleBlock,
	"dedilhado": StyleStrum,
	"ritmico":   StyleRhythmic,
}

// ParseStyle accepts a style name or one of its legacy aliases
func ParseStyle(name string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch Style(normalized) {
	case StyleBlock, StyleStrum, StyleRhythmic:
		return Style(normalized), nil
	}
	if style, ok := styleAliases[normalized]; ok {
		return style, nil
	}
	return "", fmt.Errorf("unknown performance style: %q", name)
}

// Performance is the per-mood setting a renderer needs
type Performance struct {
	BPM        int   `json:"bpm" yaml:"bpm"`
	Instrument int   `json:"instrument" yaml:"instrument"` // General MIDI program number
	Style      Style `json:"style" yaml:"style"`
}

// DefaultPerformance is used by renderers when no setting is available
var DefaultPerformance = Performance{BPM: 100, Instrument: 1, Style: StyleBlock}

// Template is an ordered sequence of Roman-numeral tokens
type Template []string

// Mood is one catalogue entry
type Mood struct {
	ID          MoodID      `json:"id" yaml:"id"`
	Description string      `json:"description" yaml:"description"`
	Performance Performance `json:"performance" yaml:"performance"`
	Templates   []Template  `json:"progressions" yaml:"progressions"`
}

func (m Mood) clone() Mood {
	templates := make([]Template, len(m.Templates))
	for i, tmpl := range m.Templates {
		templates[i] = append(Template(nil), tmpl...)
	}
	m.Templates = templates
	return m
}
