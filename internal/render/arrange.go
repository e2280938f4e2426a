package render

import (
	"fmt"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/models"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
)

const (
	// BeatsPerBar is the length of one chord in the arrangement (4/4)
	BeatsPerBar = 4.0

	chordOctave     = 4
	defaultVelocity = 100
)

// RhythmTemplate defines a rhythmic pattern for one bar of a chord
type RhythmTemplate struct {
	Name         string
	Offsets      []float64 // Beat offsets within the bar
	Accents      []float64 // Velocity multipliers (0.0-1.0)
	Articulation float64   // Fraction of the step that sounds (1.0 = legato, 0.5 = staccato)
	Arpeggiate   bool      // Play one chord tone per step instead of the whole chord
}

// Rhythm templates keyed by playing style
var styleTemplates = map[catalogue.Style]RhythmTemplate{
	// Straight quarter notes, chord struck on every beat
	catalogue.StyleBlock: {
		Name:         "quarters",
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{1.0, 0.8, 0.9, 0.8},
		Articulation: 0.9,
	},
	// Upward broken chord in eighth notes
	catalogue.StyleStrum: {
		Name:         "broken",
		Offsets:      []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		Accents:      []float64{1.0, 0.7, 0.8, 0.7, 0.9, 0.7, 0.8, 0.7},
		Articulation: 1.0,
		Arpeggiate:   true,
	},
	// Chord hits on every eighth note
	catalogue.StyleRhythmic: {
		Name:         "8ths",
		Offsets:      []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		Accents:      []float64{1.0, 0.7, 0.9, 0.7, 0.95, 0.7, 0.9, 0.7},
		Articulation: 0.85,
	},
}

// TemplateForStyle returns the rhythm template used for a playing style
func TemplateForStyle(style catalogue.Style) (RhythmTemplate, error) {
	tmpl, ok := styleTemplates[style]
	if !ok {
		return RhythmTemplate{}, fmt.Errorf("no rhythm template for style %q", style)
	}
	return tmpl, nil
}

// Arrangement is a progression laid out on a timeline, ready to be written as MIDI or audio
type Arrangement struct {
	Notes       []models.NoteEvent  `json:"notes"`
	Chords      []models.ChordEvent `json:"chords"`
	BPM         int                 `json:"bpm"`
	Instrument  int                 `json:"instrument"`
	Style       catalogue.Style     `json:"style"`
	LengthBeats float64             `json:"lengthBeats"`
}

// Arrange lays out one bar per chord using the rhythm template of the mood's style.
// Placeholder chords become silent bars so the timeline keeps the template length.
func Arrange(result *progression.Result, perf catalogue.Performance) (*Arrangement, error) {
	if result == nil {
		return nil, fmt.Errorf("nil progression result")
	}
	if perf.BPM <= 0 {
		return nil, fmt.Errorf("invalid tempo: %d bpm", perf.BPM)
	}

	tmpl, err := TemplateForStyle(perf.Style)
	if err != nil {
		return nil, err
	}

	arr := &Arrangement{
		Notes:       make([]models.NoteEvent, 0, len(result.Chords)*len(tmpl.Offsets)),
		Chords:      make([]models.ChordEvent, 0, len(result.Chords)),
		BPM:         perf.BPM,
		Instrument:  perf.Instrument,
		Style:       perf.Style,
		LengthBeats: float64(len(result.Chords)) * BeatsPerBar,
	}

	for i, symbol := range result.Chords {
		barStart := float64(i) * BeatsPerBar
		event := models.ChordEvent{
			ChordSymbol:   symbol,
			StartBeats:    barStart,
			DurationBeats: BeatsPerBar,
		}

		if progression.IsPlaceholder(symbol) {
			event.Silent = true
			arr.Chords = append(arr.Chords, event)
			continue
		}

		notes, err := ChordToMIDI(symbol, chordOctave)
		if err != nil {
			return nil, fmt.Errorf("chord %d (%s): %w", i+1, symbol, err)
		}

		arr.Chords = append(arr.Chords, event)
		arr.Notes = append(arr.Notes, applyRhythmTemplate(notes, barStart, tmpl)...)
	}

	return arr, nil
}

// applyRhythmTemplate expands one chord into the template's hits within a bar
func applyRhythmTemplate(notes []int, barStart float64, tmpl RhythmTemplate) []models.NoteEvent {
	var events []models.NoteEvent

	for i, offset := range tmpl.Offsets {
		next := BeatsPerBar
		if i+1 < len(tmpl.Offsets) {
			next = tmpl.Offsets[i+1]
		}
		duration := (next - offset) * tmpl.Articulation

		accent := 1.0
		if i < len(tmpl.Accents) {
			accent = tmpl.Accents[i]
		}
		velocity := clampVelocity(int(float64(defaultVelocity) * accent))

		hit := notes
		if tmpl.Arpeggiate {
			hit = []int{notes[i%len(notes)]}
		}

		for _, note := range hit {
			events = append(events, models.NoteEvent{
				MidiNoteNumber: note,
				Velocity:       velocity,
				StartBeats:     barStart + offset,
				DurationBeats:  duration,
			})
		}
	}

	return events
}

func clampVelocity(v int) int {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return v
}
