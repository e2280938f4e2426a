package progression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
)

// ErrTemplateOutOfRange is returned when a caller asks for a template index the mood does not have
var ErrTemplateOutOfRange = errors.New("template index out of range")

const (
	numeralSeparator = " - "
	chordSeparator   = " -> "
)

// Result is one generated progression. Sequences are kept in template order and never pre-joined.
type Result struct {
	Mood        catalogue.MoodID `json:"mood"`
	Description string           `json:"description"`
	Key         string           `json:"key"`
	Numerals    []string         `json:"numerals"`
	Chords      []string         `json:"chords"`
}

// NumeralString joins the numerals for display ("I - IV - V - I")
func (r *Result) NumeralString() string {
	return strings.Join(r.Numerals, numeralSeparator)
}

// ChordString joins the chords for display ("C -> F -> G -> C")
func (r *Result) ChordString() string {
	return strings.Join(r.Chords, chordSeparator)
}

// Unresolved returns the numerals that degraded to placeholders
func (r *Result) Unresolved() []string {
	var unresolved []string
	for i, chord := range r.Chords {
		if IsPlaceholder(chord) {
			unresolved = append(unresolved, r.Numerals[i])
		}
	}
	return unresolved
}

// Resolver turns (key, mood) into a concrete chord progression.
// It holds no mutable state of its own; concurrency safety depends on the Selector.
type Resolver struct {
	catalogue *catalogue.Catalogue
	selector  Selector
}

// NewResolver builds a resolver over a catalogue. A nil selector means a clock-seeded RandomSelector.
func NewResolver(cat *catalogue.Catalogue, selector Selector) *Resolver {
	if selector == nil {
		selector = NewRandomSelector(0)
	}
	return &Resolver{
		catalogue: cat,
		selector:  selector,
	}
}

// Catalogue returns the catalogue the resolver reads from
func (r *Resolver) Catalogue() *catalogue.Catalogue {
	return r.catalogue
}

// Resolve picks a template for the mood with the resolver's selector and maps it onto the key.
// Unknown moods and invalid keys are fatal; unsupported numerals degrade to placeholders.
func (r *Resolver) Resolve(key string, mood catalogue.MoodID) (*Result, error) {
	return r.resolve(key, mood, r.selector)
}

// ResolveTemplate is Resolve with the template chosen by index instead of by the selector
func (r *Resolver) ResolveTemplate(key string, mood catalogue.MoodID, index int) (*Result, error) {
	templates, err := r.catalogue.TemplatesFor(mood)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(templates) {
		return nil, fmt.Errorf("%w: %d for mood %q (%d templates)", ErrTemplateOutOfRange, index, mood, len(templates))
	}
	return r.resolve(key, mood, FixedSelector(index))
}

func (r *Resolver) resolve(key string, mood catalogue.MoodID, selector Selector) (*Result, error) {
	entry, err := r.catalogue.Mood(mood)
	if err != nil {
		return nil, err
	}

	parsedKey, err := harmony.ParseKey(key)
	if err != nil {
		return nil, err
	}

	choice := FixedSelector(selector.Choose(len(entry.Templates))).Choose(len(entry.Templates))
	template := entry.Templates[choice]
	field := harmony.BuildHarmonicField(parsedKey)

	return &Result{
		Mood:        entry.ID,
		Description: entry.Description,
		Key:         parsedKey.String(),
		Numerals:    append([]string(nil), template...),
		Chords:      ResolveNumerals(template, field),
	}, nil
}

// ResolveNumerals maps every numeral of a template onto the field, in order
func ResolveNumerals(template catalogue.Template, field harmony.HarmonicField) []string {
	chords := make([]string, len(template))
	for i, token := range template {
		chord, ok := ResolveToken(token, field)
		if !ok {
			chords[i] = Placeholder(token)
			continue
		}
		chords[i] = chord.String()
	}
	return chords
}
