package catalogue

import (
	"fmt"
	"strings"
)

// Catalogue is the read-only knowledge base of moods.
// It is built once and never mutated, so concurrent readers need no locking.
type Catalogue struct {
	order []MoodID
	moods map[MoodID]Mood
}

// New validates the given moods and builds a catalogue that keeps their order
func New(moods []Mood) (*Catalogue, error) {
	if len(moods) == 0 {
		return nil, fmt.Errorf("%w: no moods defined", ErrInvalidCatalogue)
	}

	c := &Catalogue{
		order: make([]MoodID, 0, len(moods)),
		moods: make(map[MoodID]Mood, len(moods)),
	}

	for i, mood := range moods {
		mood.ID = MoodID(strings.TrimSpace(string(mood.ID)))
		if mood.ID == "" {
			return nil, fmt.Errorf("%w: mood #%d has no id", ErrInvalidCatalogue, i)
		}
		if _, exists := c.moods[mood.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate mood %q", ErrInvalidCatalogue, mood.ID)
		}
		if err := validateMood(&mood); err != nil {
			return nil, err
		}

		c.order = append(c.order, mood.ID)
		c.moods[mood.ID] = mood.clone()
	}

	return c, nil
}

func validateMood(mood *Mood) error {
	if len(mood.Templates) == 0 {
		return fmt.Errorf("%w: mood %q has no progressions", ErrInvalidCatalogue, mood.ID)
	}
	for i, tmpl := range mood.Templates {
		if len(tmpl) == 0 {
			return fmt.Errorf("%w: mood %q progression #%d is empty", ErrInvalidCatalogue, mood.ID, i)
		}
		for _, token := range tmpl {
			if strings.TrimSpace(token) == "" {
				return fmt.Errorf("%w: mood %q progression #%d has a blank numeral", ErrInvalidCatalogue, mood.ID, i)
			}
		}
	}

	// Templates and performance settings share the mood id, so a mood without
	// settings is a data error rather than something to default silently.
	if mood.Performance.BPM <= 0 {
		return fmt.Errorf("%w: mood %q has no performance settings", ErrInvalidCatalogue, mood.ID)
	}
	style, err := ParseStyle(string(mood.Performance.Style))
	if err != nil {
		return fmt.Errorf("%w: mood %q: %v", ErrInvalidCatalogue, mood.ID, err)
	}
	mood.Performance.Style = style

	return nil
}

// Moods returns the mood ids in catalogue order
func (c *Catalogue) Moods() []MoodID {
	ids := make([]MoodID, len(c.order))
	copy(ids, c.order)
	return ids
}

// Has reports whether the id exists in the catalogue
func (c *Catalogue) Has(id MoodID) bool {
	_, ok := c.moods[id]
	return ok
}

// Mood returns a copy of the full mood entry
func (c *Catalogue) Mood(id MoodID) (Mood, error) {
	mood, ok := c.moods[id]
	if !ok {
		return Mood{}, &UnknownMoodError{Mood: id}
	}
	return mood.clone(), nil
}

// Describe returns the human-readable description of a mood
func (c *Catalogue) Describe(id MoodID) (string, error) {
	mood, ok := c.moods[id]
	if !ok {
		return "", &UnknownMoodError{Mood: id}
	}
	return mood.Description, nil
}

// TemplatesFor returns the progression templates of a mood (never empty)
func (c *Catalogue) TemplatesFor(id MoodID) ([]Template, error) {
	mood, ok := c.moods[id]
	if !ok {
		return nil, &UnknownMoodError{Mood: id}
	}
	return mood.clone().Templates, nil
}

// Performance returns the rendering settings of a mood
func (c *Catalogue) Performance(id MoodID) (Performance, error) {
	mood, ok := c.moods[id]
	if !ok {
		return Performance{}, &UnknownMoodError{Mood: id}
	}
	return mood.Performance, nil
}

// Len returns the number of moods
func (c *Catalogue) Len() int {
	return len(c.order)
}
