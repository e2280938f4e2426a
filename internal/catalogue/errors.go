package catalogue

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMood is returned (wrapped) for ids the catalogue does not contain
	ErrUnknownMood = errors.New("unknown mood")

	// ErrInvalidCatalogue is returned when catalogue data breaks an invariant
	ErrInvalidCatalogue = errors.New("invalid catalogue")
)

// UnknownMoodError carries the rejected mood id
type UnknownMoodError struct {
	Mood MoodID
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("%s: %q not found in the catalogue", ErrUnknownMood, string(e.Mood))
}

func (e *UnknownMoodError) Unwrap() error {
	return ErrUnknownMood
}
