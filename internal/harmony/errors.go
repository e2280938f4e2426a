package harmony

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned (wrapped) when a tonic spelling is not one of the 12 recognized pitch names
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError carries the rejected key text
type InvalidKeyError struct {
	Input string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s: %q is not a recognized tonic", ErrInvalidKey, e.Input)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
