package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatValidation is matched by every *FormatValidationError.
	ErrFormatValidation = errors.New("synthesized value failed format validation")

	ErrInvalidDomain = errors.New("invalid email domain")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidRange  = errors.New("invalid price range")
	ErrMissingData   = errors.New("synthesizer is missing a dataset")
)

// FormatValidationError reports a generated artifact that failed its own
// structural check. It always points at a synthesizer or data defect.
type FormatValidationError struct {
	Artifact string
	Value    string
}

func (e *FormatValidationError) Error() string {
	return fmt.Sprintf("generated %s %q failed format validation", e.Artifact, e.Value)
}

func (e *FormatValidationError) Unwrap() error {
	return ErrFormatValidation
}
