package filter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFilterValue is matched by every *InvalidFilterValueError.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrNoMatchingData is matched by every *NoMatchingDataError.
	ErrNoMatchingData = errors.New("no matching data")
)

// InvalidFilterValueError reports a predicate value outside the known
// vocabulary of its field.
type InvalidFilterValueError struct {
	Field       string
	Value       string
	Allowed     []string
	Suggestions []string
}

func (e *InvalidFilterValueError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	switch {
	case len(e.Suggestions) == 1:
		return fmt.Sprintf("%s: did you mean %q?", msg, e.Suggestions[0])
	case len(e.Suggestions) > 1:
		return fmt.Sprintf("%s: did you mean one of: %s?", msg, strings.Join(e.Suggestions, ", "))
	case len(e.Allowed) > 0:
		return fmt.Sprintf("%s: must be one of: %s", msg, strings.Join(e.Allowed, ", "))
	}
	return msg
}

func (e *InvalidFilterValueError) Unwrap() error {
	return ErrInvalidFilterValue
}

// NoMatchingDataError reports a well-formed constraint set that selects no
// records of a category.
type NoMatchingDataError struct {
	Category    string
	Constraints Predicates
}

func (e *NoMatchingDataError) Error() string {
	if len(e.Constraints.Set()) == 0 {
		return fmt.Sprintf("no %s data available", e.Category)
	}
	return fmt.Sprintf("no %s data matching %s", e.Category, e.Constraints)
}

func (e *NoMatchingDataError) Unwrap() error {
	return ErrNoMatchingData
}
