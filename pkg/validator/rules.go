package validator

import (
	"fmt"
	"strings"
)

// Optional wraps a rule so it passes when value is blank.
func Optional(value string, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		return strings.TrimSpace(value) == "" || check()
	}
	return rule
}

// Range fails when value is outside [lo, hi].
func Range[T int | int64 | float64](field string, value, lo, hi T) Rule {
	return Rule{
		Check: func() bool { return value >= lo && value <= hi },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be between %v and %v", lo, hi)},
	}
}

// OneOf fails when value is not in allowed, compared case-insensitively.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if strings.EqualFold(strings.TrimSpace(value), a) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of: " + strings.Join(allowed, ", "),
		},
	}
}
