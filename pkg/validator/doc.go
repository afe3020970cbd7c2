// Package validator holds the structural format checks applied to generated
// artifacts and a small rule-composition API for validating input.
//
// The Is* predicates are pure and allocation-light:
//
//   - IsValidDomain: up to three labels plus an alphabetic TLD, labels 1-63
//     characters of letters, digits and inner hyphens.
//   - IsValidEmail: permitted local-part characters, "@", and a looser domain.
//   - IsValidPlate: "ABC-123DE".
//   - IsValidPhone: Nigerian mobile numbers, local or +234.
//
// None of them touch the network.
//
// Rules bundle a check with a field-level error so several inputs can be
// validated in one call:
//
//	err := validator.Apply(
//	    validator.Range("count", count, 1, 10_000),
//	    validator.Optional(domain, validator.ValidDomain("domain", domain)),
//	)
//	if errors.Is(err, validator.ErrValidationFailed) {
//	    for _, f := range validator.ExtractValidationErrors(err).Fields() { ... }
//	}
package validator
