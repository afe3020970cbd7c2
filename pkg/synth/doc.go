// Package synth assembles composite artifacts (full names, email addresses,
// phone numbers, license plates and price tags) from components drawn out of
// the category engines.
//
// Each artifact is built from randomly chosen layouts and checked against its
// format predicate from pkg/validator before it is returned. A failed check
// is reported as *FormatValidationError and never retried.
//
//	s := synth.New(synth.Config{FirstNames: first, LastNames: last})
//	name, err := s.FullName(synth.NameOptions{Tribe: "yoruba", Middle: true})
//	email, err := s.Email(synth.EmailOptions{Domain: "example.ng"})
//
// Constraints that leave a component without candidates fail with
// *filter.NoMatchingDataError. They are never relaxed.
package synth
