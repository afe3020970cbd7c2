// Package filter narrows record collections with conjunctions of optional,
// case-insensitive equality predicates and validates predicate values
// against known vocabularies.
//
//	preds := filter.Where("tribe", "Yoruba").And("gender", "")
//	males := filter.Apply(records, preds) // gender is unset, only tribe applies
//
// A Vocabulary holds the known values of one field, either observed from the
// data (Observe) or fixed (NewVocabulary). Unknown values are rejected with an
// *InvalidFilterValueError that carries "did you mean" suggestions computed by
// edit distance:
//
//	tribes := filter.Observe("tribe", records)
//	_, err := tribes.Canonical("yorba") // invalid tribe "yorba": did you mean "yoruba"?
package filter
