// Package engine is the generic lookup and sampling engine shared by every
// data category.
//
// An Engine binds a category name, its records, the vocabularies used to
// validate predicate values, and a sampler. Categories differ only in their
// record type and in which fields are validated:
//
//	schools := engine.New(dataset.Schools, records, smp).
//	    Observe("state").
//	    Restrict("type", filter.NewVocabulary("type", "University", "Polytechnic", "College of Education")).
//	    Restrict("ownership", filter.NewVocabulary("ownership", "Federal", "State", "Private"))
//
//	school, err := schools.Get(filter.Where("ownership", "private"))
//	name, err := schools.Unique("name", filter.Where("state", "Lagos"))
//
// Predicate values are validated before filtering: unknown values fail with
// *filter.InvalidFilterValueError. Find returns an empty slice for a valid
// but unmatched predicate set, while Get and Unique fail with
// *filter.NoMatchingDataError.
package engine
