package naijafake

import (
	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/filter"
)

// SchoolFilter narrows school lookups. Type is one of SchoolTypes and
// Ownership one of Ownerships; State is a state name. Matching is
// case-insensitive and empty fields are unconstrained.
type SchoolFilter struct {
	State     string
	Type      string
	Ownership string
}

func (sf SchoolFilter) predicates() filter.Predicates {
	return filter.Where("state", sf.State).
		And("type", sf.Type).
		And("ownership", sf.Ownership)
}

func (f *Faker) School(sf SchoolFilter) (dataset.School, error) {
	return f.schools.Get(sf.predicates())
}

// Schools returns every school matching sf. No match is an empty slice.
func (f *Faker) Schools(sf SchoolFilter) ([]dataset.School, error) {
	return f.schools.Find(sf.predicates())
}

// SchoolName returns a school name not yet returned by this Faker.
func (f *Faker) SchoolName(sf SchoolFilter) (string, error) {
	return f.schools.Unique("name", sf.predicates())
}

func (f *Faker) SchoolAcronym(sf SchoolFilter) (string, error) {
	return f.schools.Unique("acronym", sf.predicates())
}
