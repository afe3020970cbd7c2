package naijafake

import (
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
)

// StateFilter narrows state lookups. Region accepts a full name ("South
// West") or its abbreviation ("SW"). Empty fields are unconstrained.
type StateFilter struct {
	Region string
}

func (f *Faker) statePredicates(sf StateFilter) filter.Predicates {
	if abbr, ok := f.states.Vocabulary("region_abbr"); ok && abbr.Contains(sf.Region) {
		return filter.Where("region_abbr", sf.Region)
	}
	return filter.Where("region", sf.Region)
}

// State returns one state matching sf.
func (f *Faker) State(sf StateFilter) (dataset.State, error) {
	return f.states.Get(f.statePredicates(sf))
}

// States returns every state matching sf. No match is an empty slice.
func (f *Faker) States(sf StateFilter) ([]dataset.State, error) {
	return f.states.Find(f.statePredicates(sf))
}

// StateName returns a state name not yet returned by this Faker, until every
// matching name has been used.
func (f *Faker) StateName(sf StateFilter) (string, error) {
	return f.states.Unique("name", f.statePredicates(sf))
}

func (f *Faker) StateCapital(sf StateFilter) (string, error) {
	return f.states.Unique("capital", f.statePredicates(sf))
}

func (f *Faker) StateCode(sf StateFilter) (string, error) {
	return f.states.Unique("code", f.statePredicates(sf))
}

// LGA returns a local government area of state, or of a random state when
// state is blank. Values repeat only after every LGA of the state was used.
func (f *Faker) LGA(state string) (string, error) {
	s, err := f.stateByName(state)
	if err != nil {
		return "", err
	}
	if len(s.LGAs) == 0 {
		return "", &filter.NoMatchingDataError{
			Category:    dataset.States + " lgas",
			Constraints: filter.Where("name", s.Name),
		}
	}
	return f.states.UniqueFrom("lgas."+s.Name, s.LGAs)
}

// PostalCode returns the postal code of state. With a blank state it returns
// a code not yet returned by this Faker, until every code has been used.
func (f *Faker) PostalCode(state string) (string, error) {
	if strings.TrimSpace(state) == "" {
		return f.states.Unique("postal_code", nil)
	}
	s, err := f.stateByName(state)
	if err != nil {
		return "", err
	}
	return s.PostalCode, nil
}

// Regions lists the geopolitical zones in dataset order.
func (f *Faker) Regions() []string {
	return f.states.Values("region")
}

func (f *Faker) stateByName(name string) (dataset.State, error) {
	if strings.TrimSpace(name) == "" {
		all := f.states.All()
		s, err := sampler.Pick(f.sampler, all)
		if err != nil {
			return dataset.State{}, ErrEmptyPool
		}
		return s, nil
	}
	return f.states.Get(filter.Where("name", name))
}
