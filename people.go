package naijafake

import (
	"github.com/dmitrymomot/naijafake/pkg/synth"
)

type (
	Name         = synth.Name
	NameOptions  = synth.NameOptions
	EmailOptions = synth.EmailOptions
	PhoneOptions = synth.PhoneOptions
	PriceOptions = synth.PriceOptions
)

// Name returns a personal name whose parts share one tribe.
func (f *Faker) Name(opts NameOptions) (Name, error) {
	return f.synth.Name(opts)
}

// FullName is Name joined as "first [middle] last".
func (f *Faker) FullName(opts NameOptions) (string, error) {
	return f.synth.FullName(opts)
}

func (f *Faker) FirstName(tribe, gender string) (string, error) {
	return f.synth.FirstName(tribe, gender)
}

func (f *Faker) LastName(tribe string) (string, error) {
	return f.synth.LastName(tribe)
}

// Tribes lists the tribes that have both first and last names.
func (f *Faker) Tribes() []string {
	return f.synth.Tribes()
}

// Email returns a validated address. An invalid opts.Domain fails before
// anything is drawn.
func (f *Faker) Email(opts EmailOptions) (string, error) {
	return f.synth.Email(opts)
}

func (f *Faker) PhoneNumber(opts PhoneOptions) (string, error) {
	return f.synth.PhoneNumber(opts)
}

func (f *Faker) Networks() []string {
	return f.synth.Networks()
}

// LicensePlate returns a plate such as "IKJ-123AB" for state, or for any
// state when state is blank.
func (f *Faker) LicensePlate(state string) (string, error) {
	return f.synth.LicensePlate(state)
}

func (f *Faker) Price(opts PriceOptions) (string, error) {
	return f.synth.Price(opts)
}

// MaritalStatus returns a status not yet returned by this Faker, until every
// status has been used.
func (f *Faker) MaritalStatus() (string, error) {
	return f.marital.Unique("status", nil)
}

// Religion returns a religion not yet returned by this Faker, until every
// religion has been used.
func (f *Faker) Religion() (string, error) {
	return f.religions.Unique("name", nil)
}
