package synth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/engine"
	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
)

// DefaultDomains are used when an email is generated without a domain.
var DefaultDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"mail.com",
}

// Genders is the fixed vocabulary of the first-name "gender" field.
var Genders = []string{"male", "female"}

// Config wires the engines a Synthesizer draws components from. Engines that
// are nil disable the artifacts that need them.
type Config struct {
	FirstNames    *engine.Engine[dataset.FirstName]
	LastNames     *engine.Engine[dataset.LastName]
	PhonePrefixes *engine.Engine[dataset.PhonePrefix]
	PlateCodes    *engine.Engine[dataset.PlateCode]
	Sampler       *sampler.Sampler
}

// Synthesizer assembles composite artifacts from sampled components.
// It is safe for concurrent use.
type Synthesizer struct {
	first   *engine.Engine[dataset.FirstName]
	last    *engine.Engine[dataset.LastName]
	phones  *engine.Engine[dataset.PhonePrefix]
	plates  *engine.Engine[dataset.PlateCode]
	sampler *sampler.Sampler
	tribes  *filter.Vocabulary
	genders *filter.Vocabulary
	domains []string
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithDomains replaces the default email domains. Invalid domains are
// dropped; an empty result keeps the defaults.
func WithDomains(domains ...string) Option {
	return func(s *Synthesizer) {
		valid := make([]string, 0, len(domains))
		for _, d := range domains {
			if d, err := normalizeDomain(d); err == nil && d != "" {
				valid = append(valid, d)
			}
		}
		if len(valid) > 0 {
			s.domains = valid
		}
	}
}

// New builds a Synthesizer. Supported tribes are those present in both the
// first-name and last-name datasets.
func New(cfg Config, opts ...Option) *Synthesizer {
	smp := cfg.Sampler
	if smp == nil {
		smp = sampler.New()
	}

	s := &Synthesizer{
		first:   cfg.FirstNames,
		last:    cfg.LastNames,
		phones:  cfg.PhonePrefixes,
		plates:  cfg.PlateCodes,
		sampler: smp,
		genders: filter.NewVocabulary("gender", Genders...),
		domains: slices.Clone(DefaultDomains),
	}
	s.tribes = supportedTribes(cfg.FirstNames, cfg.LastNames)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tribes returns the tribes names can be generated for.
func (s *Synthesizer) Tribes() []string {
	return s.tribes.Values()
}

// Domains returns the default email domains.
func (s *Synthesizer) Domains() []string {
	return slices.Clone(s.domains)
}

func supportedTribes(first *engine.Engine[dataset.FirstName], last *engine.Engine[dataset.LastName]) *filter.Vocabulary {
	if first == nil || last == nil {
		return filter.NewVocabulary("tribe")
	}
	lastTribes := filter.NewVocabulary("tribe", last.Values("tribe")...)
	var both []string
	for _, t := range first.Values("tribe") {
		if lastTribes.Contains(t) {
			both = append(both, t)
		}
	}
	return filter.NewVocabulary("tribe", both...)
}

// resolve returns the canonical spelling of value, or a uniformly drawn
// vocabulary value when value is blank.
func (s *Synthesizer) resolve(v *filter.Vocabulary, value string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return v.Canonical(value)
	}
	picked, err := sampler.Pick(s.sampler, v.Values())
	if err != nil {
		return "", fmt.Errorf("%w: no %s values", err, v.Field())
	}
	return picked, nil
}

func (s *Synthesizer) validate(artifact, value string, ok func(string) bool) (string, error) {
	if !ok(value) {
		return "", &FormatValidationError{Artifact: artifact, Value: value}
	}
	return value, nil
}
