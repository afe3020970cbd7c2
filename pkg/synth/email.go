package synth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/sampler"
	"github.com/dmitrymomot/naijafake/pkg/sanitizer"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

// emailLayouts are the local-part join templates.
var emailLayouts = []string{
	"{first}.{last}",
	"{first}{last}",
	"{last}.{first}",
	"{last}{first}",
}

const (
	emailSuffixChance = 0.5
	emailSuffixMax    = 9999
)

// EmailOptions constrains email generation. Name, when set, takes precedence
// over Tribe and Gender.
type EmailOptions struct {
	Name   string
	Tribe  string
	Gender string
	Domain string
}

// Email builds "<local>@<domain>" from a name and one of four join layouts.
// Half of the addresses carry a numeric suffix on the local part.
func (s *Synthesizer) Email(opts EmailOptions) (string, error) {
	domain, err := normalizeDomain(opts.Domain)
	if err != nil {
		return "", err
	}
	if domain == "" {
		if domain, err = sampler.Pick(s.sampler, s.domains); err != nil {
			return "", fmt.Errorf("%w: no email domains", err)
		}
	}

	first, last, err := s.emailParts(opts)
	if err != nil {
		return "", err
	}

	layout, _ := sampler.Pick(s.sampler, emailLayouts)
	local := strings.NewReplacer("{first}", first, "{last}", last).Replace(layout)
	if s.sampler.Chance(emailSuffixChance) {
		local += strconv.Itoa(s.sampler.Between(1, emailSuffixMax))
	}

	return s.validate("email", local+"@"+domain, validator.IsValidEmail)
}

func (s *Synthesizer) emailParts(opts EmailOptions) (string, string, error) {
	if strings.TrimSpace(opts.Name) != "" {
		words := strings.Fields(opts.Name)
		first := sanitizer.EmailPart(words[0])
		last := sanitizer.EmailPart(words[len(words)-1])
		if first == "" || last == "" {
			return "", "", fmt.Errorf("%w: %q has no usable letters", ErrInvalidName, opts.Name)
		}
		return first, last, nil
	}

	n, err := s.Name(NameOptions{Tribe: opts.Tribe, Gender: opts.Gender})
	if err != nil {
		return "", "", err
	}
	first, last := sanitizer.EmailPart(n.First), sanitizer.EmailPart(n.Last)
	if first == "" || last == "" {
		return "", "", fmt.Errorf("%w: %q has no usable letters", ErrInvalidName, n.String())
	}
	return first, last, nil
}

// normalizeDomain lower-cases and trims d. A blank domain is returned as ""
// without error.
func normalizeDomain(d string) (string, error) {
	d = strings.ToLower(strings.TrimSpace(d))
	if d == "" {
		return "", nil
	}
	if !validator.IsValidDomain(d) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, d)
	}
	return d, nil
}
