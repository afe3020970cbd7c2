package synth

import (
	"fmt"

	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sanitizer"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

const subscriberDigits = 7

var phoneFormats = func() *filter.Vocabulary {
	names := make([]string, 0, len(sanitizer.PhoneFormats))
	for _, f := range sanitizer.PhoneFormats {
		names = append(names, string(f))
	}
	return filter.NewVocabulary("format", names...)
}()

// PhoneOptions constrains phone number generation. A blank Format means local.
type PhoneOptions struct {
	Network string
	Format  string
}

// PhoneNumber draws a network prefix and appends seven random digits.
func (s *Synthesizer) PhoneNumber(opts PhoneOptions) (string, error) {
	if s.phones == nil {
		return "", fmt.Errorf("%w: phone prefixes", ErrMissingData)
	}

	format := sanitizer.PhoneLocal
	if opts.Format != "" {
		f, err := phoneFormats.Canonical(opts.Format)
		if err != nil {
			return "", err
		}
		format = sanitizer.PhoneFormat(f)
	}

	prefix, err := s.phones.Get(filter.Where("network", opts.Network))
	if err != nil {
		return "", err
	}

	number := sanitizer.FormatPhone(prefix.Prefix+s.sampler.Digits(subscriberDigits), format)
	return s.validate("phone number", number, validator.IsValidPhone)
}

// Networks returns the mobile networks phone numbers can be drawn for.
func (s *Synthesizer) Networks() []string {
	if s.phones == nil {
		return nil
	}
	return s.phones.Values("network")
}
