package synth

import (
	"fmt"

	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

// LicensePlate returns "CODE-###LL" where CODE is an LGA code of state, or of
// any state when state is blank.
func (s *Synthesizer) LicensePlate(state string) (string, error) {
	if s.plates == nil {
		return "", fmt.Errorf("%w: plate codes", ErrMissingData)
	}

	code, err := s.plates.Get(filter.Where("state", state))
	if err != nil {
		return "", err
	}

	plate := fmt.Sprintf("%s-%s%s", code.Code, s.sampler.Digits(3), s.sampler.Letters(2))
	return s.validate("license plate", plate, validator.IsValidPlate)
}
