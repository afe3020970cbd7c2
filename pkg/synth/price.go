package synth

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultPriceMin    = 1_000
	DefaultPriceMax    = 1_000_000
	DefaultPriceSymbol = "₦"

	roundChance     = 0.3
	wholeUnitChance = 0.5
)

// PriceOptions bounds a generated price in whole naira. When both bounds are
// zero the default range applies. A zero Max alone means DefaultPriceMax, and
// a zero Min with Max set means a minimum of zero.
type PriceOptions struct {
	Min    int
	Max    int
	Symbol string
}

func (o PriceOptions) bounds() (int, int) {
	lo, hi := o.Min, o.Max
	switch {
	case lo == 0 && hi == 0:
		return DefaultPriceMin, DefaultPriceMax
	case hi == 0:
		hi = DefaultPriceMax
	}
	return lo, hi
}

// Price returns an amount such as "₦12,500" or "₦1,234,567.89", always
// within [Min, Max].
func (s *Synthesizer) Price(opts PriceOptions) (string, error) {
	lo, hi := opts.bounds()
	if lo < 0 || hi < lo {
		return "", fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	symbol := opts.Symbol
	if symbol == "" {
		symbol = DefaultPriceSymbol
	}

	minKobo, maxKobo := int64(lo)*100, int64(hi)*100
	kobo := int64(math.Round(s.sampler.Float64Range(float64(lo), float64(hi)) * 100))
	kobo = min(max(kobo, minKobo), maxKobo)
	if s.sampler.Chance(roundChance) {
		// nearest hundred naira, unless that leaves the range
		if rounded := (kobo + 5_000) / 10_000 * 10_000; rounded >= minKobo && rounded <= maxKobo {
			kobo = rounded
		}
	}
	whole := s.sampler.Chance(wholeUnitChance)
	if whole {
		// both bounds are whole naira, so truncation stays in range
		kobo -= kobo % 100
	}

	return formatPrice(symbol, kobo, whole), nil
}

// formatPrice renders kobo with thousands separators on the naira part.
func formatPrice(symbol string, kobo int64, whole bool) string {
	p := message.NewPrinter(language.English)
	out := symbol + p.Sprintf("%d", kobo/100)
	if !whole {
		out += fmt.Sprintf(".%02d", kobo%100)
	}
	return out
}
