package naijafake

import (
	"log/slog"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
)

type options struct {
	source  dataset.Source
	seed    *uint64
	logger  *slog.Logger
	domains []string
}

// Option configures a Faker.
type Option func(*options)

// WithSource reads datasets from src instead of the embedded defaults.
// A nil source is ignored.
func WithSource(src dataset.Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSeed makes every draw reproducible for a given seed and call sequence.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithLogger sets the logger for dataset loads and exclusion-set resets.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEmailDomains replaces the default email domains. Invalid entries are
// skipped.
func WithEmailDomains(domains ...string) Option {
	return func(o *options) { o.domains = append(o.domains, domains...) }
}
