package naijafake

import (
	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
	"github.com/dmitrymomot/naijafake/pkg/synth"
)

// Sentinels for errors.Is. Typed errors from the pkg/ packages unwrap to them.
var (
	ErrSchema             = dataset.ErrSchema
	ErrDatasetNotFound    = dataset.ErrDatasetNotFound
	ErrInvalidFilterValue = filter.ErrInvalidFilterValue
	ErrNoMatchingData     = filter.ErrNoMatchingData
	ErrEmptyPool          = sampler.ErrEmptyPool
	ErrFormatValidation   = synth.ErrFormatValidation
	ErrInvalidDomain      = synth.ErrInvalidDomain
	ErrInvalidName        = synth.ErrInvalidName
	ErrInvalidRange       = synth.ErrInvalidRange
)

type (
	SchemaError             = dataset.SchemaError
	InvalidFilterValueError = filter.InvalidFilterValueError
	NoMatchingDataError     = filter.NoMatchingDataError
	FormatValidationError   = synth.FormatValidationError
)
