package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures, e.g. a missing required variable.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	ErrLoadingEnvFile  = errors.New("failed to load env file")
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")
	ErrNilPointer      = errors.New("nil pointer provided to config loader")
)
