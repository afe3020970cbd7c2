package sampler

import "errors"

// ErrEmptyPool is returned when there is nothing to draw from. It signals a
// data defect, never exhaustion: exhausted pools are reset instead.
var ErrEmptyPool = errors.New("empty sampling pool")
