package zkproof

import "github.com/go-errors/errors"

// ErrPreComputedValuesConsumed is returned when pre-computed values are passed
// to Prove a second time.
var ErrPreComputedValuesConsumed = errors.New("pre-computed values already used")
