package lexorank

import "errors"

// Validation errors. Every error returned by a constructor or parser in this
// package wraps exactly one of these, followed by the offending input, so
// callers can use errors.Is to tell them apart.
var (
	ErrInvalidBucket = errors.New("LexoRank bucket value must be between 0 and 2 inclusive")
	ErrInvalidRank   = errors.New("Lexorank value must only include 0-9 and a-z and must not end with 0")
	ErrInvalidFormat = errors.New("Cannot create LexoRank from invalid string")
)
