package domain

import "errors"

var (
	// ErrMalformedInput marks lines that are not 81 valid puzzle characters.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidPuzzle marks grids with a duplicate value in a unit.
	ErrInvalidPuzzle = errors.New("invalid puzzle")
	// ErrUnsolvable is reported after the whole search space is exhausted.
	ErrUnsolvable = errors.New("unsolvable")
	// ErrMultipleSolutions is reported when uniqueness is required but violated.
	ErrMultipleSolutions = errors.New("multiple solutions")
)
