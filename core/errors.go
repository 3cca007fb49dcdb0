package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrBorderImmutable   = errors.New("border cells are immutable")
)

// DimensionError reports a playfield that is too small to build.
type DimensionError struct {
	Width, Height int
	Min           int
	Err           error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("game field must be %dx%d cells at least, %dx%d entered: %v",
		e.Min, e.Min, e.Width, e.Height, e.Err)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}
