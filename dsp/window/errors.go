package window

import (
	"errors"
	"fmt"
)

// Errors returned by the window helpers.
var (
	ErrInvalidSize      = errors.New("window: size must be > 0")
	ErrEmpty            = errors.New("window: no coefficients")
	ErrZeroGain         = errors.New("window: coherent gain is zero")
	ErrLengthMismatched = errors.New("window: samples and coefficients differ in length")
)

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}
