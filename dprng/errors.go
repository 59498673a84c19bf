package dprng

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid range")

func intRangeError(min, max int64) error {
	return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, min, max)
}

func doubleRangeError(min, max float64) error {
	return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, min, max)
}
