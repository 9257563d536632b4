// Package crcgen derives a closed-form boolean formula for every output
// bit of one byte-wide step of a CRC update and renders those formulas
// as source text for software and hardware targets.
package crcgen

import (
	"errors"
	"fmt"
)

// Width8 is the supported register width, in bits.
const Width8 = 8

var (
	ErrUnsupportedWidth  = errors.New("unsupported register width")
	ErrInvalidPolynomial = errors.New("invalid polynomial")
)

// ValidatePolynomial returns an error if polynomial cannot define a CRC
// feedback for the given register width. A valid polynomial has its
// lowest bit set and fits into width bits.
func ValidatePolynomial(polynomial uint64, width uint) error {
	if polynomial&1 == 0 {
		return fmt.Errorf("%w: 0x%X has no feedback tap at bit 0", ErrInvalidPolynomial, polynomial)
	} else if polynomial > bitmask(width) {
		return fmt.Errorf("%w: 0x%X does not fit into %d bits", ErrInvalidPolynomial, polynomial, width)
	}
	return nil
}

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}

func bitmask(width uint) uint64 {
	return (1 << width) - 1
}
