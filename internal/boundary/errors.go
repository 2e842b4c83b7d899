// SPDX-License-Identifier: MPL-2.0

package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the sentinel error wrapped by InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExponentTooLarge is the sentinel error wrapped by ExponentTooLargeError.
	ErrExponentTooLarge = errors.New("exponent too large")
)

type (
	// InvalidInputError is returned when the base is not positive or the
	// exponent is negative.
	InvalidInputError struct {
		Base     int64
		Exponent int64
	}

	// ExponentTooLargeError is returned when the exponent exceeds the
	// configured ceiling.
	ExponentTooLargeError struct {
		Exponent int64
		Max      int64
	}
)

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Base <= 0 {
		return fmt.Sprintf("invalid input: base %d must be positive", e.Base)
	}
	return fmt.Sprintf("invalid input: exponent %d must not be negative", e.Exponent)
}

// Unwrap returns ErrInvalidInput for errors.Is() compatibility.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Error implements the error interface.
func (e *ExponentTooLargeError) Error() string {
	return fmt.Sprintf("exponent %d exceeds the configured maximum of %d", e.Exponent, e.Max)
}

// Unwrap returns ErrExponentTooLarge for errors.Is() compatibility.
func (e *ExponentTooLargeError) Unwrap() error { return ErrExponentTooLarge }
