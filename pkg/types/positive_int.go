// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPositiveInt is the sentinel error wrapped by InvalidPositiveIntError.
var ErrInvalidPositiveInt = errors.New("invalid positive integer")

type (
	// PositiveInt is a strictly positive operand (base or exponent) supplied by
	// a user.
	PositiveInt int64

	// InvalidPositiveIntError is returned when a value is zero, negative or not
	// a number at all. Input holds the raw text when the value came from parsing.
	InvalidPositiveIntError struct {
		Value PositiveInt
		Input string
	}
)

// String returns the decimal representation of the value.
func (p PositiveInt) String() string { return strconv.FormatInt(int64(p), 10) }

// Uint64 returns the value as an unsigned integer. Only meaningful for valid values.
func (p PositiveInt) Uint64() uint64 { return uint64(p) }

// Validate returns an error if the value is not greater than zero.
func (p PositiveInt) Validate() error {
	if p <= 0 {
		return &InvalidPositiveIntError{Value: p}
	}
	return nil
}

// Error implements the error interface for InvalidPositiveIntError.
func (e *InvalidPositiveIntError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid input %q: enter a positive integer", e.Input)
	}
	return fmt.Sprintf("invalid value %d: must be a positive integer", e.Value)
}

// Unwrap returns ErrInvalidPositiveInt for errors.Is() compatibility.
func (e *InvalidPositiveIntError) Unwrap() error { return ErrInvalidPositiveInt }

// IsPositive reports whether v is greater than zero.
func IsPositive(v int64) bool {
	return PositiveInt(v).Validate() == nil
}

// ParsePositiveInt parses a decimal string (surrounding whitespace allowed)
// into a validated PositiveInt.
func ParsePositiveInt(s string) (PositiveInt, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &InvalidPositiveIntError{Input: trimmed}
	}
	p := PositiveInt(v)
	if err := p.Validate(); err != nil {
		return 0, &InvalidPositiveIntError{Value: p, Input: trimmed}
	}
	return p, nil
}
