// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidPersonName is the sentinel error wrapped by InvalidPersonNameError.
var ErrInvalidPersonName = errors.New("invalid name")

type (
	// PersonName is the name a user greets the calculator with.
	// A valid name is non-empty and contains only ASCII letters and spaces.
	PersonName string

	// InvalidPersonNameError is returned when a PersonName is empty or contains
	// a character other than a letter or a space.
	InvalidPersonNameError struct {
		Value PersonName
	}
)

// String returns the name as entered.
func (n PersonName) String() string { return string(n) }

// Validate returns an error if the name is empty or holds a non-letter,
// non-space character.
func (n PersonName) Validate() error {
	if n == "" {
		return &InvalidPersonNameError{Value: n}
	}
	for i := range len(n) {
		if !isNameByte(n[i]) {
			return &InvalidPersonNameError{Value: n}
		}
	}
	return nil
}

// Error implements the error interface for InvalidPersonNameError.
func (e *InvalidPersonNameError) Error() string {
	if e.Value == "" {
		return "invalid name: must not be empty"
	}
	return fmt.Sprintf("invalid name %q: use only letters and spaces", string(e.Value))
}

// Unwrap returns ErrInvalidPersonName for errors.Is() compatibility.
func (e *InvalidPersonNameError) Unwrap() error { return ErrInvalidPersonName }

// IsValidName reports whether s is a valid PersonName.
func IsValidName(s string) bool {
	return PersonName(s).Validate() == nil
}

func isNameByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == ' '
}
