// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error returned by a command to the process exit code.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, boundary.ErrInvalidInput),
		errors.Is(err, boundary.ErrExponentTooLarge),
		errors.Is(err, types.ErrInvalidPositiveInt):
		return types.ExitInvalidInput
	default:
		return types.ExitFailure
	}
}
