// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

const (
	// ExitOK signals success.
	ExitOK ExitCode = 0
	// ExitFailure signals a runtime failure (I/O, server, config).
	ExitFailure ExitCode = 1
	// ExitInvalidInput signals operands rejected by the boundary guard.
	ExitInvalidInput ExitCode = 2
)

// ExitCode is the process exit status returned by the powcalc CLI.
type ExitCode int

// IsSuccess returns true if the exit code indicates success.
func (c ExitCode) IsSuccess() bool { return c == ExitOK }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
