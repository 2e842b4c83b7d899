// SPDX-License-Identifier: MPL-2.0

// Package types defines the validated primitive values that cross the powcalc
// boundaries: user names, positive integer operands, listen addresses and
// process exit codes.
//
// Each type carries a Validate method returning a typed error that wraps a
// package sentinel, so callers can use errors.Is for programmatic checks.
// This package is a leaf dependency and imports only the standard library.
package types
