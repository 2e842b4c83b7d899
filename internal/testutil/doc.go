// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail fast on
// setup errors and restore process state afterwards.
package testutil
