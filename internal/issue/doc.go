// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the user. Issue adds Markdown guidance, rendered with
// glamour, for the failure kinds powcalc knows how to explain.
package issue
