// SPDX-License-Identifier: MPL-2.0

// Package prompt collects the console calculator's inputs: a name and two
// positive integers. Invalid answers are rejected and asked again until a
// valid one arrives or input ends.
//
// On a terminal the questions are huh forms with inline validation. When
// input is piped, or accessible mode is requested, a plain line-oriented
// dialogue is used instead.
package prompt
