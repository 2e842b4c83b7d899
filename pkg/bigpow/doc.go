// SPDX-License-Identifier: MPL-2.0

// Package bigpow implements exact non-negative integer exponentiation on a
// base-10 digit representation.
//
// A DigitVector stores one decimal digit per element, least significant digit
// first. Values are immutable: Multiply and Power always build new vectors and
// never modify their operands, so independent computations may run on separate
// goroutines without coordination.
package bigpow
