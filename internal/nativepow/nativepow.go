// SPDX-License-Identifier: MPL-2.0

// Package nativepow computes integer powers in a fixed-width machine type for
// the console fast path.
package nativepow

import "math/bits"

// Pow returns base^exponent as a uint64. ok is false when the exact result
// does not fit in 64 bits; the returned value is then meaningless.
func Pow(base, exponent uint64) (result uint64, ok bool) {
	result = 1
	b := base
	for exponent > 0 {
		if exponent&1 == 1 {
			hi, lo := bits.Mul64(result, b)
			if hi != 0 {
				return 0, false
			}
			result = lo
		}
		exponent >>= 1
		if exponent == 0 {
			break
		}
		hi, lo := bits.Mul64(b, b)
		if hi != 0 {
			// A remaining set bit would multiply by at least this square.
			return 0, false
		}
		b = lo
	}
	return result, true
}
