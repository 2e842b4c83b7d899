// SPDX-License-Identifier: MPL-2.0

package bigpow

// Power returns base raised to exponent exactly, using binary
// (square-and-multiply) exponentiation.
//
// Power(x, 0) is 1 for every x, including 0. Power(0, e) is 0 for e > 0.
// The loop runs O(log exponent) multiplications.
func Power(base, exponent uint64) DigitVector {
	result := One()
	b := FromUint64(base)

	for exponent > 0 {
		if exponent&1 == 1 {
			result = Multiply(result, b)
		}
		exponent >>= 1
		// The square after the highest set bit is never used.
		if exponent > 0 {
			b = Multiply(b, b)
		}
	}

	return result
}
