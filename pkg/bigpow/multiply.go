// SPDX-License-Identifier: MPL-2.0

package bigpow

// Multiply returns the exact product of a and b using schoolbook long
// multiplication over the digit arrays. Neither operand is modified.
//
// Cost is O(len(a)*len(b)) digit operations. Every intermediate value is at
// most 9 + 9*9 + 9 and fits comfortably in a uint32.
func Multiply(a, b DigitVector) DigitVector {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}

	result := make([]uint8, len(a.digits)+len(b.digits))
	for i, da := range a.digits {
		var carry uint32
		for j := 0; j < len(b.digits) || carry != 0; j++ {
			partial := uint32(result[i+j]) + carry
			if j < len(b.digits) {
				partial += uint32(da) * uint32(b.digits[j])
			}
			result[i+j] = uint8(partial % radix)
			carry = partial / radix
		}
	}

	return DigitVector{digits: trim(result)}
}

// Mul is the method form of Multiply.
func (v DigitVector) Mul(other DigitVector) DigitVector {
	return Multiply(v, other)
}
