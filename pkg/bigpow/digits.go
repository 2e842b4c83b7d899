// SPDX-License-Identifier: MPL-2.0

package bigpow

import "slices"

// radix is the numeric base of a single stored digit.
const radix = 10

// DigitVector is an arbitrary-precision non-negative integer stored as decimal
// digits, least significant first.
//
// Construct values with Zero, One, FromUint64 or the result of
// Multiply/Power. A canonical vector has at least one digit and no
// most-significant zero digits, except for zero itself which is [0]. The zero
// value reads as 0.
type DigitVector struct {
	digits []uint8
}

// Zero returns the canonical representation of 0.
func Zero() DigitVector {
	return DigitVector{digits: []uint8{0}}
}

// One returns the canonical representation of 1.
func One() DigitVector {
	return DigitVector{digits: []uint8{1}}
}

// FromUint64 extracts the decimal digits of n by repeated division by 10.
func FromUint64(n uint64) DigitVector {
	if n == 0 {
		return Zero()
	}

	digits := make([]uint8, 0, 20) // max uint64 has 20 digits
	for n > 0 {
		digits = append(digits, uint8(n%radix))
		n /= radix
	}
	return DigitVector{digits: digits}
}

// zeroDigits backs the zero value of DigitVector.
var zeroDigits = []uint8{0}

// canonical returns the stored digits, mapping the zero value to [0].
func (v DigitVector) canonical() []uint8 {
	if len(v.digits) == 0 {
		return zeroDigits
	}
	return v.digits
}

// Digits returns a copy of the digits, least significant first.
func (v DigitVector) Digits() []uint8 {
	return slices.Clone(v.canonical())
}

// DigitCount returns the number of decimal digits without rendering the value.
func (v DigitVector) DigitCount() int {
	return len(v.canonical())
}

// IsZero reports whether v is zero.
func (v DigitVector) IsZero() bool {
	d := v.canonical()
	return len(d) == 1 && d[0] == 0
}

// Equal reports whether v and other denote the same integer.
func (v DigitVector) Equal(other DigitVector) bool {
	return slices.Equal(v.canonical(), other.canonical())
}

// AppendDecimal appends the decimal rendering of v, most significant digit
// first, to dst and returns the extended slice.
func (v DigitVector) AppendDecimal(dst []byte) []byte {
	d := v.canonical()
	for i := len(d) - 1; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

// String renders v in canonical decimal form.
func (v DigitVector) String() string {
	return string(v.AppendDecimal(make([]byte, 0, v.DigitCount())))
}

// trim strips most-significant zero digits, keeping at least one digit.
func trim(digits []uint8) []uint8 {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}
