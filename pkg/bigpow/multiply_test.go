// SPDX-License-Identifier: MPL-2.0

package bigpow

import (
	"math/big"
	"testing"
	"testing/quick"
)

func TestMultiply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b uint64
		want string
	}{
		{name: "zero times zero", a: 0, b: 0, want: "0"},
		{name: "zero times value", a: 0, b: 12345, want: "0"},
		{name: "value times zero", a: 98765, b: 0, want: "0"},
		{name: "identity", a: 1, b: 4711, want: "4711"},
		{name: "single carry", a: 9, b: 9, want: "81"},
		{name: "carry past operand", a: 99, b: 99, want: "9801"},
		{name: "powers of ten", a: 1000, b: 100, want: "100000"},
		{name: "beyond uint64", a: 18446744073709551615, b: 18446744073709551615, want: "340282366920938463426481119284349108225"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Multiply(FromUint64(tt.a), FromUint64(tt.b))
			if got.String() != tt.want {
				t.Errorf("Multiply(%d, %d) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			if got.DigitCount() != len(tt.want) {
				t.Errorf("Multiply(%d, %d).DigitCount() = %d, want %d", tt.a, tt.b, got.DigitCount(), len(tt.want))
			}
		})
	}
}

func TestMultiplyDoesNotModifyOperands(t *testing.T) {
	t.Parallel()

	a := FromUint64(999)
	b := FromUint64(999)
	_ = Multiply(a, b)
	_ = a.Mul(a)

	if a.String() != "999" || b.String() != "999" {
		t.Errorf("operands changed: a=%s b=%s", a, b)
	}
}

func TestMultiplyMatchesNativeProduct(t *testing.T) {
	t.Parallel()

	// Operands are limited to 32 bits so the native product cannot overflow.
	f := func(x, y uint32) bool {
		got := Multiply(FromUint64(uint64(x)), FromUint64(uint64(y)))
		return got.Equal(FromUint64(uint64(x) * uint64(y)))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMultiplyCommutative(t *testing.T) {
	t.Parallel()

	f := func(x, y uint64) bool {
		a, b := FromUint64(x), FromUint64(y)
		return Multiply(a, b).Equal(Multiply(b, a))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMultiplyAssociative(t *testing.T) {
	t.Parallel()

	f := func(x, y, z uint64) bool {
		a, b, c := FromUint64(x), FromUint64(y), FromUint64(z)
		left := Multiply(Multiply(a, b), c)
		right := Multiply(a, Multiply(b, c))
		if !left.Equal(right) {
			return false
		}

		want := new(big.Int).SetUint64(x)
		want.Mul(want, new(big.Int).SetUint64(y))
		want.Mul(want, new(big.Int).SetUint64(z))
		return left.String() == want.String()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
