// SPDX-License-Identifier: MPL-2.0

//go:build wasip1

// Command powcalc-wasm is the embeddable form of the calculator: a WASI
// reactor exporting the validation and power functions to its host.
//
// Build it with
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o powcalc.wasm ./cmd/powcalc-wasm
//
// The host reads big results straight out of linear memory: calculateBigPower
// returns the address of a NUL-terminated decimal string inside the shared
// result buffer and resultLength reports its length. The region stays valid
// until the next calculateBigPower or freeResultBuffer call.
package main

import (
	"math"
	"sync"
	"unsafe"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/pkg/resultbuf"
	"github.com/powcalc/powcalc/pkg/types"
)

var (
	calc = boundary.New(boundary.Options{Buffer: resultbuf.Default})

	mu         sync.Mutex
	lastStatus = boundary.StatusOK
	input      []byte
)

func main() {}

func setStatus(s boundary.Status) {
	mu.Lock()
	lastStatus = s
	mu.Unlock()
}

// allocInput returns a scratch region of size bytes the host can write a
// name into before calling isValidName. The region is reused across calls.
//
//go:wasmexport allocInput
func allocInput(size int32) uintptr {
	if size <= 0 {
		return 0
	}
	mu.Lock()
	defer mu.Unlock()
	if cap(input) < int(size) {
		input = make([]byte, size)
	}
	input = input[:size]
	return uintptr(unsafe.Pointer(&input[0]))
}

// isValidName returns 1 when the length bytes at ptr are a non-empty run of
// ASCII letters and spaces.
//
//go:wasmexport isValidName
func isValidName(ptr uintptr, length int32) int32 {
	if ptr == 0 || length <= 0 {
		return 0
	}
	name := unsafe.String((*byte)(unsafe.Pointer(ptr)), int(length))
	return boolInt(types.IsValidName(name))
}

//go:wasmexport isPositiveInteger
func isPositiveInteger(value int32) int32 {
	return boolInt(types.IsPositive(int64(value)))
}

// calculatePower answers small operands in floating point. The value is an
// exact integer when lastPowerStatus reports 0 and NaN otherwise.
//
//go:wasmexport calculatePower
func calculatePower(base, exponent int32) float64 {
	res, err := calc.SmallPower(int64(base), int64(exponent))
	status := boundary.StatusOf(res, err)
	setStatus(status)
	if status != boundary.StatusOK {
		return math.NaN()
	}
	return res.Value
}

// lastPowerStatus reports the boundary.Status of the most recent
// calculatePower, calculateBigPower or getResultDigitCount call: 0 ok,
// 1 fallback, 2 invalid.
//
//go:wasmexport lastPowerStatus
func lastPowerStatus() int32 {
	mu.Lock()
	defer mu.Unlock()
	return int32(lastStatus)
}

// calculateBigPower exports base^exponent into the shared result buffer and
// returns its address, or 0 on invalid input.
//
//go:wasmexport calculateBigPower
func calculateBigPower(base, exponent int32) uintptr {
	_, err := calc.BigPower(int64(base), int64(exponent))
	setStatus(boundary.StatusOf(boundary.SmallResult{}, err))
	if err != nil {
		return 0
	}
	return resultbuf.Default.Pointer()
}

//go:wasmexport resultLength
func resultLength() int32 {
	return int32(resultbuf.Default.Len())
}

// getResultDigitCount returns the digit count of base^exponent, or -1 on
// invalid input.
//
//go:wasmexport getResultDigitCount
func getResultDigitCount(base, exponent int32) int32 {
	n, err := calc.DigitCount(int64(base), int64(exponent))
	setStatus(boundary.StatusOf(boundary.SmallResult{}, err))
	if err != nil {
		return -1
	}
	return int32(n)
}

//go:wasmexport freeResultBuffer
func freeResultBuffer() {
	calc.Release()
}

func boolInt(ok bool) int32 {
	if ok {
		return 1
	}
	return 0
}
