// SPDX-License-Identifier: MPL-2.0

package resultbuf

import (
	"sync"
	"unsafe"

	"github.com/powcalc/powcalc/pkg/bigpow"
)

// terminator marks the end of the exported content.
const terminator = 0

// Default is the process-wide buffer used by the embedding boundary.
var Default = &Buffer{}

type (
	// Buffer is a grow-only export region for decimal results.
	//
	// Capacity is always at least content length + 1 (for the terminator).
	// Storage is replaced only when a result does not fit and is dropped only
	// by Release. All methods are safe for concurrent use.
	Buffer struct {
		mu   sync.Mutex
		data []byte
		n    int
	}

	// GrowFunc is notified when a Buffer replaces its storage.
	GrowFunc func(oldCap, newCap int)
)

// Export renders v most-significant digit first into the buffer, followed by
// a NUL terminator, and returns a view of the digits.
//
// The returned slice aliases the buffer and is valid until the next Export or
// Release; callers that keep it must copy it.
func (b *Buffer) Export(v bigpow.DigitVector) []byte {
	return b.ExportNotify(v, nil)
}

// ExportNotify is Export with a callback invoked after the storage has grown.
func (b *Buffer) ExportNotify(v bigpow.DigitVector, onGrow GrowFunc) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := v.DigitCount()
	if need := n + 1; cap(b.data) < need {
		oldCap := cap(b.data)
		// Allocate first; the old region stays intact if this panics.
		grown := make([]byte, need)
		b.data = grown
		if onGrow != nil {
			onGrow(oldCap, need)
		}
	}

	b.data = v.AppendDecimal(b.data[:0])
	b.data = append(b.data, terminator)
	b.n = n

	return b.data[:n:n]
}

// Release drops the storage and resets the capacity to zero. Calling it on a
// buffer that holds nothing is a no-op.
func (b *Buffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = nil
	b.n = 0
}

// Len returns the length of the current content, excluding the terminator.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

// Cap returns the current storage capacity in bytes.
func (b *Buffer) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cap(b.data)
}

// Allocated reports whether the buffer currently holds storage.
func (b *Buffer) Allocated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data != nil
}

// String returns an owned copy of the current content.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return ""
	}
	return string(b.data[:b.n])
}

// Pointer returns the address of the first content byte, or 0 when no storage
// is allocated. It is meant for hosts that read linear memory directly.
func (b *Buffer) Pointer() uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}
