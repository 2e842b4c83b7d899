// SPDX-License-Identifier: MPL-2.0

// Package resultbuf provides a reusable, NUL-terminated byte region for
// handing computed results across an isolation boundary.
//
// A host that embeds the engine (for example a WebAssembly runtime) cannot walk
// a bigpow.DigitVector; it can only read flat bytes at an address. Buffer keeps
// one such region alive between calls, grows it when a result does not fit and
// drops it on Release. In-process callers should prefer an owned string.
package resultbuf
