// SPDX-License-Identifier: MPL-2.0

// Package boundary guards the exact power engine where it is invoked from
// outside its own trust domain: the WebAssembly exports, the HTTP API and the
// non-interactive CLI commands.
//
// The arithmetic in pkg/bigpow assumes validated non-negative operands. The
// Calculator here is the only place signed caller input is checked before it
// reaches the engine.
package boundary
