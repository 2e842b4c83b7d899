// SPDX-License-Identifier: MPL-2.0

// Package webserver serves the browser front end of powcalc: the page that
// loads powcalc.wasm, the module itself, and a small JSON API computing exact
// powers on the server for hosts without WebAssembly.
//
// Every response carries the cross-origin isolation headers the page needs
// (Cross-Origin-Opener-Policy: same-origin, Cross-Origin-Embedder-Policy:
// require-corp) and a permissive Access-Control-Allow-Origin for local
// development.
//
// A Server is single-use. Its lifecycle moves through
// created → starting → running → stopping → stopped, or to failed when the
// listener cannot be opened or Serve returns unexpectedly.
package webserver
