// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrInvalidListenAddr is the sentinel error wrapped by InvalidListenAddrError.
var ErrInvalidListenAddr = errors.New("invalid listen address")

type (
	// ListenAddr is a host:port pair the web server binds to. The host may be
	// empty (all interfaces). Port 0 asks the kernel for a free port.
	ListenAddr string

	// InvalidListenAddrError is returned when a ListenAddr cannot be split into
	// host and port or the port is outside 0-65535.
	InvalidListenAddrError struct {
		Value  ListenAddr
		Reason string
	}
)

// String returns the address as configured.
func (a ListenAddr) String() string { return string(a) }

// Validate returns an error if the address is malformed.
func (a ListenAddr) Validate() error {
	_, port, err := net.SplitHostPort(string(a))
	if err != nil {
		return &InvalidListenAddrError{Value: a, Reason: "expected host:port"}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return &InvalidListenAddrError{Value: a, Reason: "port must be 0-65535"}
	}
	return nil
}

// Error implements the error interface for InvalidListenAddrError.
func (e *InvalidListenAddrError) Error() string {
	return fmt.Sprintf("invalid listen address %q: %s", string(e.Value), e.Reason)
}

// Unwrap returns ErrInvalidListenAddr for errors.Is() compatibility.
func (e *InvalidListenAddrError) Unwrap() error { return ErrInvalidListenAddr }
