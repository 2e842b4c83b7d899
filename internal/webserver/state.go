// SPDX-License-Identifier: MPL-2.0

package webserver

import (
	"errors"
	"fmt"
)

const (
	// StateCreated indicates the server was created but Start was not called.
	StateCreated State = iota
	// StateStarting indicates Start is opening the listener.
	StateStarting
	// StateRunning indicates the server is accepting requests.
	StateRunning
	// StateStopping indicates a graceful shutdown is in progress.
	StateStopping
	// StateStopped is terminal.
	StateStopped
	// StateFailed is terminal: the server failed to start or Serve returned
	// an error.
	StateFailed
)

// ErrInvalidState is returned when a State value is not a defined lifecycle state.
var ErrInvalidState = errors.New("invalid server state")

type (
	// State is the lifecycle state of a Server.
	State int32

	// InvalidStateError is returned when a State value is not recognized.
	InvalidStateError struct {
		Value State
	}
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Validate returns an error if s is not a defined state.
func (s State) Validate() error {
	if s < StateCreated || s > StateFailed {
		return &InvalidStateError{Value: s}
	}
	return nil
}

// IsTerminal reports whether no further transitions can happen.
func (s State) IsTerminal() bool {
	return s == StateStopped || s == StateFailed
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid server state %d", int32(e.Value))
}

// Unwrap returns ErrInvalidState for errors.Is() compatibility.
func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
