// SPDX-License-Identifier: MPL-2.0

package boundary

// Status tags the outcome of a Calculator call for hosts that receive plain
// integers instead of Go errors.
type Status int32

const (
	// StatusOK means the call produced a value.
	StatusOK Status = iota
	// StatusFallback means SmallPower declined and BigPower or Exact must be
	// used.
	StatusFallback
	// StatusInvalid means the operands were rejected.
	StatusInvalid
)

// String returns the lowercase name of s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFallback:
		return "fallback"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// StatusOf maps the result of a Calculator call to its Status. Every error a
// Calculator returns is a rejection of the operands.
func StatusOf(res SmallResult, err error) Status {
	switch {
	case err != nil:
		return StatusInvalid
	case res.Fallback:
		return StatusFallback
	default:
		return StatusOK
	}
}
