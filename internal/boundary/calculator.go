// SPDX-License-Identifier: MPL-2.0

package boundary

import (
	"errors"
	"io"
	"time"

	"github.com/powcalc/powcalc/internal/metrics"
	"github.com/powcalc/powcalc/pkg/bigpow"
	"github.com/powcalc/powcalc/pkg/resultbuf"

	"github.com/charmbracelet/log"
)

const (
	// DefaultFastPathMaxBase is the largest base answered by SmallPower.
	DefaultFastPathMaxBase = 10
	// DefaultFastPathMaxExponent is the largest exponent answered by SmallPower.
	DefaultFastPathMaxExponent = 30

	// maxExactFloat is the largest float64 below which every integer is
	// representable.
	maxExactFloat = 1 << 53
)

type (
	// Options configures a Calculator. Zero values select the defaults.
	Options struct {
		// MaxExponent rejects larger exponents with ExponentTooLargeError.
		// Zero means no ceiling.
		MaxExponent int64
		// FastPathMaxBase bounds the base accepted by SmallPower.
		FastPathMaxBase int64
		// FastPathMaxExponent bounds the exponent accepted by SmallPower.
		FastPathMaxExponent int64
		// Buffer receives BigPower results. Defaults to resultbuf.Default.
		Buffer *resultbuf.Buffer
		// Logger receives debug output. Defaults to a discarding logger.
		Logger *log.Logger
		// Metrics records observations. May be nil.
		Metrics *metrics.Metrics
	}

	// Calculator validates caller input and drives the exact power engine.
	Calculator struct {
		opts Options
	}

	// SmallResult is the tagged outcome of SmallPower.
	SmallResult struct {
		// Value is base^exponent when Fallback is false. It is always an
		// integer no larger than 2^53.
		Value float64
		// Fallback is true when the operands are outside the fast path or the
		// result is too large for an exact float64. The caller should use
		// BigPower or Exact instead.
		Fallback bool
	}
)

// New creates a Calculator from opts.
func New(opts Options) *Calculator {
	if opts.FastPathMaxBase <= 0 {
		opts.FastPathMaxBase = DefaultFastPathMaxBase
	}
	if opts.FastPathMaxExponent <= 0 {
		opts.FastPathMaxExponent = DefaultFastPathMaxExponent
	}
	if opts.Buffer == nil {
		opts.Buffer = resultbuf.Default
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Calculator{opts: opts}
}

// Guard rejects a non-positive base, a negative exponent and, when a ceiling
// is configured, an exponent above it.
func (c *Calculator) Guard(base, exponent int64) error {
	if base <= 0 || exponent < 0 {
		return &InvalidInputError{Base: base, Exponent: exponent}
	}
	if c.opts.MaxExponent > 0 && exponent > c.opts.MaxExponent {
		return &ExponentTooLargeError{Exponent: exponent, Max: c.opts.MaxExponent}
	}
	return nil
}

// SmallPower answers small operands with plain floating-point repeated
// multiplication. Operands outside the fast path, or results above 2^53,
// yield Fallback instead of a value.
func (c *Calculator) SmallPower(base, exponent int64) (SmallResult, error) {
	if err := c.Guard(base, exponent); err != nil {
		c.opts.Metrics.ObserveComputation(metrics.PathSmall, resultLabel(err), 0)
		return SmallResult{}, err
	}
	if base > c.opts.FastPathMaxBase || exponent > c.opts.FastPathMaxExponent {
		c.opts.Metrics.ObserveComputation(metrics.PathSmall, metrics.ResultFallback, 0)
		return SmallResult{Fallback: true}, nil
	}

	start := time.Now()
	value := 1.0
	for range exponent {
		value *= float64(base)
		if value > maxExactFloat {
			c.opts.Metrics.ObserveComputation(metrics.PathSmall, metrics.ResultFallback, time.Since(start))
			return SmallResult{Fallback: true}, nil
		}
	}
	c.opts.Metrics.ObserveComputation(metrics.PathSmall, metrics.ResultOK, time.Since(start))

	return SmallResult{Value: value}, nil
}

// BigPower computes base^exponent exactly and exports it into the
// calculator's buffer. The returned slice aliases the buffer and is valid
// until the next BigPower or Release.
func (c *Calculator) BigPower(base, exponent int64) ([]byte, error) {
	v, err := c.compute(metrics.PathBuffer, base, exponent)
	if err != nil {
		return nil, err
	}

	out := c.opts.Buffer.ExportNotify(v, func(oldCap, newCap int) {
		c.opts.Logger.Debug("result buffer grown", "from", oldCap, "to", newCap)
		c.opts.Metrics.BufferGrown(newCap)
	})
	return out, nil
}

// Exact computes base^exponent and returns an owned decimal string. It never
// touches the shared buffer and is safe for concurrent use.
func (c *Calculator) Exact(base, exponent int64) (string, error) {
	v, err := c.compute(metrics.PathExact, base, exponent)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// DigitCount returns the number of decimal digits of base^exponent.
func (c *Calculator) DigitCount(base, exponent int64) (int, error) {
	v, err := c.compute(metrics.PathDigits, base, exponent)
	if err != nil {
		return 0, err
	}
	return v.DigitCount(), nil
}

// Release frees the calculator's buffer. Safe to call repeatedly.
func (c *Calculator) Release() {
	c.opts.Buffer.Release()
	c.opts.Metrics.BufferReleased()
	c.opts.Logger.Debug("result buffer released")
}

// Buffer returns the buffer BigPower exports into.
func (c *Calculator) Buffer() *resultbuf.Buffer {
	return c.opts.Buffer
}

// compute guards the operands and runs the engine, recording metrics.
func (c *Calculator) compute(path string, base, exponent int64) (bigpow.DigitVector, error) {
	if err := c.Guard(base, exponent); err != nil {
		c.opts.Logger.Debug("rejected operands", "path", path, "base", base, "exponent", exponent, "error", err)
		c.opts.Metrics.ObserveComputation(path, resultLabel(err), 0)
		return bigpow.DigitVector{}, err
	}

	start := time.Now()
	v := bigpow.Power(uint64(base), uint64(exponent))
	elapsed := time.Since(start)

	c.opts.Logger.Debug("computed power", "path", path, "base", base, "exponent", exponent,
		"digits", v.DigitCount(), "elapsed", elapsed)
	c.opts.Metrics.ObserveComputation(path, metrics.ResultOK, elapsed)
	c.opts.Metrics.ObserveDigits(v.DigitCount())

	return v, nil
}

func resultLabel(err error) string {
	if errors.Is(err, ErrExponentTooLarge) {
		return metrics.ResultTooLarge
	}
	return metrics.ResultInvalid
}
