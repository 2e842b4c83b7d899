// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/powcalc/powcalc/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultServeAddr is the listen address for powcalc serve.
	DefaultServeAddr types.ListenAddr = ":8080"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLimits is returned when limits are inconsistent.
	ErrInvalidLimits = errors.New("invalid limits")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidLimitsError reports a negative or zero limit where a positive one
	// is required.
	InvalidLimitsError struct {
		Field string
		Value int64
	}

	// InvalidConfigError collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the root configuration.
	Config struct {
		UI     UIConfig     `json:"ui" mapstructure:"ui" toml:"ui"`
		Limits LimitsConfig `json:"limits" mapstructure:"limits" toml:"limits"`
		Serve  ServeConfig  `json:"serve" mapstructure:"serve" toml:"serve"`
	}

	// UIConfig configures console output and prompting.
	UIConfig struct {
		// ColorScheme selects the glamour style for issue guidance.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// Accessible forces plain line-oriented prompts even on a terminal.
		Accessible bool `json:"accessible" mapstructure:"accessible" toml:"accessible"`
	}

	// LimitsConfig bounds the work the boundary guard accepts.
	LimitsConfig struct {
		// MaxExponent rejects larger exponents; 0 disables the ceiling.
		MaxExponent int64 `json:"max_exponent" mapstructure:"max_exponent" toml:"max_exponent"`
		// FastPathMaxBase bounds the floating-point fast path.
		FastPathMaxBase int64 `json:"fast_path_max_base" mapstructure:"fast_path_max_base" toml:"fast_path_max_base"`
		// FastPathMaxExponent bounds the floating-point fast path.
		FastPathMaxExponent int64 `json:"fast_path_max_exponent" mapstructure:"fast_path_max_exponent" toml:"fast_path_max_exponent"`
	}

	// ServeConfig configures the web server.
	ServeConfig struct {
		// Addr is the host:port to listen on.
		Addr types.ListenAddr `json:"addr" mapstructure:"addr" toml:"addr"`
		// Dir holds the built powcalc.wasm; empty serves only embedded assets.
		Dir string `json:"dir" mapstructure:"dir" toml:"dir"`
		// Metrics exposes /metrics when true.
		Metrics bool `json:"metrics" mapstructure:"metrics" toml:"metrics"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Limits: LimitsConfig{
			MaxExponent:         100_000,
			FastPathMaxBase:     10,
			FastPathMaxExponent: 30,
		},
		Serve: ServeConfig{
			Addr:    DefaultServeAddr,
			Metrics: true,
		},
	}
}

// String returns the scheme name.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the scheme is not auto, dark or light.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate checks limit consistency.
func (c LimitsConfig) Validate() []error {
	var errs []error
	if c.MaxExponent < 0 {
		errs = append(errs, &InvalidLimitsError{Field: "max_exponent", Value: c.MaxExponent})
	}
	if c.FastPathMaxBase <= 0 {
		errs = append(errs, &InvalidLimitsError{Field: "fast_path_max_base", Value: c.FastPathMaxBase})
	}
	if c.FastPathMaxExponent <= 0 {
		errs = append(errs, &InvalidLimitsError{Field: "fast_path_max_exponent", Value: c.FastPathMaxExponent})
	}
	return errs
}

// Error implements the error interface.
func (e *InvalidLimitsError) Error() string {
	return fmt.Sprintf("invalid limits: %s = %d", e.Field, e.Value)
}

// Unwrap returns ErrInvalidLimits for errors.Is() compatibility.
func (e *InvalidLimitsError) Unwrap() error { return ErrInvalidLimits }

// Validate returns an InvalidConfigError listing every invalid field, or nil.
func (c Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Limits.Validate()...)
	if err := c.Serve.Addr.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns the sentinel and the field errors, so errors.Is matches
// ErrInvalidConfig as well as any field-level sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
