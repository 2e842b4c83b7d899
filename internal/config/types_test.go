// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/powcalc/powcalc/pkg/types"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   ColorScheme
		wantErr bool
	}{
		{ColorSchemeAuto, false},
		{ColorSchemeDark, false},
		{ColorSchemeLight, false},
		{"", true},
		{"solarized", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColorScheme) {
				t.Errorf("error should wrap ErrInvalidColorScheme, got %v", err)
			}
		})
	}
}

func TestConfig_Validate_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.MaxExponent = -1
	cfg.Limits.FastPathMaxBase = 0
	cfg.Serve.Addr = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	var ice *InvalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("expected *InvalidConfigError, got %T", err)
	}
	if len(ice.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(ice.FieldErrors), ice.FieldErrors)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("should match ErrInvalidConfig")
	}
	if !errors.Is(err, ErrInvalidLimits) {
		t.Error("should match ErrInvalidLimits")
	}
	if !errors.Is(err, types.ErrInvalidListenAddr) {
		t.Error("should match types.ErrInvalidListenAddr")
	}
}

func TestInvalidConfigError_SingleField(t *testing.T) {
	t.Parallel()

	err := &InvalidConfigError{FieldErrors: []error{&InvalidLimitsError{Field: "fast_path_max_base", Value: 0}}}
	want := "invalid config: invalid limits: fast_path_max_base = 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
