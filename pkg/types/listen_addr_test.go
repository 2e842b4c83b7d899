// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestListenAddrValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     ListenAddr
		wantValid bool
	}{
		{value: ":8080", wantValid: true},
		{value: "127.0.0.1:0", wantValid: true},
		{value: "localhost:65535", wantValid: true},
		{value: "[::1]:9000", wantValid: true},
		{value: "8080", wantValid: false},
		{value: "localhost:http", wantValid: false},
		{value: ":70000", wantValid: false},
		{value: "", wantValid: false},
	}

	for _, tt := range tests {
		err := tt.value.Validate()
		if (err == nil) != tt.wantValid {
			t.Errorf("ListenAddr(%q).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
		}
		if !tt.wantValid && !errors.Is(err, ErrInvalidListenAddr) {
			t.Errorf("error does not wrap ErrInvalidListenAddr: %v", err)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	if !ExitOK.IsSuccess() || ExitFailure.IsSuccess() || ExitInvalidInput.IsSuccess() {
		t.Error("only ExitOK should report success")
	}
	if got := ExitInvalidInput.String(); got != "2" {
		t.Errorf("ExitInvalidInput.String() = %q, want %q", got, "2")
	}
}
