// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAsk_ValidFirstTry(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := NewSession(strings.NewReader("Ada Lovelace\n2\n10\n"), &out, Options{})

	got, err := s.Ask(context.Background())
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Name != "Ada Lovelace" || got.Base != 2 || got.Exponent != 10 {
		t.Errorf("Ask() = %+v", got)
	}

	want := namePrompt + basePrompt + exponentPrompt
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestAsk_RepromptsUntilValid(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"R2D2", "", "Grace",
		"zero", "0", "-4", "3",
		"1.5", "12abc", "4",
	}, "\n") + "\n"

	var out strings.Builder
	s := NewSession(strings.NewReader(input), &out, Options{})

	got, err := s.Ask(context.Background())
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Name != "Grace" || got.Base != 3 || got.Exponent != 4 {
		t.Errorf("Ask() = %+v", got)
	}

	text := out.String()
	if n := strings.Count(text, invalidNameMsg); n != 2 {
		t.Errorf("expected 2 invalid name messages, got %d", n)
	}
	if n := strings.Count(text, invalidIntMsg); n != 5 {
		t.Errorf("expected 5 invalid integer messages, got %d", n)
	}
	if n := strings.Count(text, namePrompt); n != 3 {
		t.Errorf("expected name prompt 3 times, got %d", n)
	}
}

func TestAsk_CRLF(t *testing.T) {
	t.Parallel()

	s := NewSession(strings.NewReader("Bob\r\n5\r\n3\r\n"), &strings.Builder{}, Options{})
	got, err := s.Ask(context.Background())
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Name != "Bob" || got.Base != 5 || got.Exponent != 3 {
		t.Errorf("Ask() = %+v", got)
	}
}

func TestAsk_InputClosed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"after name", "Alan\n"},
		{"only invalid", "Alan\n7\nnope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSession(strings.NewReader(tt.input), &strings.Builder{}, Options{})
			if _, err := s.Ask(context.Background()); !errors.Is(err, ErrInputClosed) {
				t.Errorf("Ask() error = %v, want ErrInputClosed", err)
			}
		})
	}
}

func TestAsk_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	s := NewSession(strings.NewReader("Alan\n"), &out, Options{})
	if _, err := s.Name(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Name() error = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written after cancellation, got %q", out.String())
	}
}

func TestNewSession_AccessibleDisablesForms(t *testing.T) {
	t.Parallel()

	s := NewSession(strings.NewReader(""), &strings.Builder{}, Options{Forms: true, Accessible: true})
	if s.forms {
		t.Error("accessible mode should use the line dialogue")
	}
	if s.theme == nil {
		t.Error("default theme should be set")
	}
}
