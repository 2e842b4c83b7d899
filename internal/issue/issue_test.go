// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValuesOrderedAndComplete(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 5 {
		t.Fatalf("len(Values()) = %d, want 5", len(values))
	}
	for i, is := range values {
		if is.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, is.Id(), i+1)
		}
		if strings.TrimSpace(string(is.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty guidance", is.Id())
		}
	}
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	if Get(0) != nil || Get(999) != nil {
		t.Error("Get() of an unknown id should return nil")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Get(InvalidOperandsId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "Invalid operands") {
		t.Errorf("Render() output missing heading:\n%s", out)
	}
	if !strings.Contains(out, "powcalc pow 2 10") {
		t.Errorf("Render() output missing example:\n%s", out)
	}
}
