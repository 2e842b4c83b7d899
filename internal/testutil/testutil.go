// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Stopper is implemented by servers that can be shut down.
type Stopper interface {
	Stop() error
}

// MustSetenv sets key to value and registers a cleanup restoring the original
// value (or unsetting it). Tests using it must not call t.Parallel.
func MustSetenv(t testing.TB, key, value string) {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
			return
		}
		if err := os.Unsetenv(key); err != nil {
			t.Errorf("failed to unset env %s: %v", key, err)
		}
	})
}

// MustChdir changes the working directory to dir for the rest of the test.
func MustChdir(t testing.TB, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	})
}

// MustWriteFile writes content to name inside dir, creating parents, and
// returns the full path.
func MustWriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// DeferStop returns a cleanup function that stops s, logging any error.
func DeferStop(t testing.TB, s Stopper) func() {
	t.Helper()
	return func() {
		t.Helper()
		if err := s.Stop(); err != nil {
			t.Logf("warning: stop returned error: %v", err)
		}
	}
}
