// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/powcalc/powcalc/internal/config"
	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/pkg/types"
)

type staticProvider struct {
	cfg *config.Config
	err error
}

func (p staticProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	return p.cfg, p.err
}

type run struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, cfg *config.Config, stdin string, args ...string) run {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticProvider{cfg: cfg},
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return run{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "Ada\n2\n10\n")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "Hello, Ada!\n2 ^ 10 = 1024\n") {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestInteractive_Subcommand(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "Bo\n5\n3\n", "interactive")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "5 ^ 3 = 125") {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestInteractive_OverflowFallsBackToExact(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "Ada\n2\n100\n")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "2 ^ 100 = 1267650600228229401496703205376") {
		t.Errorf("stdout = %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "does not fit in 64 bits") {
		t.Errorf("expected overflow warning on stderr, got %q", r.stderr)
	}
}

func TestInteractive_ExponentCeiling(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Limits.MaxExponent = 50
	r := execute(t, cfg, "Ada\n2\n100\n")
	if exitCodeFor(r.err) != types.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d (err %v)", exitCodeFor(r.err), types.ExitInvalidInput, r.err)
	}
}

func TestInteractive_InputClosed(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "Ada\n")
	if r.err == nil {
		t.Fatal("expected error when input ends early")
	}
	if exitCodeFor(r.err) != types.ExitInvalidInput {
		t.Errorf("exit code = %d", exitCodeFor(r.err))
	}
	var ae *issue.ActionableError
	if !errors.As(r.err, &ae) {
		t.Errorf("expected an ActionableError, got %T", r.err)
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode types.ExitCode
	}{
		{"small", []string{"pow", "2", "10"}, "1024\n", types.ExitOK},
		{"zero exponent", []string{"pow", "9", "0"}, "1\n", types.ExitOK},
		{"exact", []string{"pow", "3", "50"}, "717897987691852588770249\n", types.ExitOK},
		{"digits only", []string{"pow", "2", "200", "--digits-only"}, "61\n", types.ExitOK},
		{"zero base", []string{"pow", "0", "5"}, "", types.ExitInvalidInput},
		{"negative exponent", []string{"pow", "2", "-1"}, "", types.ExitInvalidInput},
		{"not a number", []string{"pow", "two", "5"}, "", types.ExitInvalidInput},
		{"above ceiling", []string{"pow", "2", "100001"}, "", types.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := execute(t, nil, "", tt.args...)
			if got := exitCodeFor(r.err); got != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (err %v)", got, tt.wantCode, r.err)
			}
			if r.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", r.stdout, tt.want)
			}
		})
	}
}

func TestPow_TooLargeCarriesIssue(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "", "pow", "2", "1000000")
	var ae *issue.ActionableError
	if !errors.As(r.err, &ae) {
		t.Fatalf("expected ActionableError, got %T", r.err)
	}
	if ae.Issue != issue.ExponentTooLargeId {
		t.Errorf("issue = %d, want ExponentTooLargeId", ae.Issue)
	}
}

func TestPow_VerbosePrintsChain(t *testing.T) {
	t.Parallel()

	r := execute(t, nil, "", "--verbose", "pow", "0", "1")
	if r.err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(r.stderr, "Error chain:") {
		t.Errorf("verbose mode should print the error chain, got %q", r.stderr)
	}
}

func TestConfigLoadFailureFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticProvider{err: errors.New("broken file")},
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs([]string{"pow", "2", "3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("pow should still work with defaults, got %v", err)
	}
	if stdout.String() != "8\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "broken file") {
		t.Errorf("expected config warning, got %q", stderr.String())
	}

	root = NewRootCommand(app)
	root.SetArgs([]string{"config", "show"})
	if err := root.Execute(); err == nil {
		t.Error("config show should surface the load error")
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Limits.MaxExponent = 77

	tests := []struct {
		format string
		want   string
	}{
		{"text", "max_exponent: 77"},
		{"cue", "max_exponent:           77"},
		{"toml", "max_exponent = 77"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			r := execute(t, cfg, "", "config", "show", "--format", tt.format)
			if r.err != nil {
				t.Fatalf("unexpected error: %v", r.err)
			}
			if !strings.Contains(r.stdout, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, r.stdout)
			}
		})
	}

	r := execute(t, cfg, "", "config", "show", "--format", "yaml")
	if r.err == nil {
		t.Error("unknown format should fail")
	}
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
