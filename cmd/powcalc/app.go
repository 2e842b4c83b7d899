// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/internal/config"
	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/internal/metrics"
	"github.com/powcalc/powcalc/internal/prompt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type (
	// App wires CLI dependencies. Every command handler receives the same App.
	App struct {
		Config config.Provider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags  rootFlags
		cfg    *config.Config
		cfgErr error
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	rootFlags struct {
		verbose    bool
		cfgFile    string
		accessible bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: newLogger(deps.Stderr, false),
	}
}

// loadConfig loads configuration and applies it to flags the user left unset.
// A broken config file is reported as a warning and defaults are used, so
// that the calculator keeps working; config show surfaces the error instead.
func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: a.flags.cfgFile})
	if err != nil {
		a.cfgErr = err
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("verbose") {
		a.flags.verbose = a.flags.verbose || cfg.UI.Verbose
	}
	if !cmd.Flags().Changed("accessible") {
		a.flags.accessible = a.flags.accessible || cfg.UI.Accessible
	}
	a.logger = newLogger(a.stderr, a.flags.verbose)
	return nil
}

// calculator builds the boundary guard from the loaded limits.
func (a *App) calculator(m *metrics.Metrics) *boundary.Calculator {
	return boundary.New(boundary.Options{
		MaxExponent:         a.cfg.Limits.MaxExponent,
		FastPathMaxBase:     a.cfg.Limits.FastPathMaxBase,
		FastPathMaxExponent: a.cfg.Limits.FastPathMaxExponent,
		Logger:              a.logger,
		Metrics:             m,
	})
}

func (a *App) promptSession() *prompt.Session {
	return prompt.NewSession(a.stdin, a.stdout, prompt.Options{
		Forms:      isTerminal(a.stdin) && isTerminal(a.stdout),
		Accessible: a.flags.accessible,
	})
}

// report returns err unchanged. With --verbose it first prints the full
// error chain and any markdown guidance attached to err.
func (a *App) report(err error) error {
	if err == nil || !a.flags.verbose {
		return err
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return err
	}
	fmt.Fprintln(a.stderr, formatErrorForDisplay(ae, true))

	known := issue.Get(ae.Issue)
	if known == nil {
		return err
	}
	rendered, renderErr := known.Render(glamourStyle(a.cfg.UI.ColorScheme))
	if renderErr != nil {
		a.logger.Debug("failed to render issue", "id", ae.Issue, "error", renderErr)
		return err
	}
	fmt.Fprint(a.stderr, rendered)
	return err
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "powcalc",
		Level:  level,
	})
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && prompt.IsTerminal(f)
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their own format; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// withContext returns ctx, or Background when cobra was executed without one.
func withContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
