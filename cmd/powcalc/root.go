// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the powcalc command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "powcalc",
		Short: "Raise positive integers to positive integer powers",
		Long: TitleStyle.Render("powcalc") + SubtitleStyle.Render(" - exact integer powers") + `

Run without arguments to be asked for your name, a base and an exponent.
Results that fit in 64 bits are computed with machine integers; larger
ones fall back to the arbitrary-precision engine.

` + SubtitleStyle.Render("Examples:") + `
  powcalc                   Interactive calculator
  powcalc pow 2 200         Print 2^200 exactly
  powcalc serve --dir out   Serve the WebAssembly front end
  powcalc config show       Show current configuration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(withContext(cmd.Context()), app)
		},
	}

	root.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	root.PersistentFlags().StringVar(&app.flags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/powcalc/config.cue)")
	root.PersistentFlags().BoolVar(&app.flags.accessible, "accessible", false, "use plain line prompts instead of terminal forms")

	root.AddCommand(
		newInteractiveCommand(app),
		newPowCommand(app),
		newServeCommand(app),
		newConfigCommand(app),
	)

	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs powcalc with the process arguments and exits with the
// command's exit code. It is called by main.main.
func Execute() {
	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}
