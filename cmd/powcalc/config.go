// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/powcalc/powcalc/internal/config"
	"github.com/powcalc/powcalc/internal/issue"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatCUE  = "cue"
	formatTOML = "toml"
)

// newConfigCommand creates the `powcalc config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage powcalc configuration",
		Long: `Manage powcalc configuration.

Configuration is stored in:
  - Linux: ~/.config/powcalc/config.cue
  - macOS: ~/Library/Application Support/powcalc/config.cue
  - Windows: %APPDATA%\powcalc\config.cue

Any value can be overridden with a POWCALC_* environment variable, for
example POWCALC_LIMITS_MAX_EXPONENT=0 or POWCALC_SERVE_ADDR=:9090.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.cfgErr != nil {
				return app.report(app.cfgErr)
			}
			return showConfig(app.stdout, app.cfg, app.flags.cfgFile, format)
		},
	}
	showCmd.Flags().StringVar(&format, "format", formatText, "output format: text, cue or toml")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig()
			if err != nil {
				return issue.WrapWithOperation(err, "create configuration")
			}
			if !created {
				fmt.Fprintf(app.stdout, "Configuration already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "Config directory: %s\n", dir)
			fmt.Fprintf(app.stdout, "Config file: %s\n", path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, explicitPath, format string) error {
	switch format {
	case formatCUE:
		_, err := io.WriteString(w, config.GenerateCUE(cfg))
		return err
	case formatTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case formatText:
	default:
		return fmt.Errorf("unknown format %q (valid: text, cue, toml)", format)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	line := func(key, value string) {
		fmt.Fprintf(w, "  %s: %s\n", keyStyle.Render(key), valueStyle.Render(value))
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source := SubtitleStyle.Render("(using defaults)")
	if explicitPath != "" {
		source = explicitPath
	} else if path, err := config.ConfigFilePath(); err == nil && fileExists(path) {
		source = path
	} else if local := config.ConfigFileName + "." + config.ConfigFileExt; fileExists(local) {
		source = local
	}
	fmt.Fprintf(w, "%s: %s\n\n", keyStyle.Render("Config file"), source)

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	line("color_scheme", cfg.UI.ColorScheme.String())
	line("verbose", strconv.FormatBool(cfg.UI.Verbose))
	line("accessible", strconv.FormatBool(cfg.UI.Accessible))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("limits"))
	line("max_exponent", strconv.FormatInt(cfg.Limits.MaxExponent, 10))
	line("fast_path_max_base", strconv.FormatInt(cfg.Limits.FastPathMaxBase, 10))
	line("fast_path_max_exponent", strconv.FormatInt(cfg.Limits.FastPathMaxExponent, 10))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("serve"))
	line("addr", cfg.Serve.Addr.String())
	if cfg.Serve.Dir == "" {
		fmt.Fprintf(w, "  %s: %s\n", keyStyle.Render("dir"), SubtitleStyle.Render("(embedded page only)"))
	} else {
		line("dir", cfg.Serve.Dir)
	}
	line("metrics", strconv.FormatBool(cfg.Serve.Metrics))

	return nil
}
