// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "powcalc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides (POWCALC_LIMITS_MAX_EXPONENT).
	EnvPrefix = "POWCALC"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the powcalc configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS and $XDG_CONFIG_HOME
// (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// ConfigFilePath returns the path of config.cue inside ConfigDir.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions builds a fresh Viper instance, applies defaults, merges the
// first config file found and decodes the result. The returned path is empty
// when no file was read.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Run 'powcalc config show' to see the effective configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// resolvePath picks the config file to read. An explicit path must exist;
// the directory and working-directory lookups are optional.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'powcalc config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}

	name := ConfigFileName + "." + ConfigFileExt
	if p := filepath.Join(dir, name); fileExists(p) {
		return p, nil
	}
	if fileExists(name) {
		return name, nil
	}
	return "", nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("ui.color_scheme", d.UI.ColorScheme.String())
	v.SetDefault("ui.verbose", d.UI.Verbose)
	v.SetDefault("ui.accessible", d.UI.Accessible)
	v.SetDefault("limits.max_exponent", d.Limits.MaxExponent)
	v.SetDefault("limits.fast_path_max_base", d.Limits.FastPathMaxBase)
	v.SetDefault("limits.fast_path_max_exponent", d.Limits.FastPathMaxExponent)
	v.SetDefault("serve.addr", d.Serve.Addr.String())
	v.SetDefault("serve.dir", d.Serve.Dir)
	v.SetDefault("serve.metrics", d.Serve.Metrics)
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into v.
// Fields are optional, so validation runs with Concrete(false).
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()
	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	unified := schemaValue.LookupPath(cue.ParsePath("#Config")).Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to ConfigFilePath
// unless a file already exists there. It reports the path and whether a file
// was written.
func CreateDefaultConfig() (string, bool, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return "", false, err
	}
	if fileExists(path) {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateCUE renders cfg in the config file format.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// powcalc configuration\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\taccessible:   %v\n", cfg.UI.Accessible)
	sb.WriteString("}\n")

	sb.WriteString("\nlimits: {\n")
	fmt.Fprintf(&sb, "\tmax_exponent:           %d\n", cfg.Limits.MaxExponent)
	fmt.Fprintf(&sb, "\tfast_path_max_base:     %d\n", cfg.Limits.FastPathMaxBase)
	fmt.Fprintf(&sb, "\tfast_path_max_exponent: %d\n", cfg.Limits.FastPathMaxExponent)
	sb.WriteString("}\n")

	sb.WriteString("\nserve: {\n")
	fmt.Fprintf(&sb, "\taddr:    %q\n", cfg.Serve.Addr)
	if cfg.Serve.Dir != "" {
		fmt.Fprintf(&sb, "\tdir:     %q\n", cfg.Serve.Dir)
	}
	fmt.Fprintf(&sb, "\tmetrics: %v\n", cfg.Serve.Metrics)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML renders cfg as TOML.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(out), nil
}
