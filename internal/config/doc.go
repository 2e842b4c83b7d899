// SPDX-License-Identifier: MPL-2.0

// Package config handles powcalc configuration using Viper with CUE as the
// file format.
//
// Configuration is read from the --config path when given, otherwise from
// config.cue in the platform config directory (see ConfigDir), otherwise from
// ./config.cue, and falls back to DefaultConfig. Files are validated against
// the embedded #Config schema before being merged into Viper, and POWCALC_*
// environment variables override file values (e.g. POWCALC_LIMITS_MAX_EXPONENT).
package config
