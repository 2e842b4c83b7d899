// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the powcalc command tree.
//
// Running powcalc without a subcommand starts the interactive calculator.
// The pow subcommand prints an exact result for scripting, serve hosts the
// browser front end, and config manages the configuration file.
package cmd
