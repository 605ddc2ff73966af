// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for yangdomino.
//
// This package implements the Cobra command hierarchy: the root command
// runs the dependency scan itself, and the config subcommand tree manages
// the persistent configuration file.
package cmd
