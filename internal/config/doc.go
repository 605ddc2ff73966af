// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/yangdomino/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/yangdomino/config.cue on macOS, %APPDATA%\yangdomino\config.cue
// on Windows). The package provides type-safe access to the module search directories,
// library trees, fetch destination, and scanner strategy settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
