// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"yangdomino/internal/config"
	"yangdomino/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage yangdomino configuration",
	Long: `Manage yangdomino configuration.

Configuration is stored in:
  - Linux: ~/.config/yangdomino/config.cue
  - macOS: ~/Library/Application Support/yangdomino/config.cue
  - Windows: %APPDATA%\yangdomino\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			fmt.Print(config.GenerateCUE(loaded))
			return nil
		},
	})
}

func showConfig(ctx context.Context) error {
	loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	// The provider does not cache resolved paths; derive the config file
	// path from the standard config directory.
	if cfgDir, dirErr := config.ConfigDir(); dirErr == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if fileExistsCheck(cfgPath) {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	printDirList(keyStyle.Render("module_dirs"), loaded.ModuleDirs)
	printDirList(keyStyle.Render("library_dirs"), loaded.LibraryDirs)
	fmt.Printf("%s: %s\n", keyStyle.Render("extra_dir"), valueStyle.Render(loaded.ExtraDir))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("scanner"))
	fmt.Printf("  yanger_path: %s\n", renderBinaryPath(loaded.Scanner.YangerPath))
	fmt.Printf("  grep_path: %s\n", renderBinaryPath(loaded.Scanner.GrepPath))
	fmt.Printf("  use_grep: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.Scanner.UseGrep)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func printDirList(key string, dirs []string) {
	fmt.Printf("%s:\n", key)
	if len(dirs) == 0 {
		fmt.Printf("  %s\n", SubtitleStyle.Render("(none configured)"))
		return
	}
	for _, dir := range dirs {
		fmt.Printf("  - %s\n", SuccessStyle.Render(dir))
	}
}

// renderBinaryPath renders an explicit binary path, or the supplementary
// note that the tool is looked up on PATH.
func renderBinaryPath(path string) string {
	if path == "" {
		return VerboseStyle.Render("(from PATH)")
	}
	return SuccessStyle.Render(path)
}

func setConfigValue(ctx context.Context, key, value string) error {
	loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	if err := applyConfigValue(loaded, key, value); err != nil {
		return err
	}

	if err := config.Save(loaded); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s Set %s = %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(key), value)
	return nil
}

// applyConfigValue updates one scalar configuration key. Directory lists
// are edited in the config file directly.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "extra_dir":
		cfg.ExtraDir = value

	case "scanner.yanger_path":
		cfg.Scanner.YangerPath = value

	case "scanner.grep_path":
		cfg.Scanner.GrepPath = value

	case "scanner.use_grep":
		cfg.Scanner.UseGrep = value == "true" || value == "1"

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config key: %s (expected one of extra_dir, scanner.yanger_path, scanner.grep_path, scanner.use_grep, ui.verbose)", key)
	}
	return nil
}

func initConfig() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s/config.cue\n", SuccessStyle.Render("✓"), cfgDir)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s/config.cue\n", cfgDir)
	return nil
}

// fileExistsCheck reports whether path exists and is a regular file.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
