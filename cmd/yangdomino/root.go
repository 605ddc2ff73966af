// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"yangdomino/internal/config"
	"yangdomino/internal/extract"
	"yangdomino/internal/issue"
	"yangdomino/internal/scan"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// Scan flags. Config file values apply only when the flag was not set.
	libraryDirs []string
	moduleDirs  []string
	extraDir    string
	removeNames []string
	useGrep     bool
	debug       bool

	// cfg is the loaded configuration, nil when loading failed.
	cfg *config.Config

	// rootCmd represents the base command; the scan itself runs here.
	rootCmd = &cobra.Command{
		Use:   "yangdomino [flags] <module files to scan>",
		Short: "Analyze YANG module dependencies and removal fallout",
		Long: TitleStyle.Render("yangdomino") + SubtitleStyle.Render(" - YANG module dependency analyzer") + `

yangdomino extracts import/include dependencies from YANG module files,
reports modules whose dependencies cannot be resolved, computes the
transitive fallout of removing modules (the domino effect, with the
originally removed modules as root causes), and can fetch missing
modules from library directory trees.

Dependencies are extracted with the yanger compiler by default; with
--use-grep a plain text scan is used instead, which needs no compiler
but is not syntax aware.

` + SubtitleStyle.Render("Examples:") + `
  yangdomino *.yang                       Report missing dependencies
  yangdomino -r ietf-interfaces *.yang    Show what removing a module topples
  yangdomino -l ~/yang/library *.yang     Fetch missing modules from a library
  yangdomino --use-grep *.yang            Text scan instead of the compiler`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runScan,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/yangdomino/config.cue)")

	// Scan flags
	rootCmd.Flags().StringArrayVarP(&libraryDirs, "library", "l", nil, "library directory tree to fetch missing modules from (repeatable)")
	rootCmd.Flags().StringArrayVarP(&moduleDirs, "modules", "m", []string{"."}, "module search directory (repeatable)")
	rootCmd.Flags().StringVarP(&extraDir, "extra", "e", ".", "directory receiving fetched modules")
	rootCmd.Flags().StringArrayVarP(&removeNames, "remove", "r", nil, "module to treat as removed (repeatable)")
	rootCmd.Flags().BoolVar(&useGrep, "use-grep", false, "extract dependencies with a text scan instead of yanger")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// runScan is the root RunE: one orchestrated scan over the positional args.
func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		rendered, _ := issue.Get(issue.NoInputFilesId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return &ExitError{Code: 2, Err: errors.New("no module files to scan")}
	}

	effective := cfg
	if effective == nil {
		effective = config.DefaultConfig()
	}
	applyConfig(cmd, effective)

	logger := newLogger()

	extractor, err := newExtractor(effective, logger)
	if err != nil {
		return err
	}

	runner := &scan.Runner{
		Extractor:   extractor,
		ModuleDirs:  moduleDirs,
		LibraryDirs: libraryDirs,
		ExtraDir:    extraDir,
		Remove:      removeNames,
		Debug:       debug,
		Logger:      logger,
		Out:         cmd.OutOrStdout(),
	}
	if err := runner.Run(cmd.Context(), args); err != nil {
		if useGrep {
			rendered, _ := issue.Get(issue.GrepScanFailedId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
		}
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// applyConfig fills in scan settings from the config file for every flag
// the user did not set on the command line. Flags always win.
func applyConfig(cmd *cobra.Command, effective *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("modules") && len(effective.ModuleDirs) > 0 {
		moduleDirs = effective.ModuleDirs
	}
	if !flags.Changed("library") && len(effective.LibraryDirs) > 0 {
		libraryDirs = effective.LibraryDirs
	}
	if !flags.Changed("extra") && effective.ExtraDir != "" {
		extraDir = effective.ExtraDir
	}
	if !flags.Changed("use-grep") {
		useGrep = effective.Scanner.UseGrep
	}
}

// newExtractor builds the configured extraction strategy. The strict
// strategy requires the yanger binary up front so the failure surfaces
// before any scanning starts.
func newExtractor(effective *config.Config, logger *slog.Logger) (extract.Extractor, error) {
	if useGrep {
		return &extract.GrepExtractor{Binary: effective.Scanner.GrepPath, Logger: logger}, nil
	}

	bin := effective.Scanner.YangerPath
	if bin == "" {
		bin = extract.DefaultYangerBinary
	}
	if _, err := exec.LookPath(bin); err != nil {
		rendered, _ := issue.Get(issue.YangerNotFoundId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("yanger binary %q not found: %w", bin, err)}
	}
	return &extract.YangerExtractor{Binary: effective.Scanner.YangerPath, Logger: logger}, nil
}

// newLogger builds the slog logger handed to internal packages, with the
// level driven by --debug and --verbose.
func newLogger() *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "yangdomino",
		Level:  level,
	})
	return slog.New(handler)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
