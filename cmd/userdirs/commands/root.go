// Package commands implements the CLI commands for userdirs.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
	"github.com/thoreinstein/userdirs/internal/logging"
)

const version = "0.1.0"

// platformFlag holds the value of the --platform flag.
var platformFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

func init() {
	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "",
		"resolve for another platform family: linux, darwin, windows (default: current)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("userdirs version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "userdirs",
	Short: "Inspect standard user directories",
	Long: `userdirs resolves standard user directories (config, cache, data,
downloads, and friends) for Linux, macOS, and Windows, honoring XDG
Base Directory environment-variable overrides.

Overrides must be absolute paths; relative values are ignored per the
XDG specification and resolution falls back to the platform convention.

Use the --platform flag to resolve with another platform family's
conventions; note that foreign-platform results depend on that
platform's native environment variables being present.`,
	Example: `  # List every resolved directory
  userdirs list

  # Print a single directory
  userdirs get config

  # Machine-readable output
  userdirs list --format json

  # Pick a kind interactively
  userdirs get`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging() error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	format := logging.FormatText
	if logFormat == string(logging.FormatJSON) {
		format = logging.FormatJSON
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: format,
	}))
	return nil
}

// newResolver builds the resolver for the requested platform family.
func newResolver() (*userdirs.Resolver, error) {
	switch platformFlag {
	case "":
		return userdirs.New(), nil
	case "linux":
		return userdirs.New(userdirs.WithPlatform(userdirs.PlatformLinux)), nil
	case "darwin", "macos":
		return userdirs.New(userdirs.WithPlatform(userdirs.PlatformDarwin)), nil
	case "windows":
		return userdirs.New(userdirs.WithPlatform(userdirs.PlatformWindows)), nil
	default:
		return nil, errors.NewUserError(
			errors.Newf("unknown platform %q", platformFlag),
			"valid platforms: linux, darwin, windows")
	}
}

// Execute runs the root command, prints any error, and returns the
// process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return errors.ExitUser
	}
	return errors.ExitSuccess
}

func printError(err error) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("error:")
	fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "hint: %s\n", exitErr.Suggestion)
	}
}
