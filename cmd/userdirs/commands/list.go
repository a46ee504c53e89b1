package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
)

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table",
		"output format: table, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resolved user directories",
	Long: `List every directory kind with its resolved path.

In table output, kinds that cannot be resolved in the current
environment are shown as unavailable; run with -vv to see why. The
json, yaml, and toml formats include only resolvable kinds.

Examples:
  # Human-readable table
  userdirs list

  # Machine-readable output
  userdirs list --format json

  # Windows conventions (needs APPDATA etc. in the environment)
  userdirs list --platform windows`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	r, err := newResolver()
	if err != nil {
		return err
	}
	return runListWithWriter(os.Stdout, r)
}

// runListWithWriter allows injecting a writer and resolver for testing.
func runListWithWriter(w io.Writer, r *userdirs.Resolver) error {
	switch listFormat {
	case "table":
		return outputTable(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(resolveAll(r)), "encoding JSON output")
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(resolveAll(r)); err != nil {
			return errors.Wrap(err, "encoding YAML output")
		}
		return errors.Wrap(enc.Close(), "encoding YAML output")
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(resolveAll(r)), "encoding TOML output")
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", listFormat),
			"valid formats: table, json, yaml, toml")
	}
}

// resolveAll returns the resolvable kinds keyed by name. Failures are
// logged at debug level and omitted.
func resolveAll(r *userdirs.Resolver) map[string]string {
	dirs := make(map[string]string, len(userdirs.Kinds()))
	for _, k := range userdirs.Kinds() {
		path, err := r.Resolve(k)
		if err != nil {
			slog.Debug("directory not resolvable", "kind", k.String(), "error", err)
			continue
		}
		dirs[k.String()] = path
	}
	return dirs
}

// outputTable writes an aligned kind/path table, dimming unresolvable
// kinds.
func outputTable(w io.Writer, r *userdirs.Resolver) error {
	dim := color.New(color.Faint)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range userdirs.Kinds() {
		path, err := r.Resolve(k)
		if err != nil {
			slog.Debug("directory not resolvable", "kind", k.String(), "error", err)
			fmt.Fprintf(tw, "%s\t%s\n", k, dim.Sprint("(unavailable)"))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, path)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}
