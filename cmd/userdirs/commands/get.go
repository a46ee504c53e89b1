package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get [kind]",
	Short: "Print one resolved directory",
	Long: `Print the resolved path for a single directory kind.

With no argument, an interactive picker lets you select the kind.

Examples:
  # Print the config directory
  userdirs get config

  # Use in scripts
  cp report.pdf "$(userdirs get documents)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	r, err := newResolver()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = pickKind(r)
		if err != nil {
			return err
		}
		if name == "" {
			// Picker aborted.
			return nil
		}
	}

	return runGetWithWriter(os.Stdout, r, name)
}

// runGetWithWriter allows injecting a writer and resolver for testing.
func runGetWithWriter(w io.Writer, r *userdirs.Resolver, name string) error {
	kind, err := userdirs.ParseKind(name)
	if err != nil {
		return errors.NewUserError(err, "run 'userdirs list' to see available kinds")
	}

	path, err := r.Resolve(kind)
	if err != nil {
		return errors.NewSystemError(err,
			"set the corresponding environment variable, or HOME on Unix")
	}

	fmt.Fprintln(w, path)
	return nil
}

// pickKind runs the interactive kind picker. It returns "" when the
// user aborts.
func pickKind(r *userdirs.Resolver) (string, error) {
	kinds := userdirs.Kinds()

	idx, err := fuzzyfinder.Find(
		kinds,
		func(i int) string {
			return kinds[i].String()
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			k := kinds[i]
			override := userdirs.OverrideVar(k)
			if override == "" {
				override = "(none)"
			}
			path, err := r.Resolve(k)
			if err != nil {
				path = "(unavailable)"
			}
			return fmt.Sprintf("Kind: %s\nOverride: %s\nPath: %s", k, override, path)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return kinds[idx].String(), nil
}
