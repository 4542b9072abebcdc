package cli

import (
	"context"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Luxem4ik23/debgraph/pkg/buildinfo"
	"github.com/Luxem4ik23/debgraph/pkg/depgraph"
)

// Execute runs the debgraph CLI and returns an error if the command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &options{}

	// --version is taken by the target package version, so build
	// information goes into the help text instead.
	long := `debgraph builds the transitive dependency graph of a Debian/Ubuntu package from an APT package index, reports statistics about it, and optionally renders it as an ASCII tree.` +
		"\n\n" + buildinfo.String()

	root := &cobra.Command{
		Use:           "debgraph",
		Short:         "debgraph resolves APT package dependency graphs",
		Long:          long,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVarP(&opts.pkg, "package", "p", "", "name of the package to resolve")
	root.Flags().StringVarP(&opts.repo, "repo", "r", "", "repository: local Packages file or mirror URL")
	root.Flags().StringVarP(&opts.mode, "mode", "m", "", "operation mode: local, remote or mixed")
	root.Flags().StringVar(&opts.version, "version", "", "target package version (e.g. 1.2 or 1.2.3)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output image file (.png, .jpg or .svg)")
	root.Flags().StringVar(&opts.ascii, "ascii", "no", "print an ASCII dependency tree: yes or no")
	root.Flags().StringVar(&opts.maxDepth, "max-depth", strconv.Itoa(depgraph.DefaultMaxDepth), "maximum resolution depth")
	root.Flags().StringVar(&opts.filter, "filter", "", "exclude packages whose name contains this substring")
	root.Flags().StringVarP(&opts.config, "config", "c", "", "path to a TOML configuration file")

	for _, name := range []string{"package", "repo", "mode", "version", "output"} {
		if err := root.MarkFlagRequired(name); err != nil {
			return err
		}
	}

	return root.ExecuteContext(ctx)
}
