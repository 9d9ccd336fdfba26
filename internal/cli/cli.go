// Package cli implements the cline command-line interface.
//
// The commands construct a cline from equation coefficients, three points,
// two points, or a center and radius, and print its description. The CLI is
// built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
//   - eq: build a cline from the coefficients c, α and d
//   - three: build the cline through three points
//   - line: build the line through two points
//   - circle: build the circle with a center and radius
//
// Points are complex literals such as 1+2i, 1+2j or (1+2j), or real pairs
// such as 1,2. Negative points must follow "--" so they are not taken for
// flags.
//
// # Configuration
//
// Defaults for --precision and --summary can be read from a TOML file given
// with --config. Flags given on the command line take precedence.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"honnef.co/go/cline"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the cline CLI with the process arguments and returns an
// error if the command fails.
func Execute(ctx context.Context, stdout, stderr io.Writer) error {
	return NewRootCommand(stdout, stderr).ExecuteContext(ctx)
}

// NewRootCommand creates the root cobra command with all subcommands
// registered. Results are written to stdout and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "cline",
		Short:         "Classify circles, lines and points in the complex plane",
		Long:          `cline builds the generalized circle c·|z|² + α·z + ᾱ·z̄ + d = 0 from coefficients or points and describes what it is: a circle, a line, a single point, or nothing at all.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, logger))

			return opts.load(cmd, logger)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("cline %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML file with default settings")
	pf.IntVarP(&opts.precision, "precision", "p", cline.DefaultPrecision, "number of decimal digits to print")
	pf.BoolVar(&opts.summary, "summary", false, "print a one-line summary instead of the full description")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEqCmd(opts))
	root.AddCommand(newThreeCmd(opts))
	root.AddCommand(newLineCmd(opts))
	root.AddCommand(newCircleCmd(opts))

	return root
}
