package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/cline"
)

// newEqCmd creates the eq command, which builds a cline from its equation
// coefficients.
func newEqCmd(opts *options) *cobra.Command {
	var (
		c, d  float64
		alpha string
	)
	cmd := &cobra.Command{
		Use:   "eq",
		Short: "Build a cline from the coefficients of c·|z|² + α·z + ᾱ·z̄ + d = 0",
		Example: `  cline eq --c 1 --alpha -3-4j --d 16
  cline eq --alpha 2+1j --d -4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parsePoint(alpha)
			if err != nil {
				return fmt.Errorf("alpha: %w", err)
			}
			return opts.print(cmd, cline.New(c, a, d))
		},
	}
	cmd.Flags().Float64Var(&c, "c", 0, "real coefficient of |z|²")
	cmd.Flags().StringVar(&alpha, "alpha", "0", "complex coefficient of z")
	cmd.Flags().Float64Var(&d, "d", 0, "real constant term")
	return cmd
}

// newThreeCmd creates the three command, which builds the cline through
// three points.
func newThreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "three <z0> <z1> <z2>",
		Short: "Build the cline through three points",
		Example: `  cline three 0 1 1j
  cline three -- 1,2 2,4 -1,-2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := parsePoints(args)
			if err != nil {
				return err
			}
			return opts.print(cmd, cline.FromThreePoints(zs[0], zs[1], zs[2]))
		},
	}
}

// newLineCmd creates the line command, which builds the line through two
// points.
func newLineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "line <z0> <z1>",
		Short:   "Build the line through two distinct points",
		Example: `  cline line 0 1+1j`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := parsePoints(args)
			if err != nil {
				return err
			}
			cl, err := cline.FromLine(zs[0], zs[1])
			if err != nil {
				return fmt.Errorf("line: %w", err)
			}
			return opts.print(cmd, cl)
		},
	}
}

// newCircleCmd creates the circle command, which builds a circle from its
// center and radius.
func newCircleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "circle <center> <radius>",
		Short:   "Build the circle with a center and radius",
		Example: `  cline circle 1+2j 2`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			radius, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[1], err)
			}
			cl, err := cline.FromCircle(center, radius)
			if err != nil {
				return fmt.Errorf("circle: %w", err)
			}
			return opts.print(cmd, cl)
		},
	}
}

// print writes the cline's description to the command's output.
func (o *options) print(cmd *cobra.Command, cl cline.Cline) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("Constructed cline", "kind", cl.Kind(), "c", cl.C(), "alpha", cl.Alpha(), "d", cl.D())
	if cl.Kind() == cline.InvalidKind {
		logger.Warn("Equation has no real locus", "discriminant", cl.Discriminant())
	}

	text := cl.Format(o.precision)
	if o.summary {
		text = cl.Summary(o.precision)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
