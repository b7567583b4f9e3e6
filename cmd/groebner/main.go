package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathanmweiss/go-groebner"
	"github.com/jonathanmweiss/go-groebner/internal/config"
	"github.com/jonathanmweiss/go-groebner/mpoly"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the flags shared by every command and the logger built from
// them before a command runs.
type cli struct {
	verbose bool
	order   string
	monic   bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "groebner",
		Short: "Compute reduced Gröbner bases of polynomial systems",
		Long: `groebner runs Buchberger's algorithm on a system of multivariate
polynomials and prints the reduced basis, one polynomial per line.

Coefficients are exact rationals or elements of a prime field GF(p).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if c.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			c.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log every S-pair at debug level")
	root.PersistentFlags().StringVar(&c.order, "order", "", "monomial ordering: lex, deglex or degrevlex")
	root.PersistentFlags().BoolVar(&c.monic, "monic", false, "divide every basis element by its leading coefficient")

	root.AddCommand(c.solveCmd(), c.demoCmd())

	return root
}

// apply overrides the system's settings with the flags that were set.
func (c *cli) apply(cmd *cobra.Command, sys *config.System) {
	if cmd.Flags().Changed("order") {
		sys.Order = c.order
	}

	if cmd.Flags().Changed("monic") {
		sys.Monic = c.monic
	}
}

// solve prints the reduced basis of sys to w.
func (c *cli) solve(w io.Writer, sys *config.System) error {
	if err := sys.Validate(); err != nil {
		return err
	}

	log := c.logger.With(zap.String("system", sys.Name), zap.String("field", sys.Field))

	switch sys.Field {
	case config.FieldPrime:
		r, gens, err := sys.Prime()
		if err != nil {
			return err
		}

		return run(w, log, r, gens, sys.Monic)
	default:
		r, gens, err := sys.Rationals()
		if err != nil {
			return err
		}

		return run(w, log, r, gens, sys.Monic)
	}
}

func run[E any](w io.Writer, log *zap.Logger, r *mpoly.Ring[E], gens []*mpoly.Polynomial[E], monic bool) error {
	e := groebner.NewEngine(r, groebner.WithLogger(log), groebner.WithMonic(monic))

	basis, err := e.GroebnerBasis(gens)
	if err != nil {
		return err
	}

	for _, g := range basis {
		if _, err := fmt.Fprintln(w, g); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
