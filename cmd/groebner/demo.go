package main

import (
	"fmt"

	"github.com/jonathanmweiss/go-groebner/internal/config"
	"github.com/spf13/cobra"
)

func (c *cli) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the reduced bases of the built-in sample systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for i, sys := range config.Samples() {
				c.apply(cmd, sys)

				if i > 0 {
					fmt.Fprintln(out)
				}

				fmt.Fprintf(out, "# %s (%s)\n", sys.Name, sys.Order)

				if err := c.solve(out, sys); err != nil {
					return fmt.Errorf("%s: %w", sys.Name, err)
				}
			}

			return nil
		},
	}
}
