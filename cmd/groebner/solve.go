package main

import (
	"github.com/jonathanmweiss/go-groebner/internal/config"
	"github.com/spf13/cobra"
)

func (c *cli) solveCmd() *cobra.Command {
	var (
		path    string
		fld     string
		modulus uint64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the reduced basis of a system read from YAML",
		Example: `  groebner solve -f system.yaml
  groebner solve -f system.yaml --order degrevlex --field prime --modulus 65537`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := config.Load(path)
			if err != nil {
				return err
			}

			c.apply(cmd, sys)

			if cmd.Flags().Changed("field") {
				sys.Field = fld
			}

			if cmd.Flags().Changed("modulus") {
				sys.Modulus = modulus
			}

			return c.solve(cmd.OutOrStdout(), sys)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "path to the system file")
	cmd.Flags().StringVar(&fld, "field", config.FieldRational, "coefficient field: rational or prime")
	cmd.Flags().Uint64Var(&modulus, "modulus", config.DefaultModulus, "prime modulus when --field=prime")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
