package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/pkg/library"
)

func NewWagnerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wagner",
		Short: "Print the embedded Wagner et al. measurement table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %12s %10s %14s\n", "f[Hz]", "sigma[S/m]", "eps_r")
			for _, r := range godielectric.WagnerRows() {
				fmt.Fprintf(w, "  %12.4f %10.5f %14.1f\n", r[0], r[1], r[2])
			}
			return nil
		},
	}
}

func NewModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Print the built-in parameter sets as a YAML library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return library.Encode(cmd.OutOrStdout(), library.Presets())
		},
	}
}
