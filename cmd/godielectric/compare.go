package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kacperjurak/godielectric"
)

func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the models against the Wagner et al. measurements",
		Long: `Evaluate every model at the Wagner et al. measurement frequencies and print
the mean squared deviation (relative, or absolute with --unity) and the mean
log10 ratio model/measurement for conductivity and relative permittivity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadRun(cmd)
			if err != nil {
				return err
			}

			freqs, sigma, epsR := godielectric.Wagner()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-32s %6s %14s %14s %10s %10s\n", "model", "points", "chisq_sigma", "chisq_eps", "log_sigma", "log_eps")
			for _, m := range r.models {
				d := godielectric.Compare(m, freqs, sigma, epsR, weighting(r.cfg))
				fmt.Fprintf(w, "%-32s %6d %14.6e %14.6e %10.4f %10.4f\n",
					d.Model, d.Points, d.SigmaChiSq, d.EpsChiSq, d.SigmaLogRatio, d.EpsLogRatio)
			}
			return nil
		},
	}

	addModelFlags(cmd)
	cmd.Flags().Bool("unity", false, "use absolute instead of relative residuals")

	return cmd
}
