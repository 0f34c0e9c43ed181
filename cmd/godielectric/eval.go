package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kacperjurak/godielectric/internal/processing"
	"github.com/kacperjurak/godielectric/pkg/models"
)

func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print relative permittivity, conductivity and loss ratio over the sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadRun(cmd)
			if err != nil {
				return err
			}

			p := processing.NewSpectrumProcessor(r.cfg)
			spectra, err := p.ProcessAll(cmd.Context(), r.models, r.freqs, int(r.cfg.Threads))
			if err != nil {
				return err
			}
			for _, s := range spectra {
				writeSpectrum(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	addModelFlags(cmd)
	addSweepFlags(cmd)

	return cmd
}

func writeSpectrum(w io.Writer, s models.Spectrum) {
	fmt.Fprintf(w, "# %s (%s)\n", s.Model, s.Kind)
	fmt.Fprintf(w, "# %14s %14s %14s %14s\n", "f[Hz]", "eps_r", "sigma[S/m]", "loss_ratio[s]")
	for i, f := range s.Freqs {
		fmt.Fprintf(w, "  %14.6e %14.6e %14.6e %14.6e\n", f, s.EpsR[i], s.Sigma[i], s.LossRatio[i])
	}
	fmt.Fprintln(w)
}
