package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/internal/processing"
	"github.com/kacperjurak/godielectric/pkg/config"
	"github.com/kacperjurak/godielectric/pkg/figure"
)

func NewPlotCommand() *cobra.Command {
	def := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot conductivity, permittivity and loss ratio of the models",
		Long: `Plot conductivity, scaled relative permittivity and 2π·ε₀·ε_r/σ of every
model on stacked log-frequency axes, overlaid with the Wagner et al. data.
The image format follows the --out extension (svg, pdf, eps, png, jpg, tif).`,
		Args: cobra.NoArgs,
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

			var lit *figure.Literature
			if !r.cfg.NoWagner {
				freqs, sigma, epsR := godielectric.Wagner()
				lit = &figure.Literature{Name: "Wagner et al.", Freqs: freqs, Sigma: sigma, EpsR: epsR}
			}

			title, _ := cmd.Flags().GetString("title")
			opts := figure.Options{
				Title:    title,
				Width:    vg.Length(r.cfg.ImgSize) * vg.Inch,
				DPI:      int(r.cfg.ImgDPI),
				EpsScale: r.cfg.EpsScale,
			}
			panels, err := figure.Panels(spectra, lit, opts)
			if err != nil {
				return err
			}
			if err := figure.Save(r.cfg.ImgPath, panels, opts); err != nil {
				return err
			}

			logrus.WithField("path", r.cfg.ImgPath).Info("figure saved")
			return nil
		},
	}

	addModelFlags(cmd)
	addSweepFlags(cmd)
	f := cmd.Flags()
	f.StringP("out", "o", def.ImgPath, "output image path")
	f.Uint("dpi", def.ImgDPI, "image DPI for raster formats")
	f.Float64("size", def.ImgSize, "figure width (inches)")
	f.Float64("eps-scale", def.EpsScale, "factor applied to relative permittivity in the middle panel")
	f.Bool("no-wagner", def.NoWagner, "do not overlay the Wagner et al. data")
	f.String("title", "", "figure title")

	return cmd
}
