package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/pkg/config"
	"github.com/kacperjurak/godielectric/pkg/library"
)

// run is everything a subcommand needs after flags and config are merged
type run struct {
	cfg    *config.Config
	models []godielectric.Model
	freqs  []float64
}

func addModelFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.String("models", def.ModelsFile, "YAML parameter library (built-in presets when empty)")
	f.StringSlice("model", nil, "only use the named models (repeatable)")
	f.Bool("quiet", def.Quiet, "only log warnings and errors")
}

func addSweepFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.Float64("from", def.FromExp, "sweep start as a power of ten (Hz)")
	f.Float64("to", def.ToExp, "sweep end as a power of ten (Hz)")
	f.Int("points", def.Points, "number of logarithmically spaced sweep points")
	f.Uint("threads", def.Threads, "number of workers evaluating models")
}

// loadRun merges flags, config file and environment, then resolves the
// model list and the sweep.
func loadRun(cmd *cobra.Command) (*run, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Quiet && logrus.GetLevel() > logrus.WarnLevel {
		logrus.SetLevel(logrus.WarnLevel)
	}

	ms := library.Presets()
	if cfg.ModelsFile != "" {
		ms, err = library.Load(cfg.ModelsFile)
		if err != nil {
			return nil, err
		}
	}
	names, _ := cmd.Flags().GetStringSlice("model")
	ms, err = library.Select(ms, names)
	if err != nil {
		return nil, err
	}

	freqs := godielectric.LogSweep(cfg.FromExp, cfg.ToExp, cfg.Points)
	logrus.WithFields(logrus.Fields{
		"models": len(ms),
		"points": len(freqs),
		"from":   freqs[0],
		"to":     freqs[len(freqs)-1],
	}).Debug("run configured")

	return &run{cfg: cfg, models: ms, freqs: freqs}, nil
}

func weighting(cfg *config.Config) godielectric.Weighting {
	if cfg.Unity {
		return godielectric.UNITY
	}
	return godielectric.MODULUS
}
