package main

import (
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   = "info"
	configPath = ""
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to parse log level")
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Kitchen,
	})
	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "godielectric",
		Short: "Evaluate and plot Cole-Cole and Havriliak-Negami dielectric dispersion models",
		Long: `godielectric evaluates four-term Cole-Cole and Havriliak-Negami dispersion
models over a frequency sweep, converts the complex permittivity to relative
permittivity and conductivity, and plots the result against the Wagner et al.
measurements.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path (yaml, json or toml)")

	cmd.AddCommand(
		NewPlotCommand(),
		NewEvalCommand(),
		NewCompareCommand(),
		NewWagnerCommand(),
		NewModelsCommand(),
	)

	return cmd
}
