package config

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds all configuration settings for a plotting or evaluation run
type Config struct {
	ModelsFile string  `mapstructure:"models"`
	FromExp    float64 `mapstructure:"from"`
	ToExp      float64 `mapstructure:"to"`
	Points     int     `mapstructure:"points"`
	ImgPath    string  `mapstructure:"out"`
	ImgDPI     uint    `mapstructure:"dpi"`
	ImgSize    float64 `mapstructure:"size"` // figure width in inches
	EpsScale   float64 `mapstructure:"eps-scale"`
	NoWagner   bool    `mapstructure:"no-wagner"`
	Unity      bool    `mapstructure:"unity"`
	Threads    uint    `mapstructure:"threads"`
	Quiet      bool    `mapstructure:"quiet"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		FromExp:  1,
		ToExp:    4,
		Points:   50,
		ImgPath:  "dielectric.svg",
		ImgDPI:   96,
		ImgSize:  6,
		EpsScale: 1e-6,
		Threads:  4,
	}
}

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GODIELECTRIC"

// Load layers defaults, an optional config file and GODIELECTRIC_* environment
// variables, in that order. Values already bound to v (e.g. command line
// flags) win over all of them.
func Load(v *viper.Viper, path string) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("models", def.ModelsFile)
	v.SetDefault("from", def.FromExp)
	v.SetDefault("to", def.ToExp)
	v.SetDefault("points", def.Points)
	v.SetDefault("out", def.ImgPath)
	v.SetDefault("dpi", def.ImgDPI)
	v.SetDefault("size", def.ImgSize)
	v.SetDefault("eps-scale", def.EpsScale)
	v.SetDefault("no-wagner", def.NoWagner)
	v.SetDefault("unity", def.Unity)
	v.SetDefault("threads", def.Threads)
	v.SetDefault("quiet", def.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the sweep and figure settings
func (c *Config) Validate() error {
	if c.Points < 1 {
		return pkgerrors.Errorf("points must be at least 1, got %d", c.Points)
	}
	if c.ToExp < c.FromExp {
		return pkgerrors.Errorf("sweep end 10^%g is below sweep start 10^%g", c.ToExp, c.FromExp)
	}
	if c.ImgSize <= 0 {
		return pkgerrors.Errorf("figure size must be positive, got %g", c.ImgSize)
	}
	if c.EpsScale <= 0 {
		return pkgerrors.Errorf("permittivity scale must be positive, got %g", c.EpsScale)
	}
	return nil
}
