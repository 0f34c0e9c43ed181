package processing

import (
	"context"
	"math"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/pkg/config"
	"github.com/kacperjurak/godielectric/pkg/models"
	"github.com/kacperjurak/godielectric/pkg/worker"
)

// SpectrumProcessor evaluates dispersion models over a frequency sweep
type SpectrumProcessor struct {
	quiet bool
}

// NewSpectrumProcessor creates a new spectrum processor
func NewSpectrumProcessor(cfg *config.Config) *SpectrumProcessor {
	return &SpectrumProcessor{quiet: cfg != nil && cfg.Quiet}
}

// Process evaluates m over freqs (Hz)
func (p *SpectrumProcessor) Process(m godielectric.Model, freqs []float64) (models.Spectrum, error) {
	if err := godielectric.ValidateSweep(freqs); err != nil {
		return models.Spectrum{}, pkgerrors.Wrapf(err, "model %q", m.Name)
	}
	return p.process(m, freqs, godielectric.AngularFrequencies(freqs))
}

func (p *SpectrumProcessor) process(m godielectric.Model, freqs, omega []float64) (models.Spectrum, error) {
	if len(freqs) != len(omega) {
		return models.Spectrum{}, pkgerrors.Errorf("frequency and angular frequency length mismatch: %d vs %d", len(freqs), len(omega))
	}

	epsc, err := evaluate(m, omega)
	if err != nil {
		return models.Spectrum{}, err
	}
	epsR, sigma := godielectric.DielectricProperties(omega, epsc)

	spectrum := models.Spectrum{
		Model:     m.Name,
		Kind:      m.Kind.String(),
		Freqs:     append([]float64(nil), freqs...),
		EpsR:      epsR,
		Sigma:     sigma,
		LossRatio: godielectric.LossRatio(epsR, sigma),
	}

	if n := countNonFinite(epsR) + countNonFinite(sigma); n > 0 {
		logrus.WithField("model", m.Name).Warnf("%d non-finite values in spectrum", n)
	}
	if !p.quiet {
		logrus.WithFields(logrus.Fields{
			"model":  m.Name,
			"kind":   spectrum.Kind,
			"points": len(freqs),
		}).Info("spectrum evaluated")
	}
	return spectrum, nil
}

// evaluate rejects kinds Evaluate cannot dispatch; any other panic from the
// formulas propagates.
func evaluate(m godielectric.Model, omega []float64) ([]complex128, error) {
	if !m.Kind.Valid() {
		return nil, pkgerrors.Wrapf(godielectric.ErrUnknownKind, "model %q: %s", m.Name, m.Kind)
	}
	return godielectric.Evaluate(m, omega), nil
}

// ProcessAll evaluates all models over the same sweep on a worker pool.
// Spectra come back in the order of ms.
func (p *SpectrumProcessor) ProcessAll(ctx context.Context, ms []godielectric.Model, freqs []float64, workers int) ([]models.Spectrum, error) {
	if err := godielectric.ValidateSweep(freqs); err != nil {
		return nil, err
	}

	pool := worker.New(worker.Options{
		Workers:   workers,
		Processor: p.ProcessorFunc(),
	})
	defer pool.Shutdown()

	items := make([]models.WorkItem, len(ms))
	now := time.Now()
	for i, m := range ms {
		items[i] = models.WorkItem{ID: i, Model: m, Freqs: freqs, StartTime: now}
	}

	results, err := pool.EvaluateAll(ctx, items)
	if err != nil {
		return nil, err
	}

	spectra := make([]models.Spectrum, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		spectra[i] = r.Spectrum
	}
	return spectra, nil
}

// ProcessorFunc adapts the processor to the worker pool
func (p *SpectrumProcessor) ProcessorFunc() worker.ProcessorFunc {
	return func(m godielectric.Model, freqs, omega []float64) (models.Spectrum, error) {
		return p.process(m, freqs, omega)
	}
}

func countNonFinite(v []float64) int {
	n := 0
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			n++
		}
	}
	return n
}
