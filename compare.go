package godielectric

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Weighting selects how residuals are scaled in ChiSq.
type Weighting int

const (
	MODULUS Weighting = iota // relative residuals
	UNITY                    // absolute residuals
)

// Deviation summarizes how far a model lies from measured data. It describes
// the difference only; nothing is fitted.
type Deviation struct {
	Model         string
	Points        int
	SigmaChiSq    float64
	EpsChiSq      float64
	SigmaLogRatio float64 // mean log10(model/measured)
	EpsLogRatio   float64 // mean log10(model/measured)
}

// Compare evaluates m at the measured frequencies and compares it with the
// measured conductivity and relative permittivity.
func Compare(m Model, freqs, sigma, epsR []float64, weighting Weighting) Deviation {
	if len(freqs) != len(sigma) || len(freqs) != len(epsR) {
		panic("compare: slice length mismatch")
	}
	modelEps, modelSigma := Properties(m, freqs)
	return Deviation{
		Model:         m.Name,
		Points:        len(freqs),
		SigmaChiSq:    ChiSq(sigma, modelSigma, weighting),
		EpsChiSq:      ChiSq(epsR, modelEps, weighting),
		SigmaLogRatio: meanLogRatio(sigma, modelSigma),
		EpsLogRatio:   meanLogRatio(epsR, modelEps),
	}
}

// ChiSq is the mean squared residual between observed and calculated values.
// With MODULUS weighting each residual is divided by the observed value.
func ChiSq(observed, calculated []float64, weighting Weighting) float64 {
	if len(observed) != len(calculated) {
		panic("compare chiSq: slice length mismatch")
	}
	if len(observed) == 0 {
		return 0
	}
	chiSq := 0.0
	for i, o := range observed {
		d2 := math.Pow(o-calculated[i], 2)
		if weighting == MODULUS && o != 0 {
			d2 /= o * o
		}
		chiSq += d2
	}
	return chiSq / float64(len(observed))
}

func meanLogRatio(observed, calculated []float64) float64 {
	if len(observed) == 0 {
		return 0
	}
	r := make([]float64, len(observed))
	for i, o := range observed {
		r[i] = math.Log10(calculated[i] / o)
	}
	return stat.Mean(r, nil)
}
