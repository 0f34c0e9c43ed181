package godielectric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChiSq(t *testing.T) {
	observed := []float64{1, 2, 4}
	calculated := []float64{1, 3, 2}

	assert.InDelta(t, (0+1+4)/3.0, ChiSq(observed, calculated, UNITY), 1e-15)
	assert.InDelta(t, (0+0.25+0.25)/3.0, ChiSq(observed, calculated, MODULUS), 1e-15)
	assert.Zero(t, ChiSq(nil, nil, MODULUS))
	assert.Panics(t, func() { ChiSq([]float64{1}, nil, UNITY) })
}

func TestCompareWithOwnPrediction(t *testing.T) {
	m := NewColeCole4("gabriel", gabrielGreyMatter)
	freqs := LogSweep(1, 4, 20)
	epsR, sigma := Properties(m, freqs)

	d := Compare(m, freqs, sigma, epsR, MODULUS)
	assert.Equal(t, "gabriel", d.Model)
	assert.Equal(t, 20, d.Points)
	assert.Zero(t, d.SigmaChiSq)
	assert.Zero(t, d.EpsChiSq)
	assert.Zero(t, d.SigmaLogRatio)
	assert.Zero(t, d.EpsLogRatio)
}

func TestCompareScaledMeasurement(t *testing.T) {
	m := NewColeCole4("gabriel", gabrielGreyMatter)
	freqs := LogSweep(1, 4, 20)
	epsR, sigma := Properties(m, freqs)
	for i := range freqs {
		sigma[i] *= 10
		epsR[i] /= 10
	}

	d := Compare(m, freqs, sigma, epsR, MODULUS)
	assert.InDelta(t, -1, d.SigmaLogRatio, 1e-12)
	assert.InDelta(t, 1, d.EpsLogRatio, 1e-12)
	assert.InDelta(t, 0.81, d.SigmaChiSq, 1e-12)
}

func TestCompareAgainstWagner(t *testing.T) {
	freqs, sigma, epsR := Wagner()
	d := Compare(NewColeCole4("gabriel", gabrielGreyMatter), freqs, sigma, epsR, MODULUS)
	assert.Equal(t, len(freqs), d.Points)
	assert.False(t, d.SigmaChiSq < 0)
}
