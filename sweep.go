package godielectric

import (
	"math"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// LogSweep returns n frequencies spaced logarithmically from 10^fromExp to
// 10^toExp Hz, both ends included.
func LogSweep(fromExp, toExp float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{math.Pow(10, fromExp)}
	}
	return floats.LogSpan(make([]float64, n), math.Pow(10, fromExp), math.Pow(10, toExp))
}

// ValidateSweep checks that freqs is non-empty and strictly positive. The
// model formulas themselves do not check this.
func ValidateSweep(freqs []float64) error {
	if len(freqs) == 0 {
		return ErrEmptySweep
	}
	for i, f := range freqs {
		if !(f > 0) || math.IsInf(f, 0) {
			return pkgerrors.Wrapf(ErrNonPositiveFrequency, "index %d value %v", i, f)
		}
	}
	return nil
}
