package godielectric

import (
	"math"
)

// Epsilon0 is the vacuum permittivity in F/m (CODATA 2018).
const Epsilon0 = 8.8541878128e-12

// AngularFrequencies converts frequencies in Hz to angular frequencies in rad/s.
func AngularFrequencies(freqs []float64) []float64 {
	omega := make([]float64, len(freqs))
	for i, f := range freqs {
		omega[i] = 2 * math.Pi * f
	}
	return omega
}

// DielectricProperties splits a complex permittivity spectrum into relative
// permittivity and conductivity (S/m).
func DielectricProperties(omega []float64, epsc []complex128) (epsR []float64, sigma []float64) {
	if len(omega) != len(epsc) {
		panic("dielectric: slice length mismatch")
	}
	epsR = make([]float64, len(epsc))
	sigma = make([]float64, len(epsc))
	for i, e := range epsc {
		epsR[i] = real(e)
		sigma[i] = -imag(e) * omega[i] * Epsilon0
	}
	return epsR, sigma
}

// ComplexPermittivity rebuilds eps* = epsR - j*sigma/(w*eps0), the inverse of
// DielectricProperties.
func ComplexPermittivity(omega, epsR, sigma []float64) []complex128 {
	if len(omega) != len(epsR) || len(omega) != len(sigma) {
		panic("dielectric: slice length mismatch")
	}
	res := make([]complex128, len(omega))
	for i, w := range omega {
		res[i] = complex(epsR[i], -sigma[i]/(w*Epsilon0))
	}
	return res
}

// LossRatio returns 2*pi*eps0*epsR/sigma for every sample.
func LossRatio(epsR, sigma []float64) []float64 {
	if len(epsR) != len(sigma) {
		panic("dielectric: slice length mismatch")
	}
	res := make([]float64, len(epsR))
	for i := range epsR {
		res[i] = 2 * math.Pi * Epsilon0 * epsR[i] / sigma[i]
	}
	return res
}

// conductionTerm is the -j*sigma/(w*eps0) contribution of the DC conductivity.
// w == 0 is not guarded.
func conductionTerm(sigma, w float64) complex128 {
	return complex(0, -1) * complex(sigma, 0) / (complex(w, 0) * complex(Epsilon0, 0))
}
