package godielectric

import (
	"math/cmplx"
)

// Relaxation time units of the four Cole-Cole terms: ps, ns, us, ms.
var coleColeTauScale = [4]float64{1e-12, 1e-9, 1e-6, 1e-3}

// ColeColeTerm is a single dispersion Δε/(1+(jωτ)^a).
// A is 1-α, the complement of the classical Cole-Cole exponent.
type ColeColeTerm struct {
	DeltaEps float64 `yaml:"deltaEps"`
	Tau      float64 `yaml:"tau"`
	A        float64 `yaml:"a"`
}

// ColeCole4Params holds the 14 parameters of the four-term Cole-Cole model.
// Terms[i].Tau is given in ps, ns, us and ms for i = 0..3.
type ColeCole4Params struct {
	EpsInf float64         `yaml:"epsInf"`
	Terms  [4]ColeColeTerm `yaml:"terms"`
	Sigma  float64         `yaml:"sigma"`
}

// ColeCole4 evaluates
//
//	ε*(ω) = ε∞ − jσ/(ωε₀) + Σ Δε_i / (1 + (jωτ_i)^a_i)
//
// for every angular frequency in omega.
func ColeCole4(omega []float64, p ColeCole4Params) []complex128 {
	res := make([]complex128, len(omega))
	for k, w := range omega {
		eps := complex(p.EpsInf, 0) + conductionTerm(p.Sigma, w)
		for i, t := range p.Terms {
			tau := t.Tau * coleColeTauScale[i]
			jwt := complex(0, w*tau)
			eps += complex(t.DeltaEps, 0) / (1 + cmplx.Pow(jwt, complex(t.A, 0)))
		}
		res[k] = eps
	}
	return res
}

// WithoutTerm returns a copy of p with the i-th dispersion switched off (Δε = 0).
func (p ColeCole4Params) WithoutTerm(i int) ColeCole4Params {
	p.Terms[i].DeltaEps = 0
	return p
}
