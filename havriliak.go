package godielectric

import (
	"math/cmplx"
)

const (
	havNegDeltaEpsScale = 1e3
	// Fitted τ literals are quoted in "ns" but were obtained against a 1e-6
	// scale. The factor is kept as is so those literals keep reproducing.
	havNegTauScale = 1e-6
)

// HavriliakNegamiParams holds the six Havriliak-Negami parameters.
// DeltaEps is in thousands, Tau is multiplied by 1e-6 before use.
type HavriliakNegamiParams struct {
	EpsInf   float64 `yaml:"epsInf"`
	DeltaEps float64 `yaml:"deltaEps"`
	Tau      float64 `yaml:"tau"`
	A        float64 `yaml:"a"`
	Beta     float64 `yaml:"beta"`
	Sigma    float64 `yaml:"sigma"`
}

// HavriliakNegami evaluates
//
//	ε*(ω) = ε∞ + Δε / (1 + (jωτ)^a)^β − jσ/(ωε₀)
//
// for every angular frequency in omega. Both powers use the principal branch.
func HavriliakNegami(omega []float64, p HavriliakNegamiParams) []complex128 {
	res := make([]complex128, len(omega))
	deltaEps := complex(p.DeltaEps*havNegDeltaEpsScale, 0)
	tau := p.Tau * havNegTauScale
	for k, w := range omega {
		inner := 1 + cmplx.Pow(complex(0, w*tau), complex(p.A, 0))
		res[k] = complex(p.EpsInf, 0) + deltaEps/cmplx.Pow(inner, complex(p.Beta, 0)) + conductionTerm(p.Sigma, w)
	}
	return res
}
