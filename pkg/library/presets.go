package library

import (
	"fmt"

	"github.com/kacperjurak/godielectric"
)

const (
	Gabriel1996    = "Gabriel et al. (1996)"
	Zimmermann2021 = "Zimmermann, van Rienen (2021)"
)

// gabrielGreyMatter is the four-term grey matter fit of Gabriel et al. (1996),
// with a = 1 - alpha. τ in ps, ns, us, ms.
var gabrielGreyMatter = godielectric.ColeCole4Params{
	EpsInf: 4.0,
	Terms: [4]godielectric.ColeColeTerm{
		{DeltaEps: 45, Tau: 7.958, A: 0.9},
		{DeltaEps: 400, Tau: 15.915, A: 0.85},
		{DeltaEps: 2.0e5, Tau: 106.103, A: 0.78},
		{DeltaEps: 4.5e7, Tau: 5.305, A: 1.0},
	},
	Sigma: 0.02,
}

// Presets returns the built-in literature parameter sets. The Zimmermann and
// van Rienen variant drops the fourth (ms) dispersion of the Gabriel fit.
func Presets() []godielectric.Model {
	return []godielectric.Model{
		godielectric.NewColeCole4(Gabriel1996, gabrielGreyMatter),
		godielectric.NewColeCole4(Zimmermann2021, gabrielGreyMatter.WithoutTerm(3)),
	}
}

// Select returns the models whose names are listed, in the given order.
// An empty list selects all of them.
func Select(ms []godielectric.Model, names []string) ([]godielectric.Model, error) {
	if len(names) == 0 {
		return ms, nil
	}
	byName := make(map[string]godielectric.Model, len(ms))
	for _, m := range ms {
		byName[m.Name] = m
	}
	res := make([]godielectric.Model, 0, len(names))
	for _, n := range names {
		m, ok := byName[n]
		if !ok {
			return nil, &NotFoundError{Name: n}
		}
		res = append(res, m)
	}
	return res, nil
}

// NotFoundError reports a model name missing from a library
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model %q not found", e.Name)
}
