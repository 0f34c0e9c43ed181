package godielectric

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind tags which dispersion formula a Model uses.
type Kind int

const (
	COLECOLE4 Kind = iota
	HAVRILIAKNEGAMI
)

var kindNames = map[Kind]string{
	COLECOLE4:       "cole-cole-4",
	HAVRILIAKNEGAMI: "havriliak-negami",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether Evaluate can dispatch k.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a kind tag such as "cole-cole-4" back to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, pkgerrors.Wrapf(ErrUnknownKind, "%q", s)
}

// Model is a named parameter set of one of the dispersion models. Only the
// parameter record matching Kind is read.
type Model struct {
	Name     string
	Kind     Kind
	ColeCole ColeCole4Params
	HavNeg   HavriliakNegamiParams
}

// NewColeCole4 wraps Cole-Cole parameters in a Model.
func NewColeCole4(name string, p ColeCole4Params) Model {
	return Model{Name: name, Kind: COLECOLE4, ColeCole: p}
}

// NewHavriliakNegami wraps Havriliak-Negami parameters in a Model.
func NewHavriliakNegami(name string, p HavriliakNegamiParams) Model {
	return Model{Name: name, Kind: HAVRILIAKNEGAMI, HavNeg: p}
}

// Evaluate dispatches to the formula selected by m.Kind.
func Evaluate(m Model, omega []float64) []complex128 {
	switch m.Kind {
	case COLECOLE4:
		return ColeCole4(omega, m.ColeCole)
	case HAVRILIAKNEGAMI:
		return HavriliakNegami(omega, m.HavNeg)
	}
	panic("model: unknown kind " + m.Kind.String())
}

// Properties evaluates m over freqs (Hz) and returns relative permittivity and
// conductivity.
func Properties(m Model, freqs []float64) (epsR []float64, sigma []float64) {
	omega := AngularFrequencies(freqs)
	return DielectricProperties(omega, Evaluate(m, omega))
}
