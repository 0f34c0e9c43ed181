// Package library reads named dispersion parameter sets from YAML and holds
// the built-in literature presets.
package library

import (
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kacperjurak/godielectric"
)

type file struct {
	Models []entry `yaml:"models"`
}

// entry is the union of both parameter records; kind selects which fields
// are meaningful. Pointers tell a missing key apart from an explicit zero.
type entry struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	EpsInf *float64 `yaml:"epsInf"`
	Sigma  *float64 `yaml:"sigma"`
	Terms  []term   `yaml:"terms,omitempty"`

	DeltaEps *float64 `yaml:"deltaEps,omitempty"`
	Tau      *float64 `yaml:"tau,omitempty"`
	A        *float64 `yaml:"a,omitempty"`
	Beta     *float64 `yaml:"beta,omitempty"`
}

type term struct {
	DeltaEps *float64 `yaml:"deltaEps"`
	Tau      *float64 `yaml:"tau"`
	A        *float64 `yaml:"a"`
}

// field is a named optional value used for presence checks
type field struct {
	name string
	val  *float64
}

func missing(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if f.val == nil {
			names = append(names, f.name)
		}
	}
	return names
}

func present(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if f.val != nil {
			names = append(names, f.name)
		}
	}
	return names
}

func ptr(v float64) *float64 { return &v }

// Load reads a parameter library file
func Load(path string) ([]godielectric.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to open model library")
	}
	defer f.Close()

	ms, err := Decode(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "model library %s", path)
	}
	return ms, nil
}

// Decode parses a YAML parameter library
func Decode(r io.Reader) ([]godielectric.Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var lib file
	if err := dec.Decode(&lib); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "failed to decode YAML")
	}

	ms := make([]godielectric.Model, 0, len(lib.Models))
	seen := make(map[string]bool, len(lib.Models))
	for i, e := range lib.Models {
		m, err := e.model()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "models[%d]", i)
		}
		if seen[m.Name] {
			return nil, pkgerrors.Errorf("models[%d]: duplicate name %q", i, m.Name)
		}
		seen[m.Name] = true
		ms = append(ms, m)
	}
	return ms, nil
}

func (e entry) model() (godielectric.Model, error) {
	if e.Name == "" {
		return godielectric.Model{}, pkgerrors.New("missing name")
	}
	kind, err := godielectric.ParseKind(e.Kind)
	if err != nil {
		return godielectric.Model{}, err
	}
	if names := missing(field{"epsInf", e.EpsInf}, field{"sigma", e.Sigma}); len(names) > 0 {
		return godielectric.Model{}, pkgerrors.Errorf("%q: missing %s", e.Name, strings.Join(names, ", "))
	}
	hn := []field{{"deltaEps", e.DeltaEps}, {"tau", e.Tau}, {"a", e.A}, {"beta", e.Beta}}

	switch kind {
	case godielectric.COLECOLE4:
		if names := present(hn...); len(names) > 0 {
			return godielectric.Model{}, pkgerrors.Errorf("%q: %s only valid for %s, use terms",
				e.Name, strings.Join(names, ", "), godielectric.HAVRILIAKNEGAMI)
		}
		if len(e.Terms) > 4 {
			return godielectric.Model{}, pkgerrors.Errorf("%q: at most 4 terms, got %d", e.Name, len(e.Terms))
		}
		p := godielectric.ColeCole4Params{EpsInf: *e.EpsInf, Sigma: *e.Sigma}
		for i, t := range e.Terms {
			if names := missing(field{"deltaEps", t.DeltaEps}, field{"tau", t.Tau}, field{"a", t.A}); len(names) > 0 {
				return godielectric.Model{}, pkgerrors.Errorf("%q: terms[%d] missing %s", e.Name, i, strings.Join(names, ", "))
			}
			p.Terms[i] = godielectric.ColeColeTerm{DeltaEps: *t.DeltaEps, Tau: *t.Tau, A: *t.A}
		}
		return godielectric.NewColeCole4(e.Name, p), nil
	default:
		if len(e.Terms) > 0 {
			return godielectric.Model{}, pkgerrors.Errorf("%q: terms are only valid for %s", e.Name, godielectric.COLECOLE4)
		}
		if names := missing(hn...); len(names) > 0 {
			return godielectric.Model{}, pkgerrors.Errorf("%q: missing %s", e.Name, strings.Join(names, ", "))
		}
		return godielectric.NewHavriliakNegami(e.Name, godielectric.HavriliakNegamiParams{
			EpsInf:   *e.EpsInf,
			DeltaEps: *e.DeltaEps,
			Tau:      *e.Tau,
			A:        *e.A,
			Beta:     *e.Beta,
			Sigma:    *e.Sigma,
		}), nil
	}
}

// Encode writes models in the format read by Decode
func Encode(w io.Writer, ms []godielectric.Model) error {
	lib := file{Models: make([]entry, 0, len(ms))}
	for _, m := range ms {
		e := entry{Name: m.Name, Kind: m.Kind.String()}
		switch m.Kind {
		case godielectric.COLECOLE4:
			e.EpsInf, e.Sigma = ptr(m.ColeCole.EpsInf), ptr(m.ColeCole.Sigma)
			for _, t := range m.ColeCole.Terms {
				e.Terms = append(e.Terms, term{DeltaEps: ptr(t.DeltaEps), Tau: ptr(t.Tau), A: ptr(t.A)})
			}
		case godielectric.HAVRILIAKNEGAMI:
			p := m.HavNeg
			e.EpsInf, e.Sigma = ptr(p.EpsInf), ptr(p.Sigma)
			e.DeltaEps, e.Tau, e.A, e.Beta = ptr(p.DeltaEps), ptr(p.Tau), ptr(p.A), ptr(p.Beta)
		default:
			return pkgerrors.Wrapf(godielectric.ErrUnknownKind, "model %q", m.Name)
		}
		lib.Models = append(lib.Models, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lib); err != nil {
		return pkgerrors.Wrap(err, "failed to encode YAML")
	}
	return enc.Close()
}
