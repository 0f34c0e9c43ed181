package library

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kacperjurak/godielectric"
)

const sample = `
models:
  - name: grey matter
    kind: cole-cole-4
    epsInf: 4.0
    sigma: 0.02
    terms:
      - {deltaEps: 45, tau: 7.958, a: 0.9}
      - {deltaEps: 400, tau: 15.915, a: 0.85}
  - name: hn fit
    kind: havriliak-negami
    epsInf: 4.0
    deltaEps: 30.5
    tau: 120
    a: 0.75
    beta: 0.6
    sigma: 0.1
`

func TestDecode(t *testing.T) {
	ms, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, ms, 2)

	cc := ms[0]
	assert.Equal(t, "grey matter", cc.Name)
	assert.Equal(t, godielectric.COLECOLE4, cc.Kind)
	assert.Equal(t, 4.0, cc.ColeCole.EpsInf)
	assert.Equal(t, godielectric.ColeColeTerm{DeltaEps: 400, Tau: 15.915, A: 0.85}, cc.ColeCole.Terms[1])
	assert.Zero(t, cc.ColeCole.Terms[3].DeltaEps)

	hn := ms[1]
	assert.Equal(t, godielectric.HAVRILIAKNEGAMI, hn.Kind)
	assert.Equal(t, godielectric.HavriliakNegamiParams{
		EpsInf: 4, DeltaEps: 30.5, Tau: 120, A: 0.75, Beta: 0.6, Sigma: 0.1,
	}, hn.HavNeg)
}

func TestDecodeErrors(t *testing.T) {
	const base = "name: x, epsInf: 4, sigma: 0.1"
	cases := map[string]string{
		"unknown kind":    "models:\n  - {" + base + ", kind: debye}\n",
		"missing name":    "models:\n  - {kind: cole-cole-4, epsInf: 4, sigma: 0.1}\n",
		"unknown field":   "models:\n  - {" + base + ", kind: cole-cole-4, gamma: 1}\n",
		"too many terms":  "models:\n  - {" + base + ", kind: cole-cole-4, terms: [{}, {}, {}, {}, {}]}\n",
		"terms on hn":     "models:\n  - {" + base + ", kind: havriliak-negami, deltaEps: 1, tau: 1, a: 1, beta: 1, terms: [{}]}\n",
		"duplicate":       "models:\n  - {" + base + ", kind: cole-cole-4}\n  - {" + base + ", kind: cole-cole-4}\n",
		"missing sigma":   "models:\n  - {name: x, kind: cole-cole-4, epsInf: 4}\n",
		"missing epsInf":  "models:\n  - {name: x, kind: havriliak-negami, sigma: 0.1, deltaEps: 1, tau: 1, a: 1, beta: 1}\n",
		"hn missing beta": "models:\n  - {" + base + ", kind: havriliak-negami, deltaEps: 40, tau: 300, a: 0.8}\n",
		"hn missing a":    "models:\n  - {" + base + ", kind: havriliak-negami, deltaEps: 40, tau: 300, beta: 0.7}\n",
		"hn missing tau":  "models:\n  - {" + base + ", kind: havriliak-negami, deltaEps: 40, a: 0.8, beta: 0.7}\n",
		"hn keys on cc":   "models:\n  - {" + base + ", kind: cole-cole-4, beta: 0.7}\n",
		"incomplete term": "models:\n  - {" + base + ", kind: cole-cole-4, terms: [{deltaEps: 45, tau: 7.958}]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("models:\n  - {name: x, kind: debye}\n"))
	assert.ErrorIs(t, err, godielectric.ErrUnknownKind)

	_, err = Decode(strings.NewReader("models:\n  - {" + base + ", kind: havriliak-negami, deltaEps: 40, tau: 300, a: 0.8}\n"))
	assert.ErrorContains(t, err, "missing beta")
}

func TestDecodeExplicitZero(t *testing.T) {
	ms, err := Decode(strings.NewReader(
		"models:\n  - {name: x, kind: havriliak-negami, epsInf: 0, sigma: 0, deltaEps: 0, tau: 1, a: 1, beta: 1}\n"))
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Zero(t, ms[0].HavNeg.DeltaEps)
}

func TestDecodeEmpty(t *testing.T) {
	ms, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestEncodeDecode(t *testing.T) {
	ms := append(Presets(), godielectric.NewHavriliakNegami("hn", godielectric.HavriliakNegamiParams{
		EpsInf: 3, DeltaEps: 12, Tau: 40, A: 0.8, Beta: 0.5, Sigma: 0.3,
	}))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ms))

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ms, back)
}

func TestEncodeUnknownKind(t *testing.T) {
	err := Encode(&bytes.Buffer{}, []godielectric.Model{{Name: "x", Kind: godielectric.Kind(3)}})
	assert.ErrorIs(t, err, godielectric.ErrUnknownKind)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	ms, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ms, 2)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadShippedLibrary(t *testing.T) {
	ms, err := Load(filepath.Join("..", "..", "configs", "models.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Presets(), ms)
}

func TestPresets(t *testing.T) {
	ms := Presets()
	require.Len(t, ms, 2)
	assert.Equal(t, Gabriel1996, ms[0].Name)
	assert.Equal(t, Zimmermann2021, ms[1].Name)

	gabriel, zimmermann := ms[0].ColeCole, ms[1].ColeCole
	assert.Equal(t, 4.5e7, gabriel.Terms[3].DeltaEps)
	assert.Zero(t, zimmermann.Terms[3].DeltaEps)
	assert.Equal(t, gabriel.Terms[:3], zimmermann.Terms[:3])

	// Gabriel grey matter at 10 Hz is dominated by the ms dispersion
	epsR, _ := godielectric.Properties(ms[0], []float64{10})
	assert.Greater(t, epsR[0], 1e7)
	epsR, _ = godielectric.Properties(ms[1], []float64{10})
	assert.Less(t, epsR[0], 2.1e5)
}

func TestSelect(t *testing.T) {
	ms := Presets()

	all, err := Select(ms, nil)
	require.NoError(t, err)
	assert.Equal(t, ms, all)

	one, err := Select(ms, []string{Zimmermann2021})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, Zimmermann2021, one[0].Name)

	_, err = Select(ms, []string{"nope"})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nope", nf.Name)
}
