package godielectric

import (
	"bufio"
	_ "embed"
	"strconv"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// WagnerSize is the number of rows of the published Wagner et al. table.
const WagnerSize = 70

//go:embed data/wagner.txt
var wagnerTxt string

var wagnerRows = sync.OnceValue(func() [][3]float64 {
	rows, err := parseTable(wagnerTxt)
	if err != nil {
		panic("wagner: " + err.Error())
	}
	return rows
})

// WagnerRows returns a copy of the Wagner et al. table as
// (frequency Hz, conductivity S/m, relative permittivity) triples.
func WagnerRows() [][3]float64 {
	rows := wagnerRows()
	res := make([][3]float64, len(rows))
	copy(res, rows)
	return res
}

// Wagner returns the Wagner et al. table as three parallel slices.
func Wagner() (freqs, sigma, epsR []float64) {
	rows := wagnerRows()
	freqs = make([]float64, len(rows))
	sigma = make([]float64, len(rows))
	epsR = make([]float64, len(rows))
	for i, r := range rows {
		freqs[i], sigma[i], epsR[i] = r[0], r[1], r[2]
	}
	return freqs, sigma, epsR
}

// parseTable reads whitespace separated triples, one per line. Blank lines and
// lines starting with '#' are skipped.
func parseTable(text string) ([][3]float64, error) {
	var rows [][3]float64
	scanner := bufio.NewScanner(strings.NewReader(text))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l := strings.Fields(line)
		if len(l) != 3 {
			return nil, pkgerrors.Errorf("line %d: expected 3 fields, got %d", n, len(l))
		}
		var lineVals [3]float64
		for i := 0; i < 3; i++ {
			val, err := strconv.ParseFloat(l[i], 64)
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "line %d", n)
			}
			lineVals[i] = val
		}
		rows = append(rows, lineVals)
	}
	return rows, scanner.Err()
}
