// Package figure renders dispersion spectra and literature data as three
// stacked log-frequency panels: conductivity, scaled relative permittivity
// and 2π·ε₀·ε_r/σ.
package figure

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/pkg/models"
)

// Literature is a measured dataset drawn as scatter points
type Literature struct {
	Name  string
	Freqs []float64
	Sigma []float64
	EpsR  []float64
}

// Options controls figure layout and output
type Options struct {
	Title    string
	Width    vg.Length
	DPI      int
	EpsScale float64
}

const (
	panelSigma = iota
	panelEps
	panelRatio
)

// Panels builds the three stacked plots from model spectra and optional
// literature data.
func Panels(spectra []models.Spectrum, lit *Literature, opts Options) ([]*plot.Plot, error) {
	scale := opts.EpsScale
	if scale == 0 {
		scale = 1
	}

	fmin, fmax := freqRange(spectra, lit)
	panels := make([]*plot.Plot, 3)
	for i := range panels {
		p := plot.New()
		// a panel left without data must still have a positive log range
		p.X.Min, p.X.Max = fmin, fmax
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Legend.Top = true
		p.Add(plotter.NewGrid())
		panels[i] = p
	}
	panels[panelSigma].Title.Text = opts.Title
	panels[panelSigma].Y.Label.Text = "σ (S/m)"
	panels[panelEps].Y.Label.Text = fmt.Sprintf("ε_r × %g", scale)
	panels[panelRatio].Y.Label.Text = "2πε₀ε_r/σ (s)"
	panels[panelRatio].X.Label.Text = "f (Hz)"

	for i, s := range spectra {
		ys := [3][]float64{s.Sigma, scaled(s.EpsR, scale), s.LossRatio}
		for j, p := range panels {
			xy := finiteXYs(s.Freqs, ys[j])
			if len(xy) == 0 {
				logrus.WithField("model", s.Model).Warnf("no finite points for panel %d, skipped", j)
				continue
			}
			l, err := plotter.NewLine(xy)
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "model %q", s.Model)
			}
			l.Color = plotutil.Color(i)
			l.Dashes = plotutil.Dashes(i)
			l.Width = vg.Points(1.5)
			p.Add(l)
			p.Legend.Add(s.Model, l)
		}
	}

	if lit != nil {
		ratio := godielectric.LossRatio(lit.EpsR, lit.Sigma)
		ys := [3][]float64{lit.Sigma, scaled(lit.EpsR, scale), ratio}
		for j, p := range panels {
			xy := finiteXYs(lit.Freqs, ys[j])
			if len(xy) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(xy)
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "literature %q", lit.Name)
			}
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Color = plotutil.Color(len(spectra))
			p.Add(sc)
			p.Legend.Add(lit.Name, sc)
		}
	}
	return panels, nil
}

// Render draws the panels stacked vertically into w. format is a file
// extension such as "svg", "pdf" or "png".
func Render(w io.Writer, format string, panels []*plot.Plot, opts Options) error {
	if len(panels) == 0 {
		return pkgerrors.New("nothing to render")
	}
	width := opts.Width
	if width == 0 {
		width = 6 * vg.Inch
	}
	height := width * vg.Length(len(panels)) / 2

	c, err := newCanvas(width, height, format, opts.DPI)
	if err != nil {
		return err
	}

	rows := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 3,
	}
	canvases := plot.Align(rows, tiles, draw.New(c))
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	if _, err := c.WriteTo(w); err != nil {
		return pkgerrors.Wrap(err, "failed to write figure")
	}
	return nil
}

// Save renders the panels to path, picking the format from its extension
func Save(path string, panels []*plot.Plot, opts Options) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return pkgerrors.Errorf("cannot infer image format from %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create figure file")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, format, panels, opts)
}

// newCanvas honours DPI for raster formats; vector formats ignore it
func newCanvas(w, h vg.Length, format string, dpi int) (vg.CanvasWriterTo, error) {
	if dpi > 0 {
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		case "tif", "tiff":
			return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		}
	}
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "unsupported image format %q", format)
	}
	return c, nil
}

func freqRange(spectra []models.Spectrum, lit *Literature) (float64, float64) {
	fmin, fmax := math.Inf(1), math.Inf(-1)
	update := func(freqs []float64) {
		for _, f := range freqs {
			if f > 0 && !math.IsInf(f, 0) {
				fmin, fmax = math.Min(fmin, f), math.Max(fmax, f)
			}
		}
	}
	for _, s := range spectra {
		update(s.Freqs)
	}
	if lit != nil {
		update(lit.Freqs)
	}
	if math.IsInf(fmin, 1) {
		return 1, 10
	}
	if fmin == fmax {
		return fmin / 10, fmax * 10
	}
	return fmin, fmax
}

func scaled(v []float64, k float64) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = x * k
	}
	return res
}

// finiteXYs drops samples a log-x plot cannot show: non-finite values and
// non-positive frequencies.
func finiteXYs(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xy := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if !(x[i] > 0) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		xy = append(xy, plotter.XY{X: x[i], Y: y[i]})
	}
	return xy
}
