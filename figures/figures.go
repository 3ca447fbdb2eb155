// Package figures renders the coefficient reference figures as PNG charts,
// optionally with the operating point of an evaluated section overlaid on the
// figures its evaluation actually read. Rendering samples the same curve
// store the engine evaluates against, so a chart always shows exactly the
// data the numbers came from.
package figures

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"heatcalc/curve"
	"heatcalc/model"
)

const samplesPerCurve = 80

var plotSize = struct{ w, h vg.Length }{w: 6 * vg.Inch, h: 4 * vg.Inch}

// Renderer draws the reference figures from one curve store.
type Renderer struct {
	store *curve.Store
}

func NewRenderer(store *curve.Store) *Renderer {
	return &Renderer{store: store}
}

// RenderAll writes fig3.png .. fig8.png into dir, creating it if needed.
// When res is non-nil, its operating point is marked on the two figures the
// evaluation read.
func (r *Renderer) RenderAll(dir string, res *model.ThermalResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("figures: %w", err)
	}

	type job struct {
		name   string
		render func(*model.ThermalResult) (*plot.Plot, error)
	}
	jobs := []job{
		{"fig3.png", r.fig3},
		{"fig4.png", r.fig4},
		{"fig5.png", r.fig5},
		{"fig6.png", r.fig6},
		{"fig7.png", r.fig7},
		{"fig8.png", r.fig8},
	}
	for _, j := range jobs {
		p, err := j.render(res)
		if err != nil {
			return fmt.Errorf("figures: %s: %w", j.name, err)
		}
		if err := p.Save(plotSize.w, plotSize.h, filepath.Join(dir, j.name)); err != nil {
			return fmt.Errorf("figures: %s: %w", j.name, err)
		}
	}
	return nil
}

func (r *Renderer) fig3(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Enclosure constant k, no ventilation openings",
		"effective cooling surface Ae (m²)", "k")
	line := sample(1.25, 14, func(ae float64) float64 {
		k, _ := r.store.KNoVents(ae)
		return k
	})
	if err := plotutil.AddLines(p, "k", line); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 3") {
		if err := addMark(p, res.AeM2, res.K); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Renderer) fig4(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Temperature distribution factor c, no ventilation openings",
		"shape ratio f", "c")
	var args []interface{}
	for curveNo := 1; curveNo <= 5; curveNo++ {
		n := curveNo
		line := sample(1.5, 12, func(f float64) float64 {
			c, _ := r.store.CNoVents(n, f)
			return c
		})
		args = append(args, fmt.Sprintf("curve %d", n), line)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 4") && res.F != nil {
		if err := addMark(p, *res.F, res.C); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Renderer) fig5(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Enclosure constant k, with ventilation openings",
		"inlet opening (cm²)", "k")
	var args []interface{}
	for _, ae := range r.store.KVentFamilies() {
		a := ae
		line := sample(50, 700, func(s float64) float64 {
			k, _ := r.store.KVents(a, s)
			return k
		})
		args = append(args, fmt.Sprintf("Ae = %g m²", a), line)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 5") {
		if err := addMark(p, res.EffectiveInletCm2, res.K); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Renderer) fig6(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Temperature distribution factor c, with ventilation openings",
		"inlet opening (cm²)", "c")
	var args []interface{}
	for _, f := range r.store.CVentFamilies() {
		ff := f
		line := sample(50, 700, func(s float64) float64 {
			c, _ := r.store.CVents(ff, s)
			return c
		})
		args = append(args, fmt.Sprintf("f = %g", ff), line)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 6") {
		if err := addMark(p, res.EffectiveInletCm2, res.C); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Renderer) fig7(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Enclosure constant k, small enclosures",
		"effective cooling surface Ae (m²)", "k")
	line := sample(0.05, 1.25, func(ae float64) float64 {
		k, _ := r.store.KSmallNoVents(ae)
		return k
	})
	if err := plotutil.AddLines(p, "k", line); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 7") {
		if err := addMark(p, res.AeM2, res.K); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Renderer) fig8(res *model.ThermalResult) (*plot.Plot, error) {
	p := newPlot("Temperature distribution factor c, small enclosures",
		"height/width ratio g", "c")
	line := sample(0.5, 3.0, func(g float64) float64 {
		c, _ := r.store.CSmallNoVents(g)
		return c
	})
	if err := plotutil.AddLines(p, "c", line); err != nil {
		return nil, err
	}
	if usedFigure(res, "Fig. 8") && res.G != nil {
		if err := addMark(p, *res.G, res.C); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func sample(lo, hi float64, eval func(float64) float64) plotter.XYs {
	pts := make(plotter.XYs, samplesPerCurve)
	step := (hi - lo) / float64(samplesPerCurve-1)
	for i := range pts {
		x := lo + float64(i)*step
		pts[i].X = x
		pts[i].Y = eval(x)
	}
	return pts
}

func addMark(p *plot.Plot, x, y float64) error {
	scatter, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	p.Legend.Add("evaluated section", scatter)
	return nil
}

func usedFigure(res *model.ThermalResult, name string) bool {
	if res == nil {
		return false
	}
	for _, f := range res.FiguresUsed {
		if f == name {
			return true
		}
	}
	return false
}
