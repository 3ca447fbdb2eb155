package curve

import (
	"fmt"
	"math"

	"heatcalc/model"
)

// Store bundles the coefficient lookups for all six standard figures behind
// one immutable value. The ventilated figures (5 and 6) are family sets; the
// sealed figures are single curves; Figure 8 defaults to a documented
// closed-form power law because no digitized data backs it. Every lookup is
// pure and total: out-of-domain queries clamp and report a SnapNote.
type Store struct {
	kNoVents Curve      // Fig. 3, x = Ae
	cNoVents Curve      // Fig. 4 installation curve 1, x = f
	kSmall   Curve      // Fig. 7, x = Ae
	cSmall   Curve      // Fig. 8, x = g
	kVents   *FamilySet // Fig. 5, family = Ae, x = inlet cm²
	cVents   *FamilySet // Fig. 6, family = f, x = inlet cm²
}

// Offsets applied to the Figure 4 base curve per installation curve number.
// Higher numbers mean more sheltered installations and a flatter profile.
var fig4CurveOffsets = [...]float64{
	1: 0,
	2: -0.04,
	3: -0.08,
	4: -0.13,
	5: -0.17,
}

// StoreData is the raw input for building a Store. Nil slices/maps fall back
// to the built-in digitized defaults.
type StoreData struct {
	Fig3 []Point
	Fig4 []Point
	Fig5 map[float64][]Point
	Fig6 map[float64][]Point
	Fig7 []Point
	// Fig8 is optional digitized data; when absent the anchor power law is
	// used instead.
	Fig8 []Point
}

// NewDefaultStore builds a Store from the built-in tables.
func NewDefaultStore() *Store {
	s, err := NewStore(StoreData{})
	if err != nil {
		// the built-in tables are well-formed by construction
		panic(err)
	}
	return s
}

func NewStore(data StoreData) (*Store, error) {
	pick := func(pts, def []Point) []Point {
		if len(pts) > 0 {
			return pts
		}
		return def
	}

	s := &Store{}
	var err error
	if s.kNoVents, err = NewMonotoneSpline(pick(data.Fig3, fig3KNoVents)); err != nil {
		return nil, fmt.Errorf("fig3: %w", err)
	}
	if s.cNoVents, err = NewMonotoneSpline(pick(data.Fig4, fig4CNoVentsBase)); err != nil {
		return nil, fmt.Errorf("fig4: %w", err)
	}
	if s.kSmall, err = NewMonotoneSpline(pick(data.Fig7, fig7KSmall)); err != nil {
		return nil, fmt.Errorf("fig7: %w", err)
	}

	if len(data.Fig8) > 0 {
		if s.cSmall, err = NewMonotoneSpline(data.Fig8); err != nil {
			return nil, fmt.Errorf("fig8: %w", err)
		}
	} else {
		s.cSmall = NewPowerLawThrough(fig8AnchorG1, fig8AnchorC1, fig8AnchorG2, fig8AnchorC2)
	}

	fig5 := data.Fig5
	if len(fig5) == 0 {
		fig5 = fig5KVents
	}
	if s.kVents, err = NewFamilySet(fig5); err != nil {
		return nil, fmt.Errorf("fig5: %w", err)
	}
	fig6 := data.Fig6
	if len(fig6) == 0 {
		fig6 = fig6CVents
	}
	if s.cVents, err = NewFamilySet(fig6); err != nil {
		return nil, fmt.Errorf("fig6: %w", err)
	}
	return s, nil
}

// KNoVents is the Figure 3 constant for sealed enclosures with Ae > 1.25 m².
func (s *Store) KNoVents(ae float64) (float64, []model.SnapNote) {
	return evalClamped(s.kNoVents, "fig3_ae", ae)
}

// CNoVents is the Figure 4 constant. curveNo selects the installation curve
// (1-5); out-of-range numbers clamp to the nearest valid curve.
func (s *Store) CNoVents(curveNo int, f float64) (float64, []model.SnapNote) {
	if curveNo < 1 {
		curveNo = 1
	} else if curveNo > 5 {
		curveNo = 5
	}
	base, snaps := evalClamped(s.cNoVents, "fig4_f", f)
	return base + fig4CurveOffsets[curveNo], snaps
}

// KSmallNoVents is the Figure 7 constant for sealed enclosures with
// Ae <= 1.25 m².
func (s *Store) KSmallNoVents(ae float64) (float64, []model.SnapNote) {
	return evalClamped(s.kSmall, "fig7_ae", ae)
}

// CSmallNoVents is the Figure 8 constant, a function of g = height/width.
func (s *Store) CSmallNoVents(g float64) (float64, []model.SnapNote) {
	return evalClamped(s.cSmall, "fig8_g", g)
}

// KVentFamilies lists the Ae family keys of the Figure 5 data, ascending.
func (s *Store) KVentFamilies() []float64 { return s.kVents.Keys() }

// CVentFamilies lists the f family keys of the Figure 6 data, ascending.
func (s *Store) CVentFamilies() []float64 { return s.cVents.Keys() }

// KVents is the Figure 5 constant for ventilated enclosures.
func (s *Store) KVents(ae, inletCm2 float64) (float64, []model.SnapNote) {
	return s.kVents.Eval("fig5_ae", ae, inletCm2)
}

// CVents is the Figure 6 constant for ventilated enclosures.
func (s *Store) CVents(f, inletCm2 float64) (float64, []model.SnapNote) {
	return s.cVents.Eval("fig6_f", f, inletCm2)
}

func evalClamped(c Curve, quantity string, x float64) (float64, []model.SnapNote) {
	lo, hi := c.Domain()
	used := x
	if used < lo {
		used = lo
	} else if used > hi {
		used = hi
	}
	var snaps []model.SnapNote
	if used != x {
		snaps = []model.SnapNote{{Quantity: quantity, Requested: x, Used: used}}
	}
	return c.At(used), snaps
}

// PowerLaw is the closed-form fallback c = coef * x^exp, clamped to [lo, hi].
type PowerLaw struct {
	coef float64
	exp  float64
	lo   float64
	hi   float64
}

// NewPowerLawThrough fits the power law exactly through (x1,y1) and (x2,y2)
// and clamps evaluation to [x1, x2]. Both x and y values must be positive.
func NewPowerLawThrough(x1, y1, x2, y2 float64) PowerLaw {
	exp := math.Log(y2/y1) / math.Log(x2/x1)
	return PowerLaw{
		coef: y1 / math.Pow(x1, exp),
		exp:  exp,
		lo:   x1,
		hi:   x2,
	}
}

func (p PowerLaw) At(x float64) float64 {
	if x < p.lo {
		x = p.lo
	} else if x > p.hi {
		x = p.hi
	}
	return p.coef * math.Pow(x, p.exp)
}

func (p PowerLaw) Domain() (lo, hi float64) { return p.lo, p.hi }
