package calculator

import (
	"math"

	"heatcalc/curve"
	"heatcalc/geometry"
	"heatcalc/model"
)

// ForwardInput is one evaluation of the forward temperature-rise model.
type ForwardInput struct {
	Geom geometry.Geometry
	// PowerW is clamped to >= 0 before use.
	PowerW float64
	// EffectiveVent is the gated ventilation state: enabled, Ae above the
	// small-enclosure threshold and IP rating permitting openings.
	EffectiveVent bool
	InletCm2      float64
	CurveNo       int
}

// ForwardResult carries the rises plus the coefficients that produced them.
type ForwardResult struct {
	K float64
	C float64
	X float64
	F *float64
	G *float64

	DtMidK    float64
	DtTopRawK float64
	// DtTopK is the reported top rise; on the small-enclosure branch it is
	// the Figure 2 three-quarter-height construction, not C*DtMid.
	DtTopK float64
	Dt075K *float64

	FiguresUsed []string
	Snapped     []model.SnapNote
}

// Forward computes the mid-height and top-of-enclosure temperature rises for
// one resolved geometry. Pure function of its inputs.
func Forward(store *curve.Store, in ForwardInput) ForwardResult {
	g := in.Geom
	p := math.Max(0, in.PowerW)

	res := ForwardResult{X: ExponentSealed}
	if in.EffectiveVent {
		res.X = ExponentVentilated
	}

	var snaps []model.SnapNote
	switch {
	case in.EffectiveVent:
		var kSnaps, cSnaps []model.SnapNote
		res.K, kSnaps = store.KVents(g.AeM2, in.InletCm2)
		res.C, cSnaps = store.CVents(g.F, in.InletCm2)
		snaps = append(kSnaps, cSnaps...)
		f := g.F
		res.F = &f
		res.FiguresUsed = []string{"Fig. 5", "Fig. 6"}

	case g.AeM2 <= geometry.SmallEnclosureAeM2:
		var kSnaps, cSnaps []model.SnapNote
		res.K, kSnaps = store.KSmallNoVents(g.AeM2)
		res.C, cSnaps = store.CSmallNoVents(g.G)
		snaps = append(kSnaps, cSnaps...)
		gg := g.G
		res.G = &gg
		res.FiguresUsed = []string{"Fig. 7", "Fig. 8"}

	default:
		var kSnaps, cSnaps []model.SnapNote
		res.K, kSnaps = store.KNoVents(g.AeM2)
		res.C, cSnaps = store.CNoVents(in.CurveNo, g.F)
		snaps = append(kSnaps, cSnaps...)
		f := g.F
		res.F = &f
		res.FiguresUsed = []string{"Fig. 3", "Fig. 4"}
	}
	res.Snapped = snaps

	res.DtMidK = res.K * DFactor * math.Pow(p, res.X)
	res.DtTopRawK = res.C * res.DtMidK

	if !in.EffectiveVent && g.AeM2 <= geometry.SmallEnclosureAeM2 {
		// Figure 2 construction: the nominal top point sits vertically above
		// the 0.75-height point at the same rise.
		dt075 := 0.5 * (res.DtMidK + res.DtTopRawK)
		res.Dt075K = &dt075
		res.DtTopK = dt075
		res.FiguresUsed = append(res.FiguresUsed, "Fig. 2")
	} else {
		res.DtTopK = res.DtTopRawK
		res.FiguresUsed = append(res.FiguresUsed, "Fig. 1")
	}
	return res
}

// invertPassive solves the sealed forward model for the power whose reported
// top rise equals allowedRise, always with the unventilated coefficients
// (Annex K style; natural ventilation is deliberately ignored so the passive
// capability stays conservative). The result is derated for altitude.
func invertPassive(store *curve.Store, g geometry.Geometry, curveNo int, allowedRiseK, altitudeM float64) float64 {
	if allowedRiseK <= 0 {
		return 0
	}

	var k, c float64
	if g.AeM2 <= geometry.SmallEnclosureAeM2 {
		k, _ = store.KSmallNoVents(g.AeM2)
		cRaw, _ := store.CSmallNoVents(g.G)
		// the small branch reports the Figure 2 midpoint as its top
		c = 0.5 * (1 + cRaw)
	} else {
		k, _ = store.KNoVents(g.AeM2)
		c, _ = store.CNoVents(curveNo, g.F)
	}
	if k <= 0 || c <= 0 {
		return 0
	}

	p := math.Pow(allowedRiseK/(c*k*DFactor), 1/ExponentSealed)
	return p * AltitudeFactor(altitudeM)
}
