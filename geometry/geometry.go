// Package geometry resolves an enclosure section's effective cooling surface
// from its own dimensions and its adjacency to sibling sections. Everything
// here is a pure function over snapshots: no section holds a reference to
// another, relationships are recomputed from the full sibling list on every
// call.
package geometry

import (
	"math"

	log "github.com/sirupsen/logrus"

	"heatcalc/model"
)

// Two faces count as touching when they coincide within this tolerance (mm)
// and overlap along the perpendicular axis.
const touchTolMM = 1e-3

// Ae threshold separating the small-enclosure figures from the large ones, m².
const SmallEnclosureAeM2 = 1.25

// Touching reports which faces of a section are in contact with a sibling.
type Touching struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// FaceFactors are the Table III surface factors, one per face.
type FaceFactors struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	Front  float64
	Rear   float64
}

// Geometry is the resolved per-section geometric state consumed by the
// thermal solver.
type Geometry struct {
	WidthM  float64
	HeightM float64
	DepthM  float64

	Touching Touching
	Factors  FaceFactors

	AeM2 float64
	// F = h^1.35 / baseArea selects the c-curve for large enclosures;
	// G = height/width does the same for small ones.
	F float64
	G float64

	// CurveNo (1-5) encodes the installation pattern for the Figure 4 lookup.
	CurveNo int

	Surfaces []model.SurfaceContribution
}

func overlap1D(a0, a1, b0, b1 float64) bool {
	return !(a1 <= b0 || b1 <= a0)
}

// TouchingSides scans the sibling list for faces in contact with sec. The
// result does not depend on the order of siblings.
func TouchingSides(sec model.EnclosureSection, siblings []model.EnclosureSection) Touching {
	r := sec.Rect
	var t Touching
	for _, o := range siblings {
		or := o.Rect
		if or == r && o.Name == sec.Name {
			continue
		}
		vOverlap := overlap1D(r.Top(), r.Bottom(), or.Top(), or.Bottom())
		hOverlap := overlap1D(r.Left(), r.Right(), or.Left(), or.Right())

		if math.Abs(r.Left()-or.Right()) < touchTolMM && vOverlap {
			t.Left = true
		}
		if math.Abs(r.Right()-or.Left()) < touchTolMM && vOverlap {
			t.Right = true
		}
		// y grows downward: the section above us ends at our top edge
		if math.Abs(r.Top()-or.Bottom()) < touchTolMM && hOverlap {
			t.Top = true
		}
		if math.Abs(r.Bottom()-or.Top()) < touchTolMM && hOverlap {
			t.Bottom = true
		}
	}
	return t
}

// FaceFactorsFor maps the touching pattern to the Table III surface factors.
func FaceFactorsFor(t Touching, wallMounted bool) FaceFactors {
	f := FaceFactors{
		Top:    1.4,
		Bottom: 0.0, // floor surface is never credited
		Left:   0.9,
		Right:  0.9,
		Front:  0.9,
		Rear:   0.9,
	}
	if t.Top {
		f.Top = 0.7
	}
	if t.Left {
		f.Left = 0.5
	}
	if t.Right {
		f.Right = 0.5
	}
	if wallMounted {
		f.Rear = 0.5
	}
	return f
}

// CurveNo derives the installation curve number (1-5) from the touching
// pattern. It only matters for the unventilated large-enclosure branch.
func CurveNo(t Touching, wallMounted bool) int {
	left, right, topCovered := t.Left, t.Right, t.Top
	both := left && right
	one := left != right

	switch {
	case !left && !right && !topCovered:
		if wallMounted {
			return 3
		}
		return 1
	case one && !topCovered:
		if wallMounted {
			return 4
		}
		return 2
	case both && !topCovered:
		if wallMounted {
			return 5
		}
		return 3
	case wallMounted && both && topCovered:
		return 4
	}
	if wallMounted {
		return 4
	}
	return 3
}

// Resolve computes the full geometric state for one section. logger may be
// nil; when set it receives the resolved factors the way the layout debug
// overlay expects them.
func Resolve(sec model.EnclosureSection, siblings []model.EnclosureSection, wallMounted bool, logger log.FieldLogger) Geometry {
	wM := sec.WidthMM() / 1000.0
	hM := sec.HeightMM() / 1000.0
	dMM := sec.DepthMM
	if dMM < 1 {
		dMM = 1
	}
	dM := dMM / 1000.0

	touching := TouchingSides(sec, siblings)
	factors := FaceFactorsFor(touching, wallMounted)

	surfaces := []model.SurfaceContribution{
		surface("Roof", wM, dM, factors.Top),
		surface("Bottom", wM, dM, factors.Bottom),
		surface("Front", wM, hM, factors.Front),
		surface("Rear", wM, hM, factors.Rear),
		surface("Left", hM, dM, factors.Left),
		surface("Right", hM, dM, factors.Right),
	}

	ae := 0.0
	for _, s := range surfaces {
		ae += s.EffectiveM2
	}

	baseArea := math.Max(1e-9, wM*dM)
	g := Geometry{
		WidthM:   wM,
		HeightM:  hM,
		DepthM:   dM,
		Touching: touching,
		Factors:  factors,
		AeM2:     ae,
		F:        math.Pow(hM, 1.35) / baseArea,
		G:        hM / math.Max(1e-9, wM),
		CurveNo:  CurveNo(touching, wallMounted),
		Surfaces: surfaces,
	}

	if logger != nil {
		logger.WithFields(log.Fields{
			"section":      sec.Name,
			"ae_m2":        g.AeM2,
			"curve_no":     g.CurveNo,
			"top":          factors.Top,
			"left":         factors.Left,
			"right":        factors.Right,
			"rear":         factors.Rear,
			"wall_mounted": wallMounted,
		}).Debug("resolved surface factors")
	}
	return g
}

func surface(name string, dim1, dim2, factor float64) model.SurfaceContribution {
	area := dim1 * dim2
	return model.SurfaceContribution{
		Name:        name,
		Dim1M:       dim1,
		Dim2M:       dim2,
		AreaM2:      area,
		Factor:      factor,
		EffectiveM2: area * factor,
	}
}
