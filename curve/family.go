package curve

import (
	"fmt"
	"sort"

	"heatcalc/model"
)

// FamilySet is an immutable family of digitized curves sharing one figure:
// the family key selects a curve (e.g. an Ae value), the query x is evaluated
// on that curve (e.g. an inlet opening area). Loaded once, read-only after,
// safe for concurrent readers.
type FamilySet struct {
	keys    []float64
	splines []*MonotoneSpline
}

// NewFamilySet fits one MonotoneSpline per family. Every family needs at
// least one point.
func NewFamilySet(families map[float64][]Point) (*FamilySet, error) {
	if len(families) == 0 {
		return nil, fmt.Errorf("curve: empty family set")
	}
	fs := &FamilySet{
		keys: make([]float64, 0, len(families)),
	}
	for key := range families {
		fs.keys = append(fs.keys, key)
	}
	sort.Float64s(fs.keys)

	fs.splines = make([]*MonotoneSpline, len(fs.keys))
	for i, key := range fs.keys {
		pts := families[key]
		if len(pts) == 0 {
			return nil, fmt.Errorf("curve: family %g has no points", key)
		}
		sp, err := NewMonotoneSpline(pts)
		if err != nil {
			return nil, fmt.Errorf("curve: family %g: %w", key, err)
		}
		fs.splines[i] = sp
	}
	return fs, nil
}

// Keys returns the stored family keys in ascending order.
func (fs *FamilySet) Keys() []float64 {
	out := make([]float64, len(fs.keys))
	copy(out, fs.keys)
	return out
}

// Eval interpolates in two levels: within each of the two bracketing
// families' splines at x, then linearly between the two results by the key's
// fractional position. Keys outside the stored range are clamped to the
// nearest family; a query exactly on a family skips the second level. Snap
// notes record every clamp for UI transparency.
func (fs *FamilySet) Eval(quantity string, key, x float64) (float64, []model.SnapNote) {
	var snaps []model.SnapNote

	clamped := key
	if clamped < fs.keys[0] {
		clamped = fs.keys[0]
	} else if clamped > fs.keys[len(fs.keys)-1] {
		clamped = fs.keys[len(fs.keys)-1]
	}
	if clamped != key {
		snaps = append(snaps, model.SnapNote{Quantity: quantity, Requested: key, Used: clamped})
	}

	// hi is the first key >= clamped; lo the one below it
	hi := sort.SearchFloat64s(fs.keys, clamped)
	if hi == len(fs.keys) {
		hi--
	}
	lo := hi
	if fs.keys[hi] > clamped && hi > 0 {
		lo = hi - 1
	}

	snaps = append(snaps, fs.snapX(quantity, lo, x)...)

	vLo := fs.splines[lo].At(x)
	if lo == hi || fs.keys[lo] == fs.keys[hi] {
		return vLo, snaps
	}
	vHi := fs.splines[hi].At(x)
	frac := (clamped - fs.keys[lo]) / (fs.keys[hi] - fs.keys[lo])
	return vLo + frac*(vHi-vLo), snaps
}

func (fs *FamilySet) snapX(quantity string, i int, x float64) []model.SnapNote {
	lo, hi := fs.splines[i].Domain()
	switch {
	case x < lo:
		return []model.SnapNote{{Quantity: quantity + "_x", Requested: x, Used: lo}}
	case x > hi:
		return []model.SnapNote{{Quantity: quantity + "_x", Requested: x, Used: hi}}
	}
	return nil
}
