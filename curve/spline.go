package curve

import (
	"fmt"
	"sort"
)

// Point is one digitized sample of a reference curve.
type Point struct {
	X float64
	Y float64
}

// Curve is what a coefficient lookup evaluates: either a fitted spline over
// digitized samples or a closed-form approximation. Implementations are pure
// and total over the whole real line (clamping at the domain edges).
type Curve interface {
	At(x float64) float64
	Domain() (lo, hi float64)
}

// MonotoneSpline is a Fritsch-Carlson shape-preserving cubic Hermite spline.
// Between monotone knots it stays monotone; outside the knot range it
// extrapolates flat, so it can never overshoot the digitized data.
type MonotoneSpline struct {
	xs []float64
	ys []float64
	ds []float64 // knot derivatives
}

// NewMonotoneSpline fits the spline through pts. The points are copied and
// sorted by x; duplicate x values are rejected. Fewer than two points
// degenerate to a constant.
func NewMonotoneSpline(pts []Point) (*MonotoneSpline, error) {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	n := len(sorted)
	s := &MonotoneSpline{
		xs: make([]float64, n),
		ys: make([]float64, n),
	}
	for i, p := range sorted {
		if i > 0 && p.X == sorted[i-1].X {
			return nil, fmt.Errorf("curve: duplicate knot x=%g", p.X)
		}
		s.xs[i] = p.X
		s.ys[i] = p.Y
	}
	if n < 2 {
		return s, nil
	}

	dx := make([]float64, n-1)
	m := make([]float64, n-1) // secant slopes
	for i := 0; i < n-1; i++ {
		dx[i] = s.xs[i+1] - s.xs[i]
		m[i] = (s.ys[i+1] - s.ys[i]) / dx[i]
	}

	s.ds = make([]float64, n)
	s.ds[0] = m[0]
	s.ds[n-1] = m[n-2]
	for i := 1; i < n-1; i++ {
		if m[i-1]*m[i] <= 0 {
			// local extremum or flat: zero derivative keeps the shape
			s.ds[i] = 0
			continue
		}
		w1 := 2*dx[i] + dx[i-1]
		w2 := dx[i] + 2*dx[i-1]
		s.ds[i] = (w1 + w2) / (w1/m[i-1] + w2/m[i])
	}
	return s, nil
}

// At evaluates the spline. Queries below the first or above the last knot
// return the nearest endpoint's y.
func (s *MonotoneSpline) At(x float64) float64 {
	n := len(s.xs)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return s.ys[0]
	case x <= s.xs[0]:
		return s.ys[0]
	case x >= s.xs[n-1]:
		return s.ys[n-1]
	}

	// index of the segment start
	i := sort.SearchFloat64s(s.xs, x) - 1

	h := s.xs[i+1] - s.xs[i]
	if h <= 0 {
		return s.ys[i]
	}
	t := (x - s.xs[i]) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*s.ys[i] + h10*h*s.ds[i] + h01*s.ys[i+1] + h11*h*s.ds[i+1]
}

func (s *MonotoneSpline) Domain() (lo, hi float64) {
	if len(s.xs) == 0 {
		return 0, 0
	}
	return s.xs[0], s.xs[len(s.xs)-1]
}
