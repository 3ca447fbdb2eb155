package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCNoVentsCurveOffsets(t *testing.T) {
	s := NewDefaultStore()

	base, _ := s.CNoVents(1, 5)
	for curveNo := 2; curveNo <= 5; curveNo++ {
		c, _ := s.CNoVents(curveNo, 5)
		assert.InDelta(t, base+fig4CurveOffsets[curveNo], c, 1e-12, "curve %d", curveNo)
	}
}

func TestCNoVentsClampsCurveNumber(t *testing.T) {
	s := NewDefaultStore()

	low, _ := s.CNoVents(0, 5)
	one, _ := s.CNoVents(1, 5)
	assert.Equal(t, one, low)

	high, _ := s.CNoVents(9, 5)
	five, _ := s.CNoVents(5, 5)
	assert.Equal(t, five, high)
}

func TestCSmallNoVentsAnchors(t *testing.T) {
	s := NewDefaultStore()

	c1, _ := s.CSmallNoVents(fig8AnchorG1)
	assert.InDelta(t, fig8AnchorC1, c1, 1e-9)
	c2, _ := s.CSmallNoVents(fig8AnchorG2)
	assert.InDelta(t, fig8AnchorC2, c2, 1e-9)

	// clamped below and above the anchors
	below, _ := s.CSmallNoVents(0.1)
	assert.Equal(t, c1, below)
	above, _ := s.CSmallNoVents(10)
	assert.Equal(t, c2, above)
}

func TestKNoVentsDecreasesWithAe(t *testing.T) {
	s := NewDefaultStore()

	prev, _ := s.KNoVents(1.25)
	for ae := 1.5; ae <= 14; ae += 0.5 {
		k, _ := s.KNoVents(ae)
		assert.Less(t, k, prev, "ae=%g", ae)
		prev = k
	}
}

func TestKNoVentsClampSnap(t *testing.T) {
	s := NewDefaultStore()

	edge, snaps := s.KNoVents(14)
	assert.Empty(t, snaps)

	k, snaps := s.KNoVents(20)
	assert.Equal(t, edge, k)
	require.Len(t, snaps, 1)
	assert.Equal(t, "fig3_ae", snaps[0].Quantity)
	assert.Equal(t, 20.0, snaps[0].Requested)
	assert.Equal(t, 14.0, snaps[0].Used)
}

func TestKVentsBetweenFamilies(t *testing.T) {
	s := NewDefaultStore()

	k2, _ := s.KVents(2, 300)
	k3, _ := s.KVents(3, 300)
	kMid, _ := s.KVents(2.5, 300)
	assert.Greater(t, k2, kMid)
	assert.Greater(t, kMid, k3)
	assert.InDelta(t, 0.5*(k2+k3), kMid, 1e-12)
}

func TestKVentsDecreasesWithInlet(t *testing.T) {
	s := NewDefaultStore()

	prev, _ := s.KVents(4, 50)
	for inlet := 100.0; inlet <= 700; inlet += 50 {
		k, _ := s.KVents(4, inlet)
		assert.Less(t, k, prev, "inlet=%g", inlet)
		prev = k
	}
}

func TestCVentsIncreasesWithInlet(t *testing.T) {
	s := NewDefaultStore()

	prev, _ := s.CVents(5, 50)
	for inlet := 100.0; inlet <= 700; inlet += 50 {
		c, _ := s.CVents(5, inlet)
		assert.Greater(t, c, prev, "inlet=%g", inlet)
		prev = c
	}
}

func TestStoreFamilyKeys(t *testing.T) {
	s := NewDefaultStore()

	assert.Equal(t, []float64{1, 2, 3, 4, 6, 8, 10, 12, 14}, s.KVentFamilies())
	assert.Equal(t, []float64{1.5, 3, 5, 7.5, 10}, s.CVentFamilies())
}

func TestNewStoreOverridesOneFigure(t *testing.T) {
	custom, err := NewStore(StoreData{
		Fig3: []Point{{1.25, 1.0}, {14, 0.5}},
	})
	require.NoError(t, err)

	k, _ := custom.KNoVents(1.25)
	assert.Equal(t, 1.0, k)

	// the other figures keep the built-in data
	def := NewDefaultStore()
	want, _ := def.KSmallNoVents(0.5)
	got, _ := custom.KSmallNoVents(0.5)
	assert.Equal(t, want, got)
}

func TestNewPowerLawThrough(t *testing.T) {
	p := NewPowerLawThrough(2, 8, 4, 64)

	// y = x^3 through both anchors
	assert.InDelta(t, 8, p.At(2), 1e-9)
	assert.InDelta(t, 64, p.At(4), 1e-9)
	assert.InDelta(t, 27, p.At(3), 1e-9)

	lo, hi := p.Domain()
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)
	assert.Equal(t, p.At(2), p.At(1))
	assert.Equal(t, p.At(4), p.At(9))
}
