package figures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatcalc/curve"
	"heatcalc/model"
)

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := NewRenderer(curve.NewDefaultStore())

	require.NoError(t, r.RenderAll(dir, nil))

	for _, name := range []string{"fig3.png", "fig4.png", "fig5.png", "fig6.png", "fig7.png", "fig8.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRenderAllWithMark(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(curve.NewDefaultStore())

	res := &model.ThermalResult{
		AeM2:        2.496,
		K:           0.33,
		C:           1.25,
		FiguresUsed: []string{"Fig. 3", "Fig. 4", "Fig. 1"},
	}
	f := 5.33
	res.F = &f

	require.NoError(t, r.RenderAll(dir, res))
}

func TestUsedFigure(t *testing.T) {
	res := &model.ThermalResult{FiguresUsed: []string{"Fig. 7", "Fig. 8", "Fig. 2"}}

	assert.True(t, usedFigure(res, "Fig. 7"))
	assert.False(t, usedFigure(res, "Fig. 3"))
	assert.False(t, usedFigure(nil, "Fig. 7"))
}
