package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatcalc/curve"
	"heatcalc/model"
)

func stageSettings() model.ProjectSettings {
	return model.ProjectSettings{
		AmbientC:                 35,
		AllowMaterialDissipation: true,
		TestVentAreaCm2:          300,
	}
}

func stageSection(heatW float64) model.EnclosureSection {
	return model.EnclosureSection{
		Name:    "col-1",
		Rect:    model.Rect{W: 600, H: 1200},
		DepthMM: 400,
		HeatW:   heatW,
	}
}

func runOne(t *testing.T, sec model.EnclosureSection, settings model.ProjectSettings) model.ThermalResult {
	t.Helper()
	store := curve.NewDefaultStore()
	return runStages(store, stageInput{
		sec:         sec,
		geom:        resolveGeom(sec.Rect.W, sec.Rect.H, sec.DepthMM),
		settings:    settings,
		testVentCm2: settings.TestVentAreaCm2,
	})
}

func TestStageInfeasibleAmbient(t *testing.T) {
	settings := stageSettings()
	settings.AmbientC = 80

	res := runOne(t, stageSection(10), settings)
	assert.Equal(t, model.OutcomeInfeasible, res.Outcome)
	assert.Equal(t, []string{model.CauseAmbient}, res.InfeasibleCauses)
	assert.Equal(t, 80.0, res.TTopC)
}

func TestStageInfeasibleAmbientAndSolar(t *testing.T) {
	settings := stageSettings()
	settings.AmbientC = 80
	settings.SolarOffsetK = 5

	res := runOne(t, stageSection(10), settings)
	assert.Equal(t, model.OutcomeInfeasible, res.Outcome)
	assert.Equal(t, []string{model.CauseAmbient, model.CauseSolar}, res.InfeasibleCauses)
}

func TestStageInfeasibleSolarAlone(t *testing.T) {
	settings := stageSettings()
	settings.AmbientC = 65
	settings.SolarOffsetK = 10

	res := runOne(t, stageSection(10), settings)
	assert.Equal(t, model.OutcomeInfeasible, res.Outcome)
	assert.Equal(t, []string{model.CauseSolar}, res.InfeasibleCauses)
}

func TestStageCompliant(t *testing.T) {
	res := runOne(t, stageSection(200), stageSettings())

	assert.Equal(t, model.OutcomeCompliant, res.Outcome)
	assert.True(t, res.CompliantTop)
	assert.LessOrEqual(t, res.TTopC, res.LimitC)
	assert.Nil(t, res.AirflowM3h)
	assert.Equal(t, 0.0, res.PCoolingW)
}

func TestStageRequiresCooling(t *testing.T) {
	res := runOne(t, stageSection(1000), stageSettings())

	assert.Equal(t, model.OutcomeRequiresCooling, res.Outcome)
	assert.False(t, res.CompliantTop)
	assert.Greater(t, res.PMaterialW, 0.0)
	assert.Greater(t, res.PCoolingW, 0.0)
	assert.InDelta(t, 1000.0, res.PMaterialW+res.PCoolingW, 1e-9)
	require.NotNil(t, res.AirflowM3h)
	assert.Greater(t, *res.AirflowM3h, 0.0)
}

func TestStageDissipationDisabled(t *testing.T) {
	settings := stageSettings()
	settings.AllowMaterialDissipation = false

	res := runOne(t, stageSection(1000), settings)
	assert.Equal(t, model.OutcomeRequiresCooling, res.Outcome)
	assert.Equal(t, 0.0, res.PMaterialW)
	assert.InDelta(t, 1000.0, res.PCoolingW, 1e-9)
}

func TestStageAirflowMonotonicInPower(t *testing.T) {
	prev := 0.0
	for _, p := range []float64{800, 1200, 2000, 5000} {
		res := runOne(t, stageSection(p), stageSettings())
		require.Equal(t, model.OutcomeRequiresCooling, res.Outcome, "p=%g", p)
		require.NotNil(t, res.AirflowM3h)
		assert.Greater(t, *res.AirflowM3h, prev, "p=%g", p)
		prev = *res.AirflowM3h
	}
}

func TestStageVentRecommendation(t *testing.T) {
	// 300 W fails sealed but would pass with the candidate opening
	res := runOne(t, stageSection(300), stageSettings())
	assert.Equal(t, model.OutcomeRequiresCooling, res.Outcome)
	assert.True(t, res.VentRecommended)

	// 1000 W fails either way
	res = runOne(t, stageSection(1000), stageSettings())
	assert.False(t, res.VentRecommended)
}

func TestStageVentRecommendationDisabled(t *testing.T) {
	settings := stageSettings()
	settings.TestVentAreaCm2 = 0

	res := runOne(t, stageSection(300), settings)
	assert.Equal(t, model.OutcomeRequiresCooling, res.Outcome)
	assert.False(t, res.VentRecommended)
}

func TestStageAltitudeIncreasesAirflow(t *testing.T) {
	// thinner air moves less heat per volume: the same residual power needs
	// more flow at altitude
	seaLevel := stageSettings()
	seaLevel.AllowMaterialDissipation = false
	elevated := seaLevel
	elevated.AltitudeM = 2000

	low := runOne(t, stageSection(2000), seaLevel)
	high := runOne(t, stageSection(2000), elevated)
	require.NotNil(t, low.AirflowM3h)
	require.NotNil(t, high.AirflowM3h)
	assert.Greater(t, *high.AirflowM3h, *low.AirflowM3h)
}

func TestStageSolarRaisesTemperatures(t *testing.T) {
	base := runOne(t, stageSection(200), stageSettings())

	settings := stageSettings()
	settings.SolarOffsetK = 8
	sunny := runOne(t, stageSection(200), settings)

	assert.InDelta(t, base.TTopC+8, sunny.TTopC, 1e-9)
	assert.Equal(t, base.DtTopK, sunny.DtTopK)
}

func TestStageCustomLimit(t *testing.T) {
	sec := stageSection(200)
	sec.MaxTempC = 55

	res := runOne(t, sec, stageSettings())
	assert.Equal(t, 55.0, res.LimitC)
	// 200 W is compliant against 70 but not against 55
	assert.Equal(t, model.OutcomeRequiresCooling, res.Outcome)
}
