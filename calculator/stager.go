package calculator

import (
	"math"

	"heatcalc/curve"
	"heatcalc/geometry"
	"heatcalc/model"
)

// stageInput is everything the staged compliance procedure needs for one
// section, resolved by the engine beforehand.
type stageInput struct {
	sec      model.EnclosureSection
	geom     geometry.Geometry
	settings model.ProjectSettings

	effectiveVent bool
	inletCm2      float64
	// testVentCm2 is the IP-derated candidate opening for the ventilation
	// recommendation diagnostic; zero disables stage 4.
	testVentCm2 float64
}

// runStages walks the decision procedure in strict order of precedence.
// Every stage is a pure computation ending in a well-defined result record;
// nothing here can fail.
func runStages(store *curve.Store, in stageInput) model.ThermalResult {
	g := in.geom
	power := math.Max(0, in.sec.HeatW)
	limit := in.sec.EffectiveMaxTempC()
	effAmbient := in.settings.AmbientC + in.settings.SolarOffsetK

	res := model.ThermalResult{
		Tag:               in.sec.Name,
		WidthM:            g.WidthM,
		HeightM:           g.HeightM,
		DepthM:            g.DepthM,
		AeM2:              g.AeM2,
		PowerW:            power,
		CurveNo:           g.CurveNo,
		Ventilated:        in.effectiveVent,
		EffectiveInletCm2: in.inletCm2,
		WallMounted:       in.settings.WallMounted,
		AmbientC:          in.settings.AmbientC,
		SolarOffsetK:      in.settings.SolarOffsetK,
		LimitC:            limit,
		Surfaces:          g.Surfaces,
	}

	// Stage 1: the environment alone already rules the configuration out.
	if effAmbient >= limit {
		res.Outcome = model.OutcomeInfeasible
		if in.settings.AmbientC >= limit {
			res.InfeasibleCauses = append(res.InfeasibleCauses, model.CauseAmbient)
			if in.settings.SolarOffsetK > 0 {
				res.InfeasibleCauses = append(res.InfeasibleCauses, model.CauseSolar)
			}
		} else {
			res.InfeasibleCauses = append(res.InfeasibleCauses, model.CauseSolar)
		}
		res.TMidC = effAmbient
		res.TTopC = effAmbient
		res.X = ExponentSealed
		return res
	}

	// Stage 2: forward model.
	fwd := Forward(store, ForwardInput{
		Geom:          g,
		PowerW:        power,
		EffectiveVent: in.effectiveVent,
		InletCm2:      in.inletCm2,
		CurveNo:       g.CurveNo,
	})
	applyForward(&res, fwd, effAmbient, limit)

	if res.CompliantTop {
		res.Outcome = model.OutcomeCompliant
		return res
	}

	// Stage 3: passive dissipation through the enclosure sheet.
	allowedRise := limit - effAmbient
	var pPassive float64
	if in.settings.AllowMaterialDissipation {
		pPassive = invertPassive(store, g, g.CurveNo, allowedRise, in.settings.AltitudeM)
	}
	if pPassive >= power {
		res.Outcome = model.OutcomeCompliantDissipation
		res.PMaterialW = power
		return res
	}

	// Stage 4: would added ventilation fix it? Diagnostic only; the
	// hypothetical run never leaks into the reported coefficients.
	if !in.effectiveVent && g.AeM2 > geometry.SmallEnclosureAeM2 && in.testVentCm2 > 0 {
		hyp := Forward(store, ForwardInput{
			Geom:          g,
			PowerW:        power,
			EffectiveVent: true,
			InletCm2:      in.testVentCm2,
			CurveNo:       g.CurveNo,
		})
		if effAmbient+hyp.DtTopK <= limit {
			res.VentRecommended = true
		}
	}

	// Stage 5: size the forced airflow for the residual heat.
	res.Outcome = model.OutcomeRequiresCooling
	res.PMaterialW = math.Min(power, pPassive)
	res.PCoolingW = math.Max(0, power-pPassive)
	res.AirflowM3h = RequiredAirflowM3h(res.PCoolingW, allowedRise, AirHeatCapacityAt(in.settings.AltitudeM))
	return res
}

func applyForward(res *model.ThermalResult, fwd ForwardResult, effAmbient, limit float64) {
	res.K = fwd.K
	res.C = fwd.C
	res.X = fwd.X
	res.F = fwd.F
	res.G = fwd.G
	res.DtMidK = fwd.DtMidK
	res.DtTopK = fwd.DtTopK
	res.DtTopRawK = fwd.DtTopRawK
	res.Dt075K = fwd.Dt075K
	res.FiguresUsed = fwd.FiguresUsed
	res.Snapped = fwd.Snapped

	res.TMidC = effAmbient + fwd.DtMidK
	res.TTopC = effAmbient + fwd.DtTopK
	if fwd.Dt075K != nil {
		t075 := effAmbient + *fwd.Dt075K
		res.T075C = &t075
	}
	res.CompliantMid = res.TMidC <= limit
	res.CompliantTop = res.TTopC <= limit
}
