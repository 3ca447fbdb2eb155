package calculator

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

var altitudeInterp interp.PiecewiseLinear

func init() {
	if err := altitudeInterp.Fit(altitudeM, altitudeFactor); err != nil {
		panic(err)
	}
}

// AltitudeFactor returns the derating factor for the given installation
// altitude, clamped to the table's 0-3000 m range.
func AltitudeFactor(altM float64) float64 {
	if altM < altitudeM[0] {
		altM = altitudeM[0]
	} else if altM > altitudeM[len(altitudeM)-1] {
		altM = altitudeM[len(altitudeM)-1]
	}
	return altitudeInterp.Predict(altM)
}

// AirHeatCapacityAt is the altitude-derated volumetric heat capacity,
// J/(m³·K).
func AirHeatCapacityAt(altM float64) float64 {
	return AirHeatCapacityJm3K * AltitudeFactor(altM)
}

// RequiredAirflowM3h inverts the steady-state air-handling heat balance:
// flow = P / (cv * ΔT), converted to m³/h. It returns nil when the inversion
// is ill-posed (allowed rise or heat capacity not positive) — the one place
// a caller must branch on a missing result — and zero for non-positive power.
func RequiredAirflowM3h(powerW, allowedRiseK, heatCapJm3K float64) *float64 {
	if allowedRiseK <= 0 || heatCapJm3K <= 0 {
		return nil
	}
	if powerW <= 0 {
		zero := 0.0
		return &zero
	}
	flow := powerW / (heatCapJm3K * allowedRiseK) * secondsPerHour
	return &flow
}

// WallLossResult is the outcome of the legacy parallel-path balance.
type WallLossResult struct {
	DeltaTK    float64
	QWallsW    float64
	QFansW     float64
	AirflowM3h *float64
}

// RequiredAirflowWithWallLoss is the older sizing formula kept for report
// parity: walls reject q = k*A*ΔT in parallel with the fans, air properties
// are explicit and a safety factor covers mixing losses. The staged
// compliance path does not use it; stage 3 inverts the enclosure curves
// instead (Annex K style).
func RequiredAirflowWithWallLoss(
	powerW, ambientC, maxInternalC, areaM2 float64,
	allowWallDissipation bool,
	kWm2K, rhoKgM3, cpJkgK, safetyFactor float64,
) WallLossResult {
	deltaT := maxInternalC - ambientC

	if powerW <= 0 {
		zero := 0.0
		return WallLossResult{DeltaTK: deltaT, AirflowM3h: &zero}
	}
	if deltaT <= 0 {
		return WallLossResult{DeltaTK: deltaT, QFansW: powerW}
	}

	qWalls := 0.0
	if allowWallDissipation && areaM2 > 0 {
		qWalls = math.Min(kWm2K*areaM2*deltaT, powerW)
	}
	qFans := math.Max(0, powerW-qWalls)

	flow := qFans / (rhoKgM3 * cpJkgK * deltaT) * secondsPerHour * safetyFactor
	return WallLossResult{
		DeltaTK:    deltaT,
		QWallsW:    qWalls,
		QFansW:     qFans,
		AirflowM3h: &flow,
	}
}
