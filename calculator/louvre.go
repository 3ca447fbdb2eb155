package calculator

import "heatcalc/model"

// IP mesh open-area factors for ventilation openings. Higher IP ratings need
// finer mesh, which blocks part of the manufacturer's nominal inlet area.
// IP5X and above are sealed: openings are ignored entirely.
var ipMeshOpenArea = map[int]float64{
	2: 1.00,
	3: 0.65,
	4: 0.45,
}

// IPOpenAreaFactor returns the fraction of an opening that stays effective
// under the given IP rating.
func IPOpenAreaFactor(ipRating int) float64 {
	if ipRating >= 5 {
		return 0.0
	}
	if f, ok := ipMeshOpenArea[ipRating]; ok {
		return f
	}
	return 1.0
}

// EffectiveLouvreAreaCm2 is the effective free inlet area of one louvre.
func EffectiveLouvreAreaCm2(def model.LouvreDefinition, ipRating int) float64 {
	return def.InletAreaCm2 * IPOpenAreaFactor(ipRating)
}

// SectionLouvreInletAreaCm2 sizes a section's total effective inlet area from
// its louvre grid: a bottom block of rows, a matching top block, plus one
// chimney row at the top.
func SectionLouvreInletAreaCm2(sec model.EnclosureSection, def model.LouvreDefinition, ipRating int) float64 {
	if ipRating >= 5 || !sec.Ventilated || !def.Valid() {
		return 0
	}
	cols := sec.VentCols
	if cols < 1 {
		cols = 1
	}
	rowsBottom := sec.VentRows
	if rowsBottom < 1 {
		rowsBottom = 1
	}
	totalLouvres := float64(cols * (2*rowsBottom + 1))
	return totalLouvres * EffectiveLouvreAreaCm2(def, ipRating)
}
