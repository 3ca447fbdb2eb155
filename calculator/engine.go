// Package calculator implements the IEC 60890 temperature-rise method:
// forward solve of the mid and top enclosure rises from the standard's
// empirical coefficient curves, and the staged compliance procedure that
// sizes passive dissipation, ventilation and forced airflow when the forward
// result exceeds the allowed internal temperature.
package calculator

import (
	"io"

	log "github.com/sirupsen/logrus"

	"heatcalc/curve"
	"heatcalc/geometry"
	"heatcalc/model"
)

// Engine evaluates enclosure sections against one set of project settings.
// It holds only read-only state (curve store, settings, logger) and is safe
// for concurrent use; every evaluation recomputes from the snapshots it is
// handed.
type Engine struct {
	store    *curve.Store
	settings model.ProjectSettings
	louvre   model.LouvreDefinition
	log      log.FieldLogger
}

// NewEngine builds an engine. logger may be nil; a discard logger is used so
// the math stays free of hidden I/O.
func NewEngine(store *curve.Store, settings model.ProjectSettings, louvre model.LouvreDefinition, logger log.FieldLogger) *Engine {
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Engine{
		store:    store,
		settings: settings,
		louvre:   louvre,
		log:      logger,
	}
}

// Settings returns the project settings the engine was built with.
func (e *Engine) Settings() model.ProjectSettings { return e.settings }

// WithTestVentArea returns a copy of the engine whose ventilation
// recommendation diagnostic uses the given candidate opening area instead of
// the configured one. The curve store and logger are shared.
func (e *Engine) WithTestVentArea(areaCm2 float64) *Engine {
	derived := *e
	derived.settings.TestVentAreaCm2 = areaCm2
	return &derived
}

// EvaluateSection computes the thermal result for one section given the full
// sibling list of its layout. The sibling list may include the section
// itself; call order among siblings does not matter.
func (e *Engine) EvaluateSection(sec model.EnclosureSection, siblings []model.EnclosureSection) model.ThermalResult {
	geom := geometry.Resolve(sec, siblings, e.settings.WallMounted, e.log)

	inlet := e.effectiveInletCm2(sec)
	effectiveVent := sec.Ventilated &&
		geom.AeM2 > geometry.SmallEnclosureAeM2 &&
		IPOpenAreaFactor(e.settings.IPRating) > 0 &&
		inlet > 0

	res := runStages(e.store, stageInput{
		sec:           sec,
		geom:          geom,
		settings:      e.settings,
		effectiveVent: effectiveVent,
		inletCm2:      inlet,
		testVentCm2:   e.settings.TestVentAreaCm2 * IPOpenAreaFactor(e.settings.IPRating),
	})

	e.log.WithFields(log.Fields{
		"section":  sec.Name,
		"outcome":  res.Outcome,
		"ae_m2":    res.AeM2,
		"t_top_c":  res.TTopC,
		"limit_c":  res.LimitC,
		"p_w":      res.PowerW,
		"curve_no": res.CurveNo,
	}).Info("section evaluated")
	return res
}

// EvaluateLayout evaluates every section of a layout against the same
// sibling list. Sections are independent; callers needing more speed can
// shard this loop across goroutines themselves.
func (e *Engine) EvaluateLayout(sections []model.EnclosureSection) []model.ThermalResult {
	results := make([]model.ThermalResult, len(sections))
	for i, sec := range sections {
		results[i] = e.EvaluateSection(sec, sections)
	}
	return results
}

// effectiveInletCm2 resolves the section's usable opening area: an explicit
// inlet area when given, otherwise the louvre grid sized from the project's
// louvre definition. Either way the IP mesh factor applies.
func (e *Engine) effectiveInletCm2(sec model.EnclosureSection) float64 {
	if !sec.Ventilated {
		return 0
	}
	if sec.InletAreaCm2 > 0 {
		return sec.InletAreaCm2 * IPOpenAreaFactor(e.settings.IPRating)
	}
	return SectionLouvreInletAreaCm2(sec, e.louvre, e.settings.IPRating)
}
