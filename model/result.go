package model

// Evaluation outcome, in order of stage precedence.
const (
	OutcomeInfeasible           = "infeasible"
	OutcomeCompliant            = "compliant"
	OutcomeCompliantDissipation = "compliant_dissipation"
	OutcomeRequiresCooling      = "requires_cooling"
)

// Stage-1 infeasibility causes.
const (
	CauseAmbient = "ambient"
	CauseSolar   = "solar"
)

// SurfaceContribution is one face's share of the effective cooling surface.
type SurfaceContribution struct {
	Name        string  `json:"name"`
	Dim1M       float64 `json:"dim1_m"`
	Dim2M       float64 `json:"dim2_m"`
	AreaM2      float64 `json:"area_m2"`
	Factor      float64 `json:"factor"`
	EffectiveM2 float64 `json:"effective_m2"`
}

// SnapNote records that a curve lookup was clamped to its digitized domain,
// so the UI can show e.g. that Ae=15 m² was evaluated on the 14 m² family.
type SnapNote struct {
	Quantity  string  `json:"quantity"`
	Requested float64 `json:"requested"`
	Used      float64 `json:"used"`
}

// ThermalResult is the engine's output for one EnclosureSection. It is a pure
// computed value, recomputed from scratch on every call.
type ThermalResult struct {
	Tag string `json:"tag"`

	// Geometry as evaluated.
	WidthM  float64 `json:"w_m"`
	HeightM float64 `json:"h_m"`
	DepthM  float64 `json:"d_m"`
	AeM2    float64 `json:"ae_m2"`

	// Coefficients as applied.
	PowerW  float64  `json:"p_w"`
	K       float64  `json:"k"`
	C       float64  `json:"c"`
	X       float64  `json:"x"`
	F       *float64 `json:"f,omitempty"`
	G       *float64 `json:"g,omitempty"`
	CurveNo int      `json:"curve_no"`

	Ventilated        bool    `json:"ventilated"`
	EffectiveInletCm2 float64 `json:"effective_inlet_cm2"`
	WallMounted       bool    `json:"wall_mounted"`

	AmbientC     float64 `json:"ambient_c"`
	SolarOffsetK float64 `json:"solar_offset_k"`

	// Temperature rises, K. Dt075K is only set on the small-enclosure branch
	// where the reported top equals the three-quarter-height construction.
	DtMidK    float64  `json:"dt_mid_k"`
	DtTopK    float64  `json:"dt_top_k"`
	DtTopRawK float64  `json:"dt_top_raw_k"`
	Dt075K    *float64 `json:"dt_075_k,omitempty"`

	// Absolute temperatures, °C (ambient + solar offset + rise).
	TMidC float64  `json:"t_mid_c"`
	TTopC float64  `json:"t_top_c"`
	T075C *float64 `json:"t_075_c,omitempty"`

	LimitC       float64 `json:"limit_c"`
	CompliantMid bool    `json:"compliant_mid"`
	CompliantTop bool    `json:"compliant_top"`

	Outcome          string   `json:"outcome"`
	InfeasibleCauses []string `json:"infeasible_causes,omitempty"`

	// Cooling power decomposition: dissipated through the enclosure walls vs
	// requiring active cooling, and the sized airflow for the latter. A nil
	// airflow with non-zero PCoolingW marks an ill-posed inversion.
	PMaterialW      float64  `json:"p_material_w"`
	PCoolingW       float64  `json:"p_cooling_w"`
	AirflowM3h      *float64 `json:"airflow_m3h,omitempty"`
	VentRecommended bool     `json:"vent_recommended"`

	Surfaces    []SurfaceContribution `json:"surfaces"`
	FiguresUsed []string              `json:"figures_used"`
	Snapped     []SnapNote            `json:"snapped,omitempty"`
}
