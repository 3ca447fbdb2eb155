package model

// The coordinate system follows the layout editor: the origin is the top-left corner of the
// switchboard outline, x grows to the right, y grows downward. All layout
// lengths are millimetres.

// Rect is an axis-aligned rectangle in the shared layout plane, mm.
type Rect struct {
	X float64 `json:"x_mm"`
	Y float64 `json:"y_mm"`
	W float64 `json:"width_mm"`
	H float64 `json:"height_mm"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// EnclosureSection is one vertically stacked compartment ("tier") of a
// switchboard. The thermal engine reads a snapshot of this struct plus the
// sibling list for the same layout; it never mutates either.
type EnclosureSection struct {
	Name string `json:"name"`
	Rect Rect   `json:"rect"`
	// DepthMM is the front-to-back depth, not visible in the 2-D layout.
	DepthMM float64 `json:"depth_mm"`

	// HeatW is the aggregate internal power dissipation of the contained
	// components, W. Components themselves are opaque to the engine.
	HeatW float64 `json:"heat_w"`

	Ventilated    bool    `json:"ventilated"`
	InletAreaCm2  float64 `json:"inlet_area_cm2"`
	VentInstalled bool    `json:"vent_installed"`
	// VentCols/VentRows describe the louvre grid when the inlet area is to be
	// derived from a louvre definition instead of given directly.
	VentCols int `json:"vent_cols"`
	VentRows int `json:"vent_rows"`

	// MaxTempC is the maximum allowed internal temperature. Zero means "use
	// the default", which stands in for the lowest rating among the contained
	// components (resolved by the layout editor before snapshotting).
	MaxTempC float64 `json:"max_temp_c"`
}

// DefaultMaxTempC applies when a section carries no explicit limit.
const DefaultMaxTempC = 70.0

func (s EnclosureSection) EffectiveMaxTempC() float64 {
	if s.MaxTempC > 0 {
		return s.MaxTempC
	}
	return DefaultMaxTempC
}

// WidthMM and HeightMM are clamped to one millimetre so degenerate rectangles
// from the editor flow into finite results instead of dividing by zero.
func (s EnclosureSection) WidthMM() float64 {
	if s.Rect.W < 1 {
		return 1
	}
	return s.Rect.W
}

func (s EnclosureSection) HeightMM() float64 {
	if s.Rect.H < 1 {
		return 1
	}
	return s.Rect.H
}

// ProjectSettings are the layout-wide scalars supplied by the host once per
// evaluation run.
type ProjectSettings struct {
	AmbientC     float64 `json:"ambient_c"`
	AltitudeM    float64 `json:"altitude_m"`
	SolarOffsetK float64 `json:"solar_offset_k"`

	// IPRating is the first characteristic numeral of the assembly's IP code.
	// IP5X and above seal the enclosure: ventilation openings are ignored.
	IPRating int `json:"ip_rating_n"`

	EnclosureMaterial        string  `json:"enclosure_material"`
	MaterialKWm2K            float64 `json:"enclosure_k_w_m2k"`
	AllowMaterialDissipation bool    `json:"allow_material_dissipation"`

	// WallMounted applies uniformly to every section of the layout.
	WallMounted bool `json:"wall_mounted"`

	// TestVentAreaCm2 is the candidate opening area for the ventilation
	// recommendation diagnostic. Zero disables the diagnostic.
	TestVentAreaCm2 float64 `json:"test_vent_area_cm2"`
}

// LouvreDefinition describes one louvre product used to build vent grids.
type LouvreDefinition struct {
	Label        string  `json:"label"`
	InletAreaCm2 float64 `json:"inlet_area_cm2"`
	WidthMM      float64 `json:"width_mm"`
	HeightMM     float64 `json:"height_mm"`
}

func (d LouvreDefinition) Valid() bool {
	return d.InletAreaCm2 > 0
}

// Msg is the websocket envelope shared with the UI. Content carries a
// JSON-encoded payload whose shape depends on Type.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
