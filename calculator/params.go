package calculator

// IEC 60890 model constants.

const (
	// Power-law exponent x in dt = k * d * P^x.
	ExponentVentilated = 0.715
	ExponentSealed     = 0.804

	// d-factor for enclosures with horizontal partitions (Table IV). A single
	// compartment has no partitions; a partition count input can replace this
	// constant when the layout model grows one.
	DFactor = 1.0

	// Volumetric heat capacity of dry air at sea level, J/(m³·K).
	AirHeatCapacityJm3K = 1160.0

	secondsPerHour = 3600.0
)

// Altitude derating of the air's volumetric heat capacity: factor 1.00 at sea
// level down to 0.71 at 3000 m, linear between points, clamped outside.
var (
	altitudeM      = []float64{0, 500, 1000, 1500, 2000, 2500, 3000}
	altitudeFactor = []float64{1.00, 0.95, 0.90, 0.86, 0.81, 0.76, 0.71}
)
