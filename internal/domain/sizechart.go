package domain

// Dimension is one measurable garment axis, in centimeters.
type Dimension string

const (
	DimChestWidth    Dimension = "chestWidth"
	DimWaist         Dimension = "waist"
	DimHip           Dimension = "hip"
	DimThigh         Dimension = "thigh"
	DimInseam        Dimension = "inseam"
	DimLength        Dimension = "length"
	DimShoulderWidth Dimension = "shoulderWidth"
	DimSleeveLength  Dimension = "sleeveLength"
)

// MeasurementRange is an inclusive [min,max] band in cm.
type MeasurementRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r MeasurementRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// DimensionRange binds one dimension to its inclusive band. Authored
// order is preserved so validation reports the first missing dimension
// deterministically.
type DimensionRange struct {
	Dimension Dimension        `json:"dimension"`
	Range     MeasurementRange `json:"range"`
}

// SizeDetail lists the dimensions a chart author chose to define for one
// size label. Dimensions absent here are never required from the user.
type SizeDetail struct {
	Size   string           `json:"size"`
	Ranges []DimensionRange `json:"ranges"`
}

// SizeChart holds size details in authored order, smallest to largest.
// Order is significant: the first matching size wins.
type SizeChart struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category Category     `json:"category"`
	Style    string       `json:"style,omitempty"`
	Details  []SizeDetail `json:"details"`
}
