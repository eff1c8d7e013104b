package domain

// StyleAxis is one style choice a tailoring product defines, e.g. collar
// shape or cuff type. Every axis must have a selection before the style
// step counts as complete.
type StyleAxis struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// TailoringProduct is a bespoke garment the workshop offers. Its base
// price anchors the estimate; style choices never move the price.
type TailoringProduct struct {
	Name      string      `json:"name"`
	BasePrice int64       `json:"base_price"`
	Axes      []StyleAxis `json:"axes"`
}

// Fabric carries the only price modifier in the estimate model.
type Fabric struct {
	Name     string   `json:"name"`
	Modifier int64    `json:"modifier"`
	Colors   []string `json:"colors"`
}

// StandardSizePreset fills every measurement field atomically when a
// standard size (S/M/L/XL) is chosen instead of custom entry.
type StandardSizePreset struct {
	Size   string                `json:"size"`
	Values map[Dimension]float64 `json:"values"`
}
