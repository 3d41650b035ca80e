package entities

// LightLevel is the illumination of a tile as seen by a viewer.
type LightLevel int

// Light levels, darkest first.
const (
	LightDark LightLevel = iota
	LightDim
	LightLit
)

// String returns the light level name.
func (l LightLevel) String() string {
	switch l {
	case LightDark:
		return "dark"
	case LightDim:
		return "dim"
	case LightLit:
		return "lit"
	default:
		return "unknown"
	}
}
