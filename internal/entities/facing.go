package entities

// Facing is one of eight compass directions, 0 = north, clockwise.
type Facing int

// Facings
const (
	FacingNorth Facing = iota
	FacingNorthEast
	FacingEast
	FacingSouthEast
	FacingSouth
	FacingSouthWest
	FacingWest
	FacingNorthWest

	facingCount = 8
)

// Position is a tile coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Footprint is a creature's occupied area in tiles.
type Footprint struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// facingOffsets maps a facing to its unit tile step.
var facingOffsets = [facingCount]Position{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Offset returns the unit tile step for the facing.
func (f Facing) Offset() Position {
	return facingOffsets[((f%facingCount)+facingCount)%facingCount]
}

// Opposite returns the facing rotated 180 degrees.
func (f Facing) Opposite() Facing {
	return (f + 4) % facingCount
}

// Rotate returns the facing turned by steps of 45 degrees, positive is
// clockwise.
func (f Facing) Rotate(steps int) Facing {
	r := (int(f) + steps) % facingCount
	if r < 0 {
		r += facingCount
	}
	return Facing(r)
}

// arcDistance is the angular distance between two facings in 45-degree
// steps, always in [0,4].
func arcDistance(a, b Facing) int {
	d := int(a-b) % facingCount
	if d < 0 {
		d += facingCount
	}
	if d > facingCount/2 {
		d = facingCount - d
	}
	return d
}

// DirectionTo returns the facing that best approximates the step from one
// position toward another. Equal positions return FacingNorth.
func DirectionTo(from, to Position) Facing {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	for f, off := range facingOffsets {
		if off.X == dx && off.Y == dy {
			return Facing(f)
		}
	}
	return FacingNorth
}

// TileDistance is the tile distance between two positions: diagonal steps
// count as one.
func TileDistance(a, b Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
