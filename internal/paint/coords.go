package paint

// Direction is one of the four compass-aligned orientations of a tile.
type Direction uint8

const (
	DirectionWest Direction = iota
	DirectionNorth
	DirectionEast
	DirectionSouth
)

// NumOrthogonalDirections is the number of values a Direction can take.
const NumOrthogonalDirections = 4

// Add rotates the direction by n quarter turns. n may be negative.
func (d Direction) Add(n int) Direction {
	return Direction((int(d) + n) & 3)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return d.Add(2)
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d < NumOrthogonalDirections
}

// CoordsXY is a position on the map in world units (32 per tile).
type CoordsXY struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// CoordsXYZ is a 3D position or extent in world units.
type CoordsXYZ struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
	Z int32 `yaml:"z"`
}

// WithZ returns c raised by z.
func (c CoordsXYZ) WithZ(z int32) CoordsXYZ {
	c.Z += z
	return c
}

func (c CoordsXYZ) swapXY() CoordsXYZ {
	return CoordsXYZ{X: c.Y, Y: c.X, Z: c.Z}
}

// BoundBoxXYZ is the sorting box of a sprite: Offset is the near corner
// relative to the tile origin, Length the extent along each axis.
type BoundBoxXYZ struct {
	Offset CoordsXYZ `yaml:"offset,flow"`
	Length CoordsXYZ `yaml:"length,flow"`
}

// WithZ returns the box with its offset raised by z. The extent is unchanged.
func (bb BoundBoxXYZ) WithZ(z int32) BoundBoxXYZ {
	bb.Offset = bb.Offset.WithZ(z)
	return bb
}

// Rotate returns the box as it lies on a tile rotated to direction. Odd
// directions swap the X and Y axes of both offset and extent.
func (bb BoundBoxXYZ) Rotate(direction Direction) BoundBoxXYZ {
	if direction&1 == 0 {
		return bb
	}
	return BoundBoxXYZ{Offset: bb.Offset.swapXY(), Length: bb.Length.swapXY()}
}

// GetBounds returns the min/max corners of the box.
func (bb BoundBoxXYZ) GetBounds() (min, max CoordsXYZ) {
	min = bb.Offset
	max = CoordsXYZ{
		X: bb.Offset.X + bb.Length.X,
		Y: bb.Offset.Y + bb.Length.Y,
		Z: bb.Offset.Z + bb.Length.Z,
	}
	return min, max
}

// GetCorners returns the eight corners of the box, bottom face first.
func (bb BoundBoxXYZ) GetCorners() [8]CoordsXYZ {
	lo, hi := bb.GetBounds()
	return [8]CoordsXYZ{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, hi.Y, lo.Z}, {lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {lo.X, hi.Y, hi.Z},
	}
}
