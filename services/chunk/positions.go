package chunk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/tileworld/services/render"
)

// Size is the edge length of a chunk in tiles.
const Size int32 = 8

// Coords is an integer world tile coordinate.
type Coords struct {
	X, Y int32
}

// Position is an integer chunk coordinate; one unit spans Size tiles.
type Position struct {
	X, Y int32
}

// CoordsFromPosition returns the tile under a continuous world position,
// rounding half away from zero.
func CoordsFromPosition(pos mgl64.Vec2) Coords {
	return Coords{X: int32(math.Round(pos.X())), Y: int32(math.Round(pos.Y()))}
}

// Vec returns the tile coordinate as a continuous position.
func (c Coords) Vec() mgl64.Vec2 {
	return mgl64.Vec2{float64(c.X), float64(c.Y)}
}

// Add offsets c by (dx, dy).
func (c Coords) Add(dx, dy int32) Coords {
	return Coords{X: c.X + dx, Y: c.Y + dy}
}

// PositionFromCoords returns the chunk owning a tile. Negative coordinates
// floor, so tile -1 belongs to chunk -1.
func PositionFromCoords(c Coords) Position {
	return Position{X: floorDiv(c.X, Size), Y: floorDiv(c.Y, Size)}
}

// LocalOffset returns the tile's offset inside its chunk, always in [0, Size).
func LocalOffset(c Coords) (int32, int32) {
	return euclidMod(c.X, Size), euclidMod(c.Y, Size)
}

// Origin returns the tile coordinate of the chunk's (0,0) corner.
func (p Position) Origin() Coords {
	return p.CoordsAt(0, 0)
}

// CoordsAt returns the world tile at local offset (lx, ly) of the chunk.
func (p Position) CoordsAt(lx, ly int32) Coords {
	return Coords{X: p.X*Size + lx, Y: p.Y*Size + ly}
}

// RangeFromRect returns the half-open chunk range [min, max) covering r: the
// minimum corner is floored and the maximum corner ceiled.
func RangeFromRect(r render.Rect) (Position, Position) {
	size := float64(Size)
	lo := Position{
		X: int32(math.Floor(r.X / size)),
		Y: int32(math.Floor(r.Y / size)),
	}
	hi := Position{
		X: int32(math.Ceil((r.X + r.W) / size)),
		Y: int32(math.Ceil((r.Y + r.H) / size)),
	}
	return lo, hi
}

// TilesInRadius returns every tile whose offset from center satisfies
// dx*dx + dy*dy <= radius*radius.
func TilesInRadius(center Coords, radius float64) []Coords {
	if radius < 0 {
		return nil
	}
	reach := int32(radius)
	r2 := radius * radius

	var tiles []Coords
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			if float64(dx*dx+dy*dy) <= r2 {
				tiles = append(tiles, center.Add(dx, dy))
			}
		}
	}
	return tiles
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func euclidMod(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
