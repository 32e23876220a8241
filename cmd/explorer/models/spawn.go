package models

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/tileworld/services/chunk"
	"github.com/VoidMesh/tileworld/services/tile"
	"github.com/VoidMesh/tileworld/services/world"
)

// FindSpawn returns the safe walkable tile nearest the origin, scanning
// square rings out to radius. ok is false when none is generated.
func FindSpawn(w *world.World, radius int32) (mgl64.Vec2, bool) {
	for r := int32(0); r <= radius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				c := chunk.Coords{X: dx, Y: dy}
				if t, ok := w.Tile(c); ok && t.Interaction == tile.Walkable && t.Action == tile.None {
					return c.Vec(), true
				}
			}
		}
	}
	return mgl64.Vec2{}, false
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
