package chunk

import (
	"github.com/VoidMesh/tileworld/services/render"
	"github.com/VoidMesh/tileworld/services/tile"
)

// Sampler is the noise field chunks are generated from. Sample returns a
// value in [0,1] for a tile-space coordinate.
type Sampler interface {
	Sample(x, y float64) float64
}

// Chunk is a Size x Size grid of fully classified tiles.
type Chunk struct {
	pos   Position
	tiles [Size * Size]tile.Tile
}

// Generate samples the field once per tile of the chunk at pos.
func Generate(pos Position, field Sampler) *Chunk {
	c := &Chunk{pos: pos}
	for lx := int32(0); lx < Size; lx++ {
		for ly := int32(0); ly < Size; ly++ {
			at := pos.CoordsAt(lx, ly)
			c.tiles[index(lx, ly)] = tile.Classify(field.Sample(float64(at.X), float64(at.Y)))
		}
	}
	return c
}

// index is column-major: local x selects the column.
func index(lx, ly int32) int32 {
	return lx*Size + ly
}

func (c *Chunk) Position() Position {
	return c.pos
}

// Tile returns the tile at a local offset; offsets must be in [0, Size).
func (c *Chunk) Tile(lx, ly int32) tile.Tile {
	return c.tiles[index(lx, ly)]
}

// SetTile replaces the tile at a local offset.
func (c *Chunk) SetTile(lx, ly int32, t tile.Tile) {
	c.tiles[index(lx, ly)] = t
}

// Render paints one unit square per tile at its world tile coordinate.
func (c *Chunk) Render(p render.Painter) {
	for lx := int32(0); lx < Size; lx++ {
		for ly := int32(0); ly < Size; ly++ {
			at := c.pos.CoordsAt(lx, ly)
			p.FillRect(float64(at.X), float64(at.Y), 1, 1, c.tiles[index(lx, ly)].Texture.Color())
		}
	}
}

// LazyChunk stands in for a chunk with the single tile sampled at its origin.
type LazyChunk struct {
	pos  Position
	tile tile.Tile
}

// GenerateLazy samples the field once at the chunk origin.
func GenerateLazy(pos Position, field Sampler) *LazyChunk {
	at := pos.Origin()
	return &LazyChunk{
		pos:  pos,
		tile: tile.Classify(field.Sample(float64(at.X), float64(at.Y))),
	}
}

func (l *LazyChunk) Position() Position {
	return l.pos
}

func (l *LazyChunk) Tile() tile.Tile {
	return l.tile
}

// RenderSmall paints a unit square at the chunk position, for map views where
// one unit is one chunk. Undiscovered chunks are veiled.
func (l *LazyChunk) RenderSmall(p render.Painter, discovered bool) {
	x, y := float64(l.pos.X), float64(l.pos.Y)
	p.FillRect(x, y, 1, 1, l.tile.Texture.Color())
	if !discovered {
		p.FillRect(x, y, 1, 1, render.Veil)
	}
}

// Render paints the whole chunk area with the sampled color, always veiled.
func (l *LazyChunk) Render(p render.Painter) {
	at := l.pos.Origin()
	x, y, s := float64(at.X), float64(at.Y), float64(Size)
	p.FillRect(x, y, s, s, l.tile.Texture.Color())
	p.FillRect(x, y, s, s, render.Veil)
}
