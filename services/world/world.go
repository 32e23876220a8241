// Package world owns generated terrain and resolves entity movement against it.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/tileworld/services/chunk"
	"github.com/VoidMesh/tileworld/services/entity"
	"github.com/VoidMesh/tileworld/services/noise"
	"github.com/VoidMesh/tileworld/services/render"
	"github.com/VoidMesh/tileworld/services/tile"
)

// Options are the tunables of a world. Multipliers scale entity velocity on
// the tile the entity stands on.
type Options struct {
	// SpawnSpan generates chunks in [-SpawnSpan, SpawnSpan) on both axes at creation.
	SpawnSpan       int32
	SwimMultiplier  float64
	CrawlMultiplier float64
	DestroyRadius   float64
}

// DefaultOptions returns the tuned game balance values.
func DefaultOptions() Options {
	return Options{
		SpawnSpan:       10,
		SwimMultiplier:  0.6,
		CrawlMultiplier: 0.4,
		DestroyRadius:   3,
	}
}

// Stats counts generated terrain.
type Stats struct {
	Chunks    int
	MapChunks int
}

// World holds every generated chunk and lazy chunk. Entries are never
// replaced once inserted; only single tiles inside a chunk are mutated.
// A World is not safe for concurrent use.
type World struct {
	opts      Options
	field     chunk.Sampler
	chunks    map[chunk.Position]*chunk.Chunk
	mapChunks map[chunk.Position]*chunk.LazyChunk
	logger    LoggerInterface
}

// Generate creates a world over the default noise field and options.
func Generate() *World {
	return New(DefaultOptions(), noise.NewDefaultGenerator(), NewDefaultLoggerWrapper())
}

// New creates a world and eagerly generates the spawn area at full and map
// detail.
func New(opts Options, field chunk.Sampler, logger LoggerInterface) *World {
	w := &World{
		opts:      opts,
		field:     field,
		chunks:    make(map[chunk.Position]*chunk.Chunk),
		mapChunks: make(map[chunk.Position]*chunk.LazyChunk),
		logger:    logger.With("component", "world"),
	}

	for x := -opts.SpawnSpan; x < opts.SpawnSpan; x++ {
		for y := -opts.SpawnSpan; y < opts.SpawnSpan; y++ {
			pos := chunk.Position{X: x, Y: y}
			w.chunks[pos] = chunk.Generate(pos, field)
			w.mapChunks[pos] = chunk.GenerateLazy(pos, field)
		}
	}
	if opts.SpawnSpan == 0 {
		w.logger.Warn("World has no spawn area; terrain appears only once generated around a view")
	}
	w.logger.Info("World generated", "spawn_span", opts.SpawnSpan, "chunks", len(w.chunks))
	return w
}

// Options returns the world's tunables.
func (w *World) Options() Options {
	return w.opts
}

// Stats returns how much terrain has been generated.
func (w *World) Stats() Stats {
	return Stats{Chunks: len(w.chunks), MapChunks: len(w.mapChunks)}
}

// HasChunk reports whether full tile data exists for pos.
func (w *World) HasChunk(pos chunk.Position) bool {
	_, ok := w.chunks[pos]
	return ok
}

// HasMapChunk reports whether a map sample exists for pos.
func (w *World) HasMapChunk(pos chunk.Position) bool {
	_, ok := w.mapChunks[pos]
	return ok
}

// GenerateAt fills in missing full chunks covering renderZone and missing map
// chunks covering mapZone. Existing chunks are left untouched.
func (w *World) GenerateAt(renderZone, mapZone render.Rect) {
	lo, hi := chunk.RangeFromRect(renderZone)
	created := 0
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			pos := chunk.Position{X: x, Y: y}
			if _, ok := w.chunks[pos]; ok {
				continue
			}
			w.chunks[pos] = chunk.Generate(pos, w.field)
			created++
		}
	}
	if created > 0 {
		w.logger.Debug("Generated chunks", "count", created, "min_x", lo.X, "min_y", lo.Y, "max_x", hi.X, "max_y", hi.Y)
	}

	w.GenerateMapAt(mapZone)
}

// GenerateMapAt fills in missing map chunks covering mapZone.
func (w *World) GenerateMapAt(mapZone render.Rect) {
	lo, hi := chunk.RangeFromRect(mapZone)
	created := 0
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			pos := chunk.Position{X: x, Y: y}
			if _, ok := w.mapChunks[pos]; ok {
				continue
			}
			w.mapChunks[pos] = chunk.GenerateLazy(pos, w.field)
			created++
		}
	}
	if created > 0 {
		w.logger.Debug("Generated map chunks", "count", created, "min_x", lo.X, "min_y", lo.Y, "max_x", hi.X, "max_y", hi.Y)
	}
}

// Render paints every chunk overlapping view: full tiles where generated,
// otherwise the veiled map sample, otherwise nothing.
func (w *World) Render(p render.Painter, view render.Rect) {
	lo, hi := chunk.RangeFromRect(view)
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			pos := chunk.Position{X: x, Y: y}
			if c, ok := w.chunks[pos]; ok {
				c.Render(p)
			} else if l, ok := w.mapChunks[pos]; ok {
				l.Render(p)
			}
		}
	}
}

// RenderMap paints the overview map. view is in chunk units: each chunk is a
// unit square. Unsampled chunks get a veil placeholder and sampled ones are
// marked discovered once their full tiles exist.
func (w *World) RenderMap(p render.Painter, view render.Rect) {
	lo := chunk.Position{X: floorInt(view.X), Y: floorInt(view.Y)}
	hi := chunk.Position{X: ceilInt(view.X + view.W), Y: ceilInt(view.Y + view.H)}
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			pos := chunk.Position{X: x, Y: y}
			l, ok := w.mapChunks[pos]
			if !ok {
				p.FillRect(float64(x), float64(y), 1, 1, render.Veil)
				continue
			}
			l.RenderSmall(p, w.HasChunk(pos))
		}
	}
}

// Tile looks up a tile. ok is false when its chunk has not been generated.
func (w *World) Tile(c chunk.Coords) (tile.Tile, bool) {
	ch, ok := w.chunks[chunk.PositionFromCoords(c)]
	if !ok {
		return tile.Tile{}, false
	}
	lx, ly := chunk.LocalOffset(c)
	return ch.Tile(lx, ly), true
}

// SetTile replaces a tile in place. It does nothing when the chunk has not
// been generated.
func (w *World) SetTile(c chunk.Coords, t tile.Tile) {
	ch, ok := w.chunks[chunk.PositionFromCoords(c)]
	if !ok {
		return
	}
	lx, ly := chunk.LocalOffset(c)
	ch.SetTile(lx, ly, t)
}

// CanMoveEntityTo reports whether the tile under pos exists and does not block.
func (w *World) CanMoveEntityTo(pos mgl64.Vec2) bool {
	t, ok := w.Tile(chunk.CoordsFromPosition(pos))
	return ok && t.Interaction != tile.Block
}

// speedMultiplier scales velocity by the tile the entity stands on.
func (w *World) speedMultiplier(i tile.Interaction) float64 {
	switch i {
	case tile.Swimmable:
		return w.opts.SwimMultiplier
	case tile.Crawl:
		return w.opts.CrawlMultiplier
	default:
		return 1
	}
}

// UpdateEntity moves e by its velocity for dt seconds. A blocked move slides
// along x, then along y, before giving up. The entity is then told about the
// tile it started the frame on. Entities on ungenerated ground are skipped.
func (w *World) UpdateEntity(e entity.Entity, dt float64) {
	origin := e.Position()
	current, ok := w.Tile(chunk.CoordsFromPosition(origin))
	if !ok {
		return
	}

	velocity := e.Velocity().Mul(w.speedMultiplier(current.Interaction))
	candidates := [...]mgl64.Vec2{
		velocity,
		{velocity.X(), 0},
		{0, velocity.Y()},
	}
	for _, v := range candidates {
		next := origin.Add(v.Mul(dt))
		if w.CanMoveEntityTo(next) {
			e.SetPosition(next)
			break
		}
	}

	e.Update(current.Interaction, current.Action, dt)
}

// UpdateWorldByEntity consumes one pending event from e and applies it. It
// returns the number of tiles changed.
func (w *World) UpdateWorldByEntity(e entity.Entity) int {
	ev := e.WorldEvent()
	switch ev.Kind {
	case entity.EventDestroy:
		// The facing direction is carried but the whole circle is cleared.
		center := chunk.CoordsFromPosition(e.Position())
		destroyed := 0
		for _, c := range chunk.TilesInRadius(center, w.opts.DestroyRadius) {
			if t, ok := w.Tile(c); ok && t.Action == tile.Destroyable {
				w.SetTile(c, tile.Default())
				destroyed++
			}
		}
		w.logger.Debug("Destroy event applied", "x", center.X, "y", center.Y, "direction", ev.Direction, "destroyed", destroyed)
		return destroyed
	default:
		return 0
	}
}

func floorInt(f float64) int32 {
	return int32(math.Floor(f))
}

func ceilInt(f float64) int32 {
	return int32(math.Ceil(f))
}
