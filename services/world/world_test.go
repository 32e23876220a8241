package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/tileworld/internal/testmocks"
	"github.com/VoidMesh/tileworld/internal/testutil"
	"github.com/VoidMesh/tileworld/services/chunk"
	"github.com/VoidMesh/tileworld/services/entity"
	"github.com/VoidMesh/tileworld/services/render"
	"github.com/VoidMesh/tileworld/services/tile"
)

type update struct {
	interaction tile.Interaction
	action      tile.Action
	dt          float64
}

// fakeEntity records what the world does to it.
type fakeEntity struct {
	pos     mgl64.Vec2
	vel     mgl64.Vec2
	events  []entity.WorldEvent
	updates []update
}

func (f *fakeEntity) Position() mgl64.Vec2 { return f.pos }

func (f *fakeEntity) Velocity() mgl64.Vec2 { return f.vel }

func (f *fakeEntity) SetPosition(pos mgl64.Vec2) { f.pos = pos }

func (f *fakeEntity) Update(i tile.Interaction, a tile.Action, dt float64) {
	f.updates = append(f.updates, update{i, a, dt})
}

func (f *fakeEntity) WorldEvent() entity.WorldEvent {
	if len(f.events) == 0 {
		return entity.WorldEvent{}
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

// recordingLogger keeps warnings and drops everything else.
type recordingLogger struct {
	warnings *[]string
}

func (r recordingLogger) Debug(string, ...interface{}) {}

func (r recordingLogger) Info(string, ...interface{}) {}

func (r recordingLogger) Warn(msg string, _ ...interface{}) { *r.warnings = append(*r.warnings, msg) }

func (r recordingLogger) With(...interface{}) LoggerInterface { return r }

func newTestWorld(t *testing.T, span int32, field chunk.Sampler) *World {
	t.Helper()
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	t.Cleanup(cleanup)

	opts := DefaultOptions()
	opts.SpawnSpan = span
	return New(opts, field, NewDefaultLoggerWrapper())
}

var (
	grass = tile.Tile{Texture: tile.Grass, Interaction: tile.Walkable, Action: tile.None}
	water = tile.Tile{Texture: tile.Water, Interaction: tile.Swimmable, Action: tile.None}
	dirt  = tile.Tile{Texture: tile.Dirt, Interaction: tile.Block, Action: tile.Destroyable}
	stone = tile.Tile{Texture: tile.Stone, Interaction: tile.Block, Action: tile.Death}
)

func TestGenerate_Deterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	a := Generate()
	b := Generate()

	assert.Equal(t, Stats{Chunks: 400, MapChunks: 400}, a.Stats())
	for x := int32(-80); x < 80; x += 3 {
		for y := int32(-80); y < 80; y += 3 {
			c := chunk.Coords{X: x, Y: y}
			ta, okA := a.Tile(c)
			tb, okB := b.Tile(c)
			require.True(t, okA && okB, "tile %v should be generated", c)
			assert.Equal(t, ta, tb, "tile %v", c)
		}
	}
}

func TestNew_SpawnArea(t *testing.T) {
	w := newTestWorld(t, 2, testutil.ConstantField(testutil.GrassNoise))

	assert.Equal(t, Stats{Chunks: 16, MapChunks: 16}, w.Stats())
	assert.True(t, w.HasChunk(chunk.Position{X: -2, Y: -2}))
	assert.True(t, w.HasChunk(chunk.Position{X: 1, Y: 1}))
	assert.False(t, w.HasChunk(chunk.Position{X: 2, Y: 0}), "span is half-open")
	assert.True(t, w.HasMapChunk(chunk.Position{X: -1, Y: 1}))
	assert.Equal(t, int32(2), w.Options().SpawnSpan)
	assert.Equal(t, DefaultOptions().DestroyRadius, w.Options().DestroyRadius)
}

func TestNew_WarnsWithoutSpawnArea(t *testing.T) {
	var warnings []string
	New(Options{SpawnSpan: 1}, testutil.ConstantField(testutil.GrassNoise), recordingLogger{&warnings})
	assert.Empty(t, warnings)

	w := New(Options{}, testutil.ConstantField(testutil.GrassNoise), recordingLogger{&warnings})
	assert.Equal(t, Stats{}, w.Stats())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no spawn area")
}

func TestGenerateAt_Idempotent(t *testing.T) {
	field := &testutil.CountingField{Field: testutil.ConstantField(testutil.GrassNoise)}
	w := newTestWorld(t, 0, field)

	renderZone := render.Rect{X: 0, Y: 0, W: 16, H: 16}
	mapZone := render.Rect{X: -16, Y: -16, W: 48, H: 48}
	w.GenerateAt(renderZone, mapZone)

	require.Equal(t, Stats{Chunks: 4, MapChunks: 36}, w.Stats())
	require.Equal(t, 4*64+36, field.Samples())

	marked := chunk.Coords{X: 3, Y: 3}
	w.SetTile(marked, stone)

	w.GenerateAt(renderZone, mapZone)
	w.GenerateAt(render.Rect{X: 2, Y: 2, W: 4, H: 4}, render.Rect{X: 0, Y: 0, W: 8, H: 8})

	assert.Equal(t, Stats{Chunks: 4, MapChunks: 36}, w.Stats())
	assert.Equal(t, 4*64+36, field.Samples(), "existing chunks must not be resampled")

	got, ok := w.Tile(marked)
	require.True(t, ok)
	assert.Equal(t, stone, got)
}

func TestGenerateAt_DecoupledZones(t *testing.T) {
	w := newTestWorld(t, 0, testutil.ConstantField(testutil.GrassNoise))

	w.GenerateAt(render.Rect{}, render.Rect{X: -8, Y: -8, W: 16, H: 16})

	assert.Equal(t, 0, w.Stats().Chunks)
	assert.Equal(t, 4, w.Stats().MapChunks)
	assert.True(t, w.HasMapChunk(chunk.Position{X: -1, Y: -1}))
	assert.False(t, w.HasChunk(chunk.Position{X: -1, Y: -1}))

	w.GenerateMapAt(render.Rect{X: 8, Y: 8, W: 1, H: 1})
	assert.True(t, w.HasMapChunk(chunk.Position{X: 1, Y: 1}))
	assert.Equal(t, 0, w.Stats().Chunks)
}

func TestTile_LookupAndMutation(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))

	got, ok := w.Tile(chunk.Coords{X: -8, Y: 7})
	require.True(t, ok)
	assert.Equal(t, grass, got)

	_, ok = w.Tile(chunk.Coords{X: 8, Y: 0})
	assert.False(t, ok, "chunk (1,0) is outside the spawn span")

	w.SetTile(chunk.Coords{X: -1, Y: -1}, dirt)
	got, _ = w.Tile(chunk.Coords{X: -1, Y: -1})
	assert.Equal(t, dirt, got)
	got, _ = w.Tile(chunk.Coords{X: -8, Y: -1})
	assert.Equal(t, grass, got, "neighbouring tile in the same chunk is untouched")

	before := w.Stats()
	w.SetTile(chunk.Coords{X: 100, Y: 100}, dirt)
	assert.Equal(t, before, w.Stats(), "setting a tile never creates a chunk")
	_, ok = w.Tile(chunk.Coords{X: 100, Y: 100})
	assert.False(t, ok)
}

func TestCanMoveEntityTo(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))
	w.SetTile(chunk.Coords{X: 2, Y: 0}, stone)
	w.SetTile(chunk.Coords{X: 3, Y: 0}, water)

	assert.True(t, w.CanMoveEntityTo(mgl64.Vec2{0.4, 0}))
	assert.False(t, w.CanMoveEntityTo(mgl64.Vec2{1.5, 0}), "1.5 rounds onto the stone tile")
	assert.True(t, w.CanMoveEntityTo(mgl64.Vec2{3.2, -0.4}))
	assert.False(t, w.CanMoveEntityTo(mgl64.Vec2{8, 0}), "ungenerated ground is impassable")
}

func TestUpdateEntity_SpeedMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		noise    float64
		expected tile.Tile
		distance float64
	}{
		{"swimmable", testutil.WaterNoise, water, 6},
		{"crawl", testutil.ShallowWaterNoise, tile.Tile{Texture: tile.ShallowWater, Interaction: tile.Crawl, Action: tile.None}, 4},
		{"walkable", testutil.GrassNoise, grass, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 2, testutil.ConstantField(tt.noise))
			e := &fakeEntity{vel: mgl64.Vec2{10, 0}}

			w.UpdateEntity(e, 1)

			assert.InDelta(t, tt.distance, e.pos.X(), 1e-9)
			assert.Equal(t, 0.0, e.pos.Y())
			assert.Equal(t, mgl64.Vec2{10, 0}, e.vel, "the entity's own velocity is not rewritten")
			require.Len(t, e.updates, 1)
			assert.Equal(t, update{tt.expected.Interaction, tt.expected.Action, 1}, e.updates[0])
		})
	}
}

func TestUpdateEntity_SlidesAlongOpenAxis(t *testing.T) {
	tests := []struct {
		name     string
		blocked  func(w *World)
		velocity mgl64.Vec2
		expected mgl64.Vec2
	}{
		{
			name: "column ahead slides vertically",
			blocked: func(w *World) {
				for y := int32(-8); y < 8; y++ {
					w.SetTile(chunk.Coords{X: 1, Y: y}, stone)
				}
			},
			velocity: mgl64.Vec2{1, 1},
			expected: mgl64.Vec2{0, 1},
		},
		{
			name: "row ahead slides horizontally",
			blocked: func(w *World) {
				for x := int32(-8); x < 8; x++ {
					w.SetTile(chunk.Coords{X: x, Y: 1}, dirt)
				}
			},
			velocity: mgl64.Vec2{1, 1},
			expected: mgl64.Vec2{1, 0},
		},
		{
			name: "only the corner blocks",
			blocked: func(w *World) {
				w.SetTile(chunk.Coords{X: 1, Y: 1}, stone)
			},
			velocity: mgl64.Vec2{1, 1},
			expected: mgl64.Vec2{1, 0},
		},
		{
			name: "head on stops",
			blocked: func(w *World) {
				w.SetTile(chunk.Coords{X: 1, Y: 0}, stone)
			},
			velocity: mgl64.Vec2{1, 0},
			expected: mgl64.Vec2{0, 0},
		},
		{
			name:     "edge of generated terrain stops",
			blocked:  func(w *World) {},
			velocity: mgl64.Vec2{0, -20},
			expected: mgl64.Vec2{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))
			tt.blocked(w)
			e := &fakeEntity{vel: tt.velocity}

			w.UpdateEntity(e, 1)

			assert.Equal(t, tt.expected, e.pos)
			require.Len(t, e.updates, 1, "the entity is updated even when movement is blocked")
			assert.Equal(t, tile.Walkable, e.updates[0].interaction)
		})
	}
}

func TestUpdateEntity_UngeneratedGround(t *testing.T) {
	w := newTestWorld(t, 0, testutil.ConstantField(testutil.GrassNoise))

	ctrl := gomock.NewController(t)
	e := testmocks.NewMockEntity(ctrl)
	e.EXPECT().Position().Return(mgl64.Vec2{3, 3}).Times(1)
	// Any Velocity, SetPosition or Update call fails the test.

	w.UpdateEntity(e, 0.016)
}

func TestUpdateEntity_ReportsOriginTile(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))
	w.SetTile(chunk.Coords{X: 1, Y: 0}, water)

	ctrl := gomock.NewController(t)
	e := testmocks.NewMockEntity(ctrl)
	gomock.InOrder(
		e.EXPECT().Position().Return(mgl64.Vec2{0, 0}),
		e.EXPECT().Velocity().Return(mgl64.Vec2{2, 0}),
		e.EXPECT().SetPosition(mgl64.Vec2{1, 0}),
		e.EXPECT().Update(tile.Walkable, tile.None, 0.5),
	)

	w.UpdateEntity(e, 0.5)
}

func TestUpdateEntity_KeepsTeleportFromUpdate(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))
	w.SetTile(chunk.Coords{X: 3, Y: 3}, stone)

	ctrl := gomock.NewController(t)
	e := testmocks.NewMockEntity(ctrl)
	gomock.InOrder(
		e.EXPECT().Position().Return(mgl64.Vec2{0, 0}),
		e.EXPECT().Velocity().Return(mgl64.Vec2{}),
		e.EXPECT().SetPosition(mgl64.Vec2{0, 0}),
		e.EXPECT().Update(tile.Walkable, tile.None, 0.1).Do(func(tile.Interaction, tile.Action, float64) {
			e.SetPosition(mgl64.Vec2{3, 3})
		}),
		e.EXPECT().SetPosition(mgl64.Vec2{3, 3}),
	)

	// No position read or write follows Update, even onto a blocking tile.
	w.UpdateEntity(e, 0.1)
}

func TestUpdateWorldByEntity_Destroy(t *testing.T) {
	w := newTestWorld(t, 2, testutil.ConstantField(testutil.GrassNoise))

	inside := chunk.Coords{X: 2, Y: 0}
	diagonal := chunk.Coords{X: 2, Y: 2} // 8 <= 9
	outsideCircle := chunk.Coords{X: 3, Y: 1}
	far := chunk.Coords{X: 10, Y: 0}
	undestroyable := chunk.Coords{X: 1, Y: 0}

	for _, c := range []chunk.Coords{inside, diagonal, outsideCircle, far} {
		w.SetTile(c, dirt)
	}
	w.SetTile(undestroyable, stone)

	e := &fakeEntity{
		pos:    mgl64.Vec2{0.2, -0.3},
		events: []entity.WorldEvent{entity.Destroy(entity.Left)},
	}

	destroyed := w.UpdateWorldByEntity(e)
	assert.Equal(t, 2, destroyed)

	check := func(c chunk.Coords, expected tile.Tile) {
		t.Helper()
		got, ok := w.Tile(c)
		require.True(t, ok)
		assert.Equal(t, expected, got, "tile %v", c)
	}
	check(inside, tile.Default())
	check(diagonal, tile.Default())
	check(outsideCircle, dirt)
	check(far, dirt)
	check(undestroyable, stone)

	assert.Empty(t, e.events, "the event is consumed")
	assert.Equal(t, 0, w.UpdateWorldByEntity(e), "no pending event is a no-op")
}

func TestUpdateWorldByEntity_NoEvent(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))

	ctrl := gomock.NewController(t)
	e := testmocks.NewMockEntity(ctrl)
	e.EXPECT().WorldEvent().Return(entity.WorldEvent{Kind: entity.EventNone}).Times(1)

	assert.Equal(t, 0, w.UpdateWorldByEntity(e))
}

func TestRender_ChunkBeforeLazyChunk(t *testing.T) {
	w := newTestWorld(t, 0, testutil.ConstantField(testutil.GrassNoise))
	w.GenerateAt(render.Rect{X: 0, Y: 0, W: 8, H: 8}, render.Rect{X: 0, Y: 0, W: 16, H: 8})

	ctrl := gomock.NewController(t)
	p := testmocks.NewMockPainter(ctrl)
	grassColor := tile.Grass.Color()

	// chunk (0,0): one unit square per tile
	p.EXPECT().FillRect(gomock.Any(), gomock.Any(), 1.0, 1.0, grassColor).Times(64)
	// chunk (1,0): lazy block plus veil
	p.EXPECT().FillRect(8.0, 0.0, 8.0, 8.0, grassColor).Times(1)
	p.EXPECT().FillRect(8.0, 0.0, 8.0, 8.0, render.Veil).Times(1)
	// chunk (2,0): nothing generated, nothing drawn

	w.Render(p, render.Rect{X: 0, Y: 0, W: 24, H: 8})
}

func TestRenderMap_DiscoveryStates(t *testing.T) {
	w := newTestWorld(t, 0, testutil.ConstantField(testutil.GrassNoise))
	w.GenerateAt(render.Rect{X: 0, Y: 0, W: 8, H: 8}, render.Rect{X: 0, Y: 0, W: 16, H: 8})

	ctrl := gomock.NewController(t)
	p := testmocks.NewMockPainter(ctrl)
	grassColor := tile.Grass.Color()

	// (0,0) fully generated: color only
	p.EXPECT().FillRect(0.0, 0.0, 1.0, 1.0, grassColor).Times(1)
	// (1,0) sampled only: color and veil
	p.EXPECT().FillRect(1.0, 0.0, 1.0, 1.0, grassColor).Times(1)
	p.EXPECT().FillRect(1.0, 0.0, 1.0, 1.0, render.Veil).Times(1)
	// (2,0) unknown: placeholder
	p.EXPECT().FillRect(2.0, 0.0, 1.0, 1.0, render.Veil).Times(1)

	w.RenderMap(p, render.Rect{X: 0, Y: 0, W: 3, H: 1})
}

func TestRenderMap_IntoCanvas(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.WaterNoise))

	c := render.NewCanvas(4, 2, tile.SnowyMountain.Color())
	view := render.Rect{X: -2, Y: -1, W: 4, H: 2}
	c.Reset(view)
	w.RenderMap(c, view)

	assert.Equal(t, tile.Water.Color(), c.At(1, 0), "chunk (-1,-1) is discovered")
	assert.NotEqual(t, tile.Water.Color(), c.At(0, 0), "chunk (-2,-1) is veiled")
}

func TestPlayer_DiesInDeepWaterAndRespawns(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.DeepWaterNoise))
	p := entity.NewPlayer("diver", mgl64.Vec2{0, 0})
	p.SetVelocity(mgl64.Vec2{2, 0})

	w.UpdateEntity(p, 0.5)
	assert.Equal(t, mgl64.Vec2{1, 0}, p.Position(), "deep water is walkable")
	assert.Equal(t, entity.StateDying, p.State())
	assert.Equal(t, 1, p.Deaths())

	for i := 0; i < 4; i++ {
		w.UpdateEntity(p, 0.25)
	}
	assert.Equal(t, mgl64.Vec2{0, 0}, p.Position(), "respawned at spawn")
}

func TestPlayer_DigsThroughDirt(t *testing.T) {
	w := newTestWorld(t, 1, testutil.ConstantField(testutil.GrassNoise))
	w.SetTile(chunk.Coords{X: 1, Y: 0}, dirt)

	p := entity.NewPlayer("digger", mgl64.Vec2{0, 0})
	p.SetVelocity(mgl64.Vec2{1, 0})
	w.UpdateEntity(p, 1)
	require.Equal(t, mgl64.Vec2{0, 0}, p.Position(), "dirt blocks")

	require.True(t, p.TryAttack())
	assert.Equal(t, 1, w.UpdateWorldByEntity(p))
	assert.True(t, w.CanMoveEntityTo(mgl64.Vec2{1, 0}))
}
