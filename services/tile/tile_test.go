package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BandEdges(t *testing.T) {
	tests := []struct {
		name  string
		edge  float64
		below Tile
		above Tile
	}{
		{"deep water to water", 0.25, Tile{DeepWater, Walkable, Death}, Tile{Water, Swimmable, None}},
		{"water to shallow water", 0.43, Tile{Water, Swimmable, None}, Tile{ShallowWater, Crawl, None}},
		{"shallow water to sand", 0.50, Tile{ShallowWater, Crawl, None}, Tile{Sand, Walkable, None}},
		{"sand to grass", 0.52, Tile{Sand, Walkable, None}, Tile{Grass, Walkable, None}},
		{"grass to dirt", 0.70, Tile{Grass, Walkable, None}, Tile{Dirt, Block, Destroyable}},
		{"dirt to stone", 0.72, Tile{Dirt, Block, Destroyable}, Tile{Stone, Block, Death}},
		{"stone to snowy mountain", 0.85, Tile{Stone, Block, Death}, Tile{SnowyMountain, Block, Death}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			justBelow := math.Nextafter(tt.edge, 0)

			assert.Equal(t, tt.below, Classify(justBelow), "value just below %v", tt.edge)
			assert.Equal(t, tt.above, Classify(tt.edge), "value at %v", tt.edge)
			assert.Equal(t, tt.above, Classify(tt.edge+1e-9), "value just above %v", tt.edge)
		})
	}
}

func TestClassify_OutOfRange(t *testing.T) {
	assert.Equal(t, DeepWater, Classify(-3).Texture)
	assert.Equal(t, SnowyMountain, Classify(4).Texture)
	assert.Equal(t, SnowyMountain, Classify(math.NaN()).Texture)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Tile{Texture: Grass, Interaction: Walkable, Action: None}, Default())
}

func TestTexture_Color(t *testing.T) {
	textures := []Texture{Grass, Water, ShallowWater, Sand, DeepWater, Dirt, Stone, SnowyMountain}
	seen := make(map[[4]uint8]Texture)

	for _, tex := range textures {
		c := tex.Color()
		assert.Equal(t, uint8(255), c.A, "%s should be opaque", tex)

		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, dup := seen[key]; dup {
			t.Errorf("%s and %s share a color", tex, other)
		}
		seen[key] = tex
	}

	assert.Equal(t, uint8(155), Dirt.Color().R)
	assert.Equal(t, uint8(118), Dirt.Color().G)
	assert.Equal(t, uint8(83), Dirt.Color().B)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "snowy_mountain", SnowyMountain.String())
	assert.Equal(t, "swimmable", Swimmable.String())
	assert.Equal(t, "destroyable", Destroyable.String())
	assert.Equal(t, "unknown", Texture(99).String())
}
