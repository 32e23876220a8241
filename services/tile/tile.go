// Package tile classifies noise samples into terrain tiles and describes how
// entities interact with them.
package tile

import "image/color"

// Texture is the visual category of a tile.
type Texture uint8

const (
	Grass Texture = iota
	Water
	ShallowWater
	Sand
	DeepWater
	Dirt
	Stone
	SnowyMountain
)

// Interaction governs whether and how fast an entity may move onto a tile.
type Interaction uint8

const (
	Block Interaction = iota
	Walkable
	Swimmable
	Crawl
)

// Action is the special effect a tile has on entities and terrain events.
type Action uint8

const (
	None Action = iota
	Destroyable
	Death
)

// Tile is a single cell of terrain.
type Tile struct {
	Texture     Texture
	Interaction Interaction
	Action      Action
}

// Default returns the tile left behind when terrain is destroyed.
func Default() Tile {
	return Tile{Texture: Grass, Interaction: Walkable, Action: None}
}

// band is an upper-exclusive threshold on the remapped noise value.
type band struct {
	below float64
	tile  Tile
}

var bands = []band{
	{0.25, Tile{DeepWater, Walkable, Death}},
	{0.43, Tile{Water, Swimmable, None}},
	{0.50, Tile{ShallowWater, Crawl, None}},
	{0.52, Tile{Sand, Walkable, None}},
	{0.70, Tile{Grass, Walkable, None}},
	{0.72, Tile{Dirt, Block, Destroyable}},
	{0.85, Tile{Stone, Block, Death}},
}

var peak = Tile{SnowyMountain, Block, Death}

// Classify maps a noise sample in [0,1] to a tile. Bands are checked from low
// to high and the first match wins; anything at or above 0.85 (and NaN) is
// snowy mountain.
func Classify(n float64) Tile {
	for _, b := range bands {
		if n < b.below {
			return b.tile
		}
	}
	return peak
}

var palette = map[Texture]color.RGBA{
	Grass:         {R: 0, G: 228, B: 48, A: 255},
	Water:         {R: 0, G: 121, B: 241, A: 255},
	ShallowWater:  {R: 102, G: 191, B: 255, A: 255},
	Sand:          {R: 253, G: 249, B: 0, A: 255},
	DeepWater:     {R: 0, G: 82, B: 172, A: 255},
	Dirt:          {R: 155, G: 118, B: 83, A: 255},
	Stone:         {R: 130, G: 130, B: 130, A: 255},
	SnowyMountain: {R: 255, G: 255, B: 255, A: 255},
}

// Color returns the display color of the texture.
func (t Texture) Color() color.RGBA {
	return palette[t]
}

func (t Texture) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case ShallowWater:
		return "shallow_water"
	case Sand:
		return "sand"
	case DeepWater:
		return "deep_water"
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	case SnowyMountain:
		return "snowy_mountain"
	default:
		return "unknown"
	}
}

func (i Interaction) String() string {
	switch i {
	case Block:
		return "block"
	case Walkable:
		return "walkable"
	case Swimmable:
		return "swimmable"
	case Crawl:
		return "crawl"
	default:
		return "unknown"
	}
}

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Destroyable:
		return "destroyable"
	case Death:
		return "death"
	default:
		return "unknown"
	}
}
