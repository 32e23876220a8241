package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	BaseSimplex = "simplex"
	BasePerlin  = "perlin"
)

// GeneratorInterface defines the interface for noise generation operations.
// This enables dependency injection and makes services easily testable.
type GeneratorInterface interface {
	GetNoise(x, y float64) float64
	Sample(x, y float64) float64
	GetSeed() int64
	Config() Config
}

// Config describes a fractal Brownian motion field.
type Config struct {
	Base        string  `yaml:"base"`
	Seed        int64   `yaml:"seed"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Octaves     int     `yaml:"octaves"`
}

// DefaultConfig returns the parameters the world terrain is tuned for.
func DefaultConfig() Config {
	return Config{
		Base:        BaseSimplex,
		Seed:        0,
		Frequency:   0.01,
		Persistence: 0.6,
		Lacunarity:  2.0,
		Octaves:     5,
	}
}

// Validate reports the first unusable parameter.
func (c Config) Validate() error {
	switch c.Base {
	case BaseSimplex, BasePerlin:
	default:
		return fmt.Errorf("unknown noise base %q", c.Base)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("octaves must be at least 1, got %d", c.Octaves)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %v", c.Frequency)
	}
	if c.Persistence <= 0 {
		return fmt.Errorf("persistence must be positive, got %v", c.Persistence)
	}
	if c.Lacunarity <= 0 {
		return fmt.Errorf("lacunarity must be positive, got %v", c.Lacunarity)
	}
	return nil
}

// source is a single octave of coherent noise.
type source interface {
	Eval2(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

var _ GeneratorInterface = (*Generator)(nil)

// Generator implements GeneratorInterface as fBm over per-octave sources.
// It holds no mutable state after construction.
type Generator struct {
	cfg     Config
	octaves []source
	scale   float64
}

// NewGenerator creates a new noise generator from cfg.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid noise config: %w", err)
	}

	g := &Generator{cfg: cfg, octaves: make([]source, cfg.Octaves)}
	amplitude := 1.0
	for i := range g.octaves {
		seed := cfg.Seed + int64(i)
		switch cfg.Base {
		case BasePerlin:
			// A single perlin octave per source; the octave sum happens in GetNoise.
			g.octaves[i] = perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
		default:
			g.octaves[i] = opensimplex.New(seed)
		}
		g.scale += amplitude
		amplitude *= cfg.Persistence
	}
	return g, nil
}

// NewDefaultGenerator creates a generator with DefaultConfig.
func NewDefaultGenerator() *Generator {
	g, err := NewGenerator(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return g
}

// GetNoise returns the raw fBm value, roughly in [-1, 1].
func (g *Generator) GetNoise(x, y float64) float64 {
	x *= g.cfg.Frequency
	y *= g.cfg.Frequency

	var sum float64
	amplitude := 1.0
	for _, o := range g.octaves {
		sum += o.Eval2(x, y) * amplitude
		amplitude *= g.cfg.Persistence
		x *= g.cfg.Lacunarity
		y *= g.cfg.Lacunarity
	}
	return sum / g.scale
}

// Sample returns the noise value remapped to [0, 1] for tile classification.
func (g *Generator) Sample(x, y float64) float64 {
	return (g.GetNoise(x, y) + 1) * 0.5
}

// GetSeed returns the current seed
func (g *Generator) GetSeed() int64 {
	return g.cfg.Seed
}

// Config returns the parameters the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}
