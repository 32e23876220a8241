package testutil

import (
	"sync"
)

// Representative noise values, one per tile band.
const (
	DeepWaterNoise    = 0.10
	WaterNoise        = 0.30
	ShallowWaterNoise = 0.45
	SandNoise         = 0.51
	GrassNoise        = 0.60
	DirtNoise         = 0.71
	StoneNoise        = 0.80
	MountainNoise     = 0.90
)

// FieldFunc adapts a function to the chunk.Sampler interface.
type FieldFunc func(x, y float64) float64

func (f FieldFunc) Sample(x, y float64) float64 { return f(x, y) }

// ConstantField returns a field that yields v everywhere.
func ConstantField(v float64) FieldFunc {
	return func(x, y float64) float64 { return v }
}

// CountingField wraps a field and counts samples, for asserting that
// generation does not resample existing chunks.
type CountingField struct {
	Field FieldFunc

	mu      sync.Mutex
	samples int
}

func (c *CountingField) Sample(x, y float64) float64 {
	c.mu.Lock()
	c.samples++
	c.mu.Unlock()
	return c.Field(x, y)
}

// Samples returns how many times Sample was called.
func (c *CountingField) Samples() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.samples
}
