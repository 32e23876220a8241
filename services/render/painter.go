// Package render defines the drawing contract the world paints through and a
// terminal canvas implementing it.
package render

import "image/color"

//go:generate mockgen -source=painter.go -destination=../../internal/testmocks/mock_painter.go -package=testmocks

// Painter fills axis-aligned rectangles given in world coordinates.
type Painter interface {
	FillRect(x, y, w, h float64, c color.RGBA)
}

// Veil is drawn over terrain that is only known from a coarse sample.
var Veil = color.RGBA{R: 100, G: 100, B: 100, A: 100}

// Rect is an axis-aligned rectangle in world tile space.
type Rect struct {
	X, Y, W, H float64
}

// NewRectAround returns a w by h rectangle centered on (cx, cy).
func NewRectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Scale returns r with every component multiplied by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{X: r.X * f, Y: r.Y * f, W: r.W * f, H: r.H * f}
}

// Zoom returns r scaled by f about its center.
func (r Rect) Zoom(f float64) Rect {
	cx, cy := r.Center()
	return NewRectAround(cx, cy, r.W*f, r.H*f)
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
