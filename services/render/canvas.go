package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// halfBlock paints the upper cell with the foreground and the lower cell with
// the background, so one text line carries two canvas rows.
const halfBlock = "▀"

// Canvas is a grid of colored cells covering a viewport of world space. A
// rectangle colors every cell whose center it contains.
type Canvas struct {
	cols, rows int
	viewport   Rect
	background colorful.Color
	cells      []colorful.Color
}

// NewCanvas creates a cols by rows canvas cleared to background.
func NewCanvas(cols, rows int, background color.Color) *Canvas {
	bg, _ := colorful.MakeColor(background)
	c := &Canvas{
		cols:       max(cols, 1),
		rows:       max(rows, 1),
		background: bg,
	}
	c.cells = make([]colorful.Color, c.cols*c.rows)
	c.Reset(Rect{W: float64(c.cols), H: float64(c.rows)})
	return c
}

// Reset clears the canvas and points it at a new viewport.
func (c *Canvas) Reset(viewport Rect) {
	c.viewport = viewport
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

func (c *Canvas) Cols() int { return c.cols }

func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) Viewport() Rect { return c.viewport }

func (c *Canvas) cellSize() (float64, float64) {
	return c.viewport.W / float64(c.cols), c.viewport.H / float64(c.rows)
}

// FillRect composites col over every cell centered inside the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if col.A == 0 || w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.cellSize()
	if cw <= 0 || ch <= 0 {
		return
	}

	i0 := centerIndex((x-c.viewport.X)/cw, c.cols)
	i1 := centerIndex((x+w-c.viewport.X)/cw, c.cols)
	j0 := centerIndex((y-c.viewport.Y)/ch, c.rows)
	j1 := centerIndex((y+h-c.viewport.Y)/ch, c.rows)

	src, alpha := toColorful(col)
	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			idx := j*c.cols + i
			c.cells[idx] = c.cells[idx].BlendRgb(src, alpha)
		}
	}
}

// Mark colors the single cell containing the world point (x, y).
func (c *Canvas) Mark(x, y float64, col color.RGBA) {
	cw, ch := c.cellSize()
	if cw <= 0 || ch <= 0 {
		return
	}
	i := int(math.Floor((x - c.viewport.X) / cw))
	j := int(math.Floor((y - c.viewport.Y) / ch))
	if i < 0 || i >= c.cols || j < 0 || j >= c.rows {
		return
	}
	src, alpha := toColorful(col)
	c.cells[j*c.cols+i] = c.cells[j*c.cols+i].BlendRgb(src, alpha)
}

// At returns the opaque color of a cell.
func (c *Canvas) At(col, row int) color.RGBA {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return color.RGBA{}
	}
	r, g, b := c.cells[row*c.cols+col].Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// String renders the canvas as lines of colored half blocks.
func (c *Canvas) String() string {
	styles := make(map[[2]string]lipgloss.Style)

	var sb strings.Builder
	for j := 0; j < c.rows; j += 2 {
		if j > 0 {
			sb.WriteByte('\n')
		}
		for i := 0; i < c.cols; i++ {
			top := c.cells[j*c.cols+i]
			bottom := c.background
			if j+1 < c.rows {
				bottom = c.cells[(j+1)*c.cols+i]
			}

			key := [2]string{top.Clamped().Hex(), bottom.Clamped().Hex()}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key[0])).
					Background(lipgloss.Color(key[1]))
				styles[key] = style
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

// centerIndex returns the first cell index whose center lies at or after the
// offset f (in cells), clamped to [0, n].
func centerIndex(f float64, n int) int {
	v := math.Ceil(f - 0.5)
	if v < 0 {
		return 0
	}
	if v > float64(n) {
		return n
	}
	return int(v)
}

func toColorful(col color.RGBA) (colorful.Color, float64) {
	return colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}, float64(col.A) / 255
}
