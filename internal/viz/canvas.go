package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/field"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBlank = 0x2800
	inkLevels    = 8
)

// Canvas is a braille surface. Each terminal cell holds 2x4 dots and an
// ink level, the composited opacity of everything drawn into it.
//
// Field coordinates are pixels; CellW and CellH give the pixel size of
// one terminal cell.
type Canvas struct {
	Width, Height int
	CellW, CellH  float64
	Grid          [][]rune
	Level         [][]float64

	ink color.RGBA
}

func NewCanvas(w, h int, cellW, cellH float64) *Canvas {
	c := &Canvas{CellW: cellW, CellH: cellH, ink: field.DefaultInk}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid for w x h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Level = make([][]float64, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]float64, w)
	}
	c.Clear()
}

// Viewport is the pixel area the canvas covers.
func (c *Canvas) Viewport() field.Viewport {
	return field.Viewport{Width: float64(c.Width) * c.CellW, Height: float64(c.Height) * c.CellH}
}

// Set turns on the dot at sub-pixel (x, y); the canvas is Width*2 by
// Height*4 sub-pixels. Out of range dots are dropped.
func (c *Canvas) Set(x, y int, opacity float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	lv := c.Level[row][col]
	c.Level[row][col] = 1 - (1-lv)*(1-opacity)
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Level[i][j] = 0
		}
	}
}

func (c *Canvas) sub(p field.Vec2) (float64, float64) {
	return p.X / c.CellW * 2, p.Y / c.CellH * 4
}

func (c *Canvas) Dot(at field.Vec2, radius float64, ink color.RGBA, opacity float64) {
	c.ink = ink
	x, y := c.sub(at)
	c.Set(int(math.Floor(x)), int(math.Floor(y)), opacity)
}

func (c *Canvas) Line(a, b field.Vec2, ink color.RGBA, opacity float64) {
	c.ink = ink
	c.segment(a, b, opacity)
}

func (c *Canvas) Polyline(pts []field.Vec2, ink color.RGBA, opacity float64) {
	c.ink = ink
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1], pts[i], opacity)
	}
}

func (c *Canvas) segment(a, b field.Vec2, opacity float64) {
	x0, y0 := c.sub(a)
	x1, y1 := c.sub(b)
	p, q, ok := field.ClipSegment(field.Vec2{X: x0, Y: y0}, field.Vec2{X: x1, Y: y1},
		float64(c.Width*2-1), float64(c.Height*4-1))
	if !ok {
		return
	}
	c.drawLine(int(math.Floor(p.X)), int(math.Floor(p.Y)), int(math.Floor(q.X)), int(math.Floor(q.Y)), opacity)
}

// drawLine draws a line using Bresenham's algorithm
func (c *Canvas) drawLine(x0, y0, x1, y1 int, opacity float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, opacity)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Overlay is text drawn on top of the canvas at a cell position.
type Overlay struct {
	Row, Col int
	Text     string
	Style    lipgloss.Style
}

// Render returns the canvas as styled rows, with each cell's ink blended
// into the theme background by its level.
func (c *Canvas) Render(th Theme, overlays ...Overlay) string {
	palette := th.InkRamp(c.ink, inkLevels)
	byRow := make(map[int][]Overlay, len(overlays))
	for _, o := range overlays {
		byRow[o.Row] = append(byRow[o.Row], o)
	}

	var b strings.Builder
	for r, row := range c.Grid {
		col := 0
		for col < len(row) {
			if o, ok := overlayAt(byRow[r], col); ok {
				w := lipgloss.Width(o.Text)
				b.WriteString(o.Style.Render(o.Text))
				col += max(w, 1)
				continue
			}
			ch := row[col]
			if ch == brailleBlank {
				b.WriteByte(' ')
			} else {
				b.WriteString(palette[levelIndex(c.Level[r][col])].Render(string(ch)))
			}
			col++
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the bare braille grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func overlayAt(list []Overlay, col int) (Overlay, bool) {
	for _, o := range list {
		if o.Col == col {
			return o, true
		}
	}
	return Overlay{}, false
}

func levelIndex(level float64) int {
	i := int(level * inkLevels)
	if i >= inkLevels {
		i = inkLevels - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
