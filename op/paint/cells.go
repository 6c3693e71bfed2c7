// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"

	"tilekit.org/f32"
)

// Cells is a Canvas approximating drawing on a grid of
// terminal cells. Each cell covers a fixed number of pixels.
type Cells struct {
	cols, rows int
	cell       f32.Point
	grid       [][]rune
}

var _ Canvas = (*Cells)(nil)

// shades maps increasing luminance to a fill rune.
var shades = []rune{'█', '▓', '▒', '░', ' '}

// wide marks the trailing cell of a double width rune.
const wide = rune(0)

// NewCells returns a Cells canvas of cols×rows cells, each
// covering cell pixels.
func NewCells(cols, rows int, cell f32.Point) *Cells {
	if cols < 0 || rows < 0 || cell.X <= 0 || cell.Y <= 0 {
		panic("paint: invalid cell grid")
	}
	g := make([][]rune, rows)
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", cols))
	}
	return &Cells{cols: cols, rows: rows, cell: cell, grid: g}
}

func (c *Cells) Clip() f32.Rectangle {
	return f32.Rect(0, 0, float32(c.cols)*c.cell.X, float32(c.rows)*c.cell.Y)
}

func (c *Cells) Fill(r f32.Rectangle, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	ch := shade(col)
	cr := c.cells(r)
	for y := cr.Min.Y; y < cr.Max.Y; y++ {
		for x := cr.Min.X; x < cr.Max.X; x++ {
			c.put(x, y, ch)
		}
	}
}

func (c *Cells) Stroke(r f32.Rectangle, width float32, col color.NRGBA) {
	cr := c.cells(r)
	if cr.Dx() < 1 || cr.Dy() < 1 || width <= 0 {
		return
	}
	x0, y0, x1, y1 := cr.Min.X, cr.Min.Y, cr.Max.X-1, cr.Max.Y-1
	for x := x0; x <= x1; x++ {
		c.put(x, y0, '─')
		c.put(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		c.put(x0, y, '│')
		c.put(x1, y, '│')
	}
	if x0 == x1 || y0 == y1 {
		return
	}
	c.put(x0, y0, '┌')
	c.put(x1, y0, '┐')
	c.put(x0, y1, '└')
	c.put(x1, y1, '┘')
}

// Text writes s on the row containing the baseline. Double width
// runes occupy two cells.
func (c *Cells) Text(dot f32.Point, _ font.Face, s string, _ color.NRGBA) {
	y := int(math.Floor(float64((dot.Y - 1) / c.cell.Y)))
	if y < 0 || y >= c.rows {
		return
	}
	x := int(math.Floor(float64(dot.X / c.cell.X)))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.cols {
			return
		}
		if x >= 0 {
			c.put(x, y, r)
			if w == 2 {
				c.put(x+1, y, wide)
			}
		}
		x += w
	}
}

func (c *Cells) Image(r f32.Rectangle, _ image.Image) {
	c.Fill(r, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
}

// String returns the grid with trailing blanks removed from
// every line.
func (c *Cells) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := make([]rune, 0, len(row))
		for _, r := range row {
			if r != wide {
				line = append(line, r)
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
	}
	return b.String()
}

// Width returns the display width of s in cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// put writes r at column x of row y, blanking the other half of a
// double width rune it overwrites.
func (c *Cells) put(x, y int, r rune) {
	row := c.grid[y]
	if row[x] == wide && x > 0 {
		row[x-1] = ' '
	} else if x+1 < len(row) && row[x+1] == wide {
		row[x+1] = ' '
	}
	row[x] = r
}

// cells converts r to the range of covered cells, clipped to
// the grid.
func (c *Cells) cells(r f32.Rectangle) image.Rectangle {
	cr := image.Rect(
		int(math.Floor(float64(r.Min.X/c.cell.X)+.5)),
		int(math.Floor(float64(r.Min.Y/c.cell.Y)+.5)),
		int(math.Floor(float64(r.Max.X/c.cell.X)+.5)),
		int(math.Floor(float64(r.Max.Y/c.cell.Y)+.5)),
	)
	return cr.Intersect(image.Rect(0, 0, c.cols, c.rows))
}

func shade(c color.NRGBA) rune {
	// Rec. 601 luma.
	l := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	i := l * len(shades) / 256
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}
