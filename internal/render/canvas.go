package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultLogicalWidth  = 500
	DefaultLogicalHeight = 300

	blank = 0x2800
)

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille Surface. Width and Height are in cells.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]string

	logicalW, logicalH float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:    w,
		Height:   h,
		Grid:     make([][]rune, h),
		Ink:      make([][]string, h),
		logicalW: DefaultLogicalWidth,
		logicalH: DefaultLogicalHeight,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// SetLogicalSize changes the coordinate space routines draw in.
func (c *Canvas) SetLogicalSize(w, h float64) {
	if w > 0 && h > 0 {
		c.logicalW, c.logicalH = w, h
	}
}

func (c *Canvas) Size() (float64, float64) { return c.logicalW, c.logicalH }

// Dots returns the sub-pixel resolution.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) toDots(x, y float64) (int, int) {
	dw, dh := c.Dots()
	return int(math.Floor(x * float64(dw) / c.logicalW)), int(math.Floor(y * float64(dh) / c.logicalH))
}

// Set sets a pixel at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int, ink string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if ink != "" {
		c.Ink[row][col] = ink
	}
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = ""
		}
	}
}

// Lit counts lit sub-pixels.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := int(r - blank); bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) Plot(x, y float64, ink string) {
	px, py := c.toDots(x, y)
	c.Set(px, py, ink)
}

func (c *Canvas) Line(x0, y0, x1, y1 float64, ink string) {
	ax, ay := c.toDots(x0, y0)
	bx, by := c.toDots(x1, y1)
	c.DrawLine(ax, ay, bx, by, ink)
}

func (c *Canvas) Disc(cx, cy, r float64, ink string) {
	px, py := c.toDots(cx, cy)
	dw, dh := c.Dots()
	rx := int(math.Round(r * float64(dw) / c.logicalW))
	ry := int(math.Round(r * float64(dh) / c.logicalH))
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx, ny := float64(dx)/float64(rx), float64(dy)/float64(ry)
			if nx*nx+ny*ny <= 1.0 {
				c.Set(px+dx, py+dy, ink)
			}
		}
	}
}

// DrawLine draws a line in sub-pixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink string) {
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
		c.Set(x0, y0, ink)
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

// Plain renders the grid without color.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid, coloring runs of cells that share an ink.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Ink[i][j] == c.Ink[i][start] {
				continue
			}
			seg := string(row[start:j])
			if ink := c.Ink[i][start]; ink != "" {
				seg = lipgloss.NewStyle().Foreground(lipgloss.Color(ink)).Render(seg)
			}
			b.WriteString(seg)
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
