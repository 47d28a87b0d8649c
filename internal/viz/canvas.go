package viz

import (
	"strings"
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

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	marks         map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		marks:  make(map[[2]int]rune),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// DotWidth and DotHeight give the canvas size in Braille dots.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y); out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Mark replaces the whole cell containing dot (x, y) with r.
func (c *Canvas) Mark(x, y int, r rune) {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return
	}
	c.marks[[2]int{y / 4, x / 2}] = r
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	clear(c.marks)
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
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
		c.Set(x0, y0)
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

func (c *Canvas) String() string {
	var b strings.Builder
	for row, cells := range c.Grid {
		for col, r := range cells {
			if m, ok := c.marks[[2]int{row, col}]; ok {
				r = m
			}
			b.WriteRune(r)
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
