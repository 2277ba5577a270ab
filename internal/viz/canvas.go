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

// Canvas is a grid of braille cells. Each cell holds 2x4 sub-pixels, so
// arrays too long for one column per bar still fit on screen.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
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

// column fills sub-pixel column x from the bottom up to height h.
func (c *Canvas) column(x, h int) {
	bottom := c.Height*4 - 1
	for y := bottom; y >= bottom-h && y >= 0; y-- {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Bars draws values as vertical bars spread over the canvas width. Heights
// are scaled between lo and hi. It returns the sub-pixel column of each bar.
func (c *Canvas) Bars(values []float64, lo, hi float64) []int {
	w, h := c.Width*2, c.Height*4
	cols := make([]int, len(values))
	if len(values) == 0 || w == 0 || h == 0 {
		return cols
	}
	if hi <= lo {
		hi = lo + 1
	}
	for i, v := range values {
		x := i * w / len(values)
		cols[i] = x
		bh := int((v - lo) / (hi - lo) * float64(h-1))
		if bh < 0 {
			bh = 0
		}
		c.column(x, bh)
	}
	return cols
}
