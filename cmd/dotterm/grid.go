package main

import "github.com/pthm-cable/oripop/field"

// Shade ramp from empty to densest cell.
var ramp = []rune(" .:-=+*#%@")

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Grid counts dots per terminal cell.
type Grid struct {
	Cols, Rows int
	OffX, OffY int
	Counts     []int
	Max        int
}

// Bin maps dots onto a cols x rows grid, fitting the canvas uniformly and
// centering it. Dots hidden by the render threshold are skipped.
func Bin(dots []field.Dot, p field.Params, cols, rows int) Grid {
	g := Grid{}
	if cols <= 0 || rows <= 0 || p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return g
	}

	// Cells per canvas unit; rows are cellAspect times taller than columns
	sx := float64(cols) / float64(p.Canvas.Width)
	sy := float64(rows) * cellAspect / float64(p.Canvas.Height)
	s := min(sx, sy)

	g.Cols = max(1, int(float64(p.Canvas.Width)*s))
	g.Rows = max(1, int(float64(p.Canvas.Height)*s/cellAspect))
	g.OffX = (cols - g.Cols) / 2
	g.OffY = (rows - g.Rows) / 2
	g.Counts = make([]int, g.Cols*g.Rows)

	for _, d := range dots {
		if p.Render.Threshold != nil && d.W < *p.Render.Threshold {
			continue
		}
		cx := int(float64(d.X) / float64(p.Canvas.Width) * float64(g.Cols))
		cy := int(float64(d.Y) / float64(p.Canvas.Height) * float64(g.Rows))
		cx = min(max(cx, 0), g.Cols-1)
		cy = min(max(cy, 0), g.Rows-1)
		i := cy*g.Cols + cx
		g.Counts[i]++
		if g.Counts[i] > g.Max {
			g.Max = g.Counts[i]
		}
	}
	return g
}

// Shade returns the ramp rune for cell (x, y) in grid coordinates.
func (g Grid) Shade(x, y int) rune {
	if g.Max == 0 {
		return ramp[0]
	}
	c := g.Counts[y*g.Cols+x]
	if c == 0 {
		return ramp[0]
	}
	i := 1 + (c*(len(ramp)-1)-1)/g.Max
	return ramp[min(i, len(ramp)-1)]
}
