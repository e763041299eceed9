package main

import (
	"testing"

	"github.com/pthm-cable/oripop/field"
)

func TestBinCountsEveryDot(t *testing.T) {
	p := field.DefaultParams()
	p.Distribution.DotCount = 2000
	dots := field.GenerateDots(p, 0)

	g := Bin(dots, p, 80, 24)
	total := 0
	for _, c := range g.Counts {
		total += c
	}
	if total != len(dots) {
		t.Errorf("binned %d dots, want %d", total, len(dots))
	}
	if g.Max == 0 {
		t.Error("Max = 0, want > 0")
	}
}

func TestBinFitsTerminal(t *testing.T) {
	p := field.DefaultParams()

	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{"wide terminal", 80, 24, 48, 24},
		{"tall terminal", 20, 40, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Bin(nil, p, tt.cols, tt.rows)
			if g.Cols != tt.wantCols || g.Rows != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Cols, g.Rows, tt.wantCols, tt.wantRows)
			}
			if g.OffX < 0 || g.OffY < 0 || g.OffX+g.Cols > tt.cols || g.OffY+g.Rows > tt.rows {
				t.Errorf("grid at (%d,%d) size %dx%d does not fit %dx%d",
					g.OffX, g.OffY, g.Cols, g.Rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestBinThreshold(t *testing.T) {
	p := field.DefaultParams()
	p.Render.Threshold = field.Float(2)
	dots := []field.Dot{{X: 0.5, Y: 0.5, R: 0.001, W: 1}}

	g := Bin(dots, p, 10, 10)
	if g.Max != 0 {
		t.Errorf("Max = %d, want 0 with every dot below threshold", g.Max)
	}
}

func TestShadeRamp(t *testing.T) {
	g := Grid{Cols: 3, Rows: 1, Counts: []int{0, 1, 10}, Max: 10}

	if got := g.Shade(0, 0); got != ' ' {
		t.Errorf("empty cell = %q, want ' '", got)
	}
	if got := g.Shade(1, 0); got != '.' {
		t.Errorf("sparse cell = %q, want '.'", got)
	}
	if got := g.Shade(2, 0); got != '@' {
		t.Errorf("densest cell = %q, want '@'", got)
	}
	if got := (Grid{}).Shade(0, 0); got != ' ' {
		t.Errorf("empty grid = %q, want ' '", got)
	}
}

func TestBinDegenerate(t *testing.T) {
	p := field.DefaultParams()
	if g := Bin(nil, p, 0, 10); g.Counts != nil {
		t.Errorf("zero columns produced %d cells", len(g.Counts))
	}
	p.Canvas.Width = 0
	if g := Bin(nil, p, 10, 10); g.Counts != nil {
		t.Errorf("zero canvas produced %d cells", len(g.Counts))
	}
}
