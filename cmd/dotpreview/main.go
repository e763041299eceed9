// Dot field preview tool - interactive tuning with sliders.
//
// Usage: go run ./cmd/dotpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/oripop/camera"
	"github.com/pthm-cable/oripop/config"
	"github.com/pthm-cable/oripop/field"
	"github.com/pthm-cable/oripop/renderer"
)

const (
	windowWidth  = 1100
	windowHeight = 820
	previewSize  = 640
	previewX     = 10
	previewY     = 10
	panelWidth   = windowWidth - previewSize - 40
)

// panel lays out labeled sliders top to bottom.
type panel struct {
	x, y    float32
	changed bool
}

// bar draws a labeled slider with its knob at v clamped to [lo, hi] and
// returns the knob position after input.
func (p *panel) bar(label string, v, lo, hi float32, text string) float32 {
	rl.DrawText(label, int32(p.x), int32(p.y), 14, rl.Gray)
	p.y += 18
	nv := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: p.y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		knob(v, lo, hi), lo, hi,
	)
	rl.DrawText(text, int32(p.x+float32(panelWidth-70)), int32(p.y+2), 16, rl.DarkGray)
	p.y += 32
	return nv
}

// slider edits a float param. Values outside the slider range are kept
// until the knob is moved.
func (p *panel) slider(label string, v *float32, lo, hi float32, format string) {
	nv := p.bar(label, *v, lo, hi, fmt.Sprintf(format, *v))
	if next, moved := settle(*v, lo, hi, nv); moved {
		*v = next
		p.changed = true
	}
}

// sliderUint is slider for integer params.
func (p *panel) sliderUint(label string, v *uint64, lo, hi float32) {
	nv := p.bar(label, float32(*v), lo, hi, fmt.Sprintf("%d", *v))
	if next, moved := settleUint(*v, lo, hi, nv); moved {
		*v = next
		p.changed = true
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	initial := cfg.Params.Clone()
	params := initial.Clone()

	rl.InitWindow(windowWidth, windowHeight, "Dot Field Preview")
	if !rl.IsWindowReady() {
		slog.Error("failed to create window")
		os.Exit(1)
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	cam := camera.New(previewSize, previewSize, params.Canvas.Width, params.Canvas.Height)

	var t float32
	animating := false
	needsRegen := true
	var dots []field.Dot
	var genTime time.Duration
	var status string

	for !rl.WindowShouldClose() {
		if animating {
			prev := field.FrameIndex(t)
			t += rl.GetFrameTime()
			if field.FrameIndex(t) != prev {
				needsRegen = true
			}
		}

		if needsRegen {
			start := time.Now()
			dots = field.GenerateDots(params, t)
			genTime = time.Since(start)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPreview(dots, cam, params.Render)

		statsY := int32(previewY + previewSize + 15)
		rl.DrawText(fmt.Sprintf("Frame: %d  Time: %.2fs  Dots: %d  Gen: %s",
			field.FrameIndex(t), t, len(dots), genTime.Round(time.Millisecond)), 15, statsY, 16, rl.DarkGray)
		if status != "" {
			rl.DrawText(status, 15, statsY+22, 14, rl.Gray)
		}

		// Control panel
		p := &panel{x: float32(previewSize + 30), y: 10}
		rl.DrawText("Dot Field Parameters", int32(p.x), int32(p.y), 20, rl.DarkGray)
		p.y += 35

		s := &params.Field.Singularity
		p.slider("Center X", &s.CX, 0, 1, "%.2f")
		p.slider("Center Y", &s.CY, 0, 1, "%.2f")
		p.slider("Falloff (radial sharpness)", &s.Falloff, 0, 60, "%.1f")
		p.slider("Strength (peak density)", &s.Strength, 0, 2, "%.2f")
		p.slider("Warp amount", &params.Field.WarpAmount, 0, 0.5, "%.3f")
		p.slider("Warp frequency", &params.Field.WarpFrequency, 0.5, 20, "%.1f")

		rl.DrawLine(int32(p.x), int32(p.y), int32(p.x)+int32(panelWidth)-20, int32(p.y), rl.LightGray)
		p.y += 12

		d := &params.Distribution
		count := uint64(d.DotCount)
		p.sliderUint("Dot count", &count, 1000, 80000)
		d.DotCount = uint32(count)
		p.slider("Density power (acceptance curve)", &d.DensityPow, 0.01, 5, "%.2f")
		p.slider("Jitter", &d.Jitter, 0, 0.02, "%.4f")
		p.slider("Min radius", &d.MinRadius, 0.0001, 0.01, "%.4f")
		p.slider("Max radius", &d.MaxRadius, 0.0001, 0.01, "%.4f")

		p.sliderUint("Seed", &params.Seed, 0, 99999)

		if p.changed {
			needsRegen = true
		}
		p.y += 10

		if gui.Button(rl.Rectangle{X: p.x, Y: p.y, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: p.x + 130, Y: p.y, Width: 120, Height: 30}, "Reset Time") {
			t = 0
			needsRegen = true
		}
		p.y += 40

		if gui.Button(rl.Rectangle{X: p.x, Y: p.y, Width: 120, Height: 30}, toggleText(params.Render.Invert, "Normal", "Invert")) {
			params.Render.Invert = !params.Render.Invert
		}
		if gui.Button(rl.Rectangle{X: p.x + 130, Y: p.y, Width: 120, Height: 30}, "Reset All") {
			params = initial.Clone()
			t = 0
			needsRegen = true
		}

		rl.DrawText("Press C to copy params YAML to clipboard", int32(p.x), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml, err := config.ParamsYAML(params)
			if err != nil {
				status = err.Error()
			} else {
				rl.SetClipboardText(yaml)
				status = fmt.Sprintf("copied %d lines", strings.Count(yaml, "\n"))
			}
		}

		rl.EndDrawing()
	}
}

// drawPreview draws dots into the preview square.
func drawPreview(dots []field.Dot, cam *camera.Camera, r field.Render) {
	bg, fg := renderer.Palette(r)
	rl.DrawRectangle(previewX, previewY, previewSize, previewSize, rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255})
	ink := rl.Color{R: fg.R, G: fg.G, B: fg.B, A: 255}

	rl.BeginScissorMode(previewX, previewY, previewSize, previewSize)
	scale := cam.Scale()
	for _, d := range dots {
		if !renderer.Visible(d, r) {
			continue
		}
		sx, sy := cam.WorldToScreen(d.X, d.Y)
		rl.DrawCircleV(rl.Vector2{X: sx + previewX, Y: sy + previewY}, renderer.PixelRadius(d.R, scale), ink)
	}
	rl.EndScissorMode()
	rl.DrawRectangleLines(previewX, previewY, previewSize, previewSize, rl.DarkGray)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
