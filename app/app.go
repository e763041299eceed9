// Package app wires the sampler, frame pool and outputs into the headless
// renderer and the interactive viewer.
package app

import (
	"github.com/pthm-cable/oripop/config"
	"github.com/pthm-cable/oripop/field"
)

// Options holds settings that come from the command line rather than the
// config file.
type Options struct {
	Seed      uint64  // 0 = use config seed
	Frames    int     // Headless: number of frames to render
	Start     float32 // Headless: first frame time in seconds
	FPS       float32 // Headless: frame times per second of field time
	OutputDir string  // Overrides telemetry.output_dir when set
	Workers   int     // Overrides frames.workers when > 0
}

// Params returns the config params with command-line overrides applied.
func (o Options) Params(cfg *config.Config) field.Params {
	p := cfg.Params.Clone()
	if o.Seed != 0 {
		p.Seed = o.Seed
	}
	return p
}

// WorkersFor returns the worker count, preferring the command line.
func (o Options) WorkersFor(cfg *config.Config) int {
	if o.Workers > 0 {
		return o.Workers
	}
	return cfg.Frames.Workers
}

func (o Options) outputDir(cfg *config.Config) string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return cfg.Telemetry.OutputDir
}

// FrameTimes returns n times starting at start, spaced 1/fps apart. A
// negative n yields no times.
func FrameTimes(start, fps float32, n int) []float32 {
	if fps <= 0 {
		fps = field.FramesPerSecond
	}
	times := make([]float32, max(n, 0))
	for i := range times {
		times[i] = start + float32(i)/fps
	}
	return times
}
