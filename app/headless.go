package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/oripop/config"
	"github.com/pthm-cable/oripop/field"
	"github.com/pthm-cable/oripop/frames"
	"github.com/pthm-cable/oripop/renderer"
	"github.com/pthm-cable/oripop/telemetry"
)

// Summary describes a finished headless run.
type Summary struct {
	Frames   int
	Dots     int
	Attempts int
	Elapsed  time.Duration
}

// RunHeadless renders opts.Frames frames on the worker pool and writes PNGs,
// stats and (optionally) dot dumps to the output directory.
func RunHeadless(ctx context.Context, cfg *config.Config, opts Options) (Summary, error) {
	start := time.Now()
	params := opts.Params(cfg)

	out, err := telemetry.NewOutputManager(opts.outputDir(cfg), cfg.Telemetry.WriteDots)
	if err != nil {
		return Summary{}, err
	}
	defer out.Close()

	// The snapshot carries the effective params so it reproduces this run.
	snap := *cfg
	snap.Params = params
	if err := out.WriteConfig(&snap); err != nil {
		return Summary{}, fmt.Errorf("writing config snapshot: %w", err)
	}

	pool := frames.NewPool(opts.WorkersFor(cfg), nil)
	defer pool.Close()

	perf := telemetry.NewPerfCollector(cfg.Telemetry.LogEvery)
	times := FrameTimes(opts.Start, opts.FPS, opts.Frames)

	slog.Info("starting headless render",
		"seed", params.Seed,
		"frames", len(times),
		"dot_count", params.Distribution.DotCount,
		"workers", pool.Workers(),
		"output_dir", out.Dir(),
	)

	var sum Summary
	batch := pool.Workers() * 2
	for lo := 0; lo < len(times); lo += batch {
		hi := min(lo+batch, len(times))
		rendered, err := pool.Render(ctx, params, times[lo:hi])
		if err != nil {
			return sum, fmt.Errorf("rendering frames: %w", err)
		}

		for _, f := range rendered {
			perf.StartFrame()
			if err := writeFrame(out, perf, params, cfg.Screen, f); err != nil {
				return sum, err
			}
			sum.Frames++
			sum.Dots += len(f.Dots)
			sum.Attempts += f.Attempts

			perf.EndFrame()

			if every := cfg.Telemetry.LogEvery; every > 0 && sum.Frames%every == 0 {
				perf.Stats().LogStats()
			}
		}
	}

	sum.Elapsed = time.Since(start)
	slog.Info("headless render finished",
		"frames", sum.Frames,
		"dots", sum.Dots,
		"attempts", sum.Attempts,
		"elapsed", sum.Elapsed.Round(time.Millisecond),
	)
	return sum, nil
}

func writeFrame(out *telemetry.OutputManager, perf *telemetry.PerfCollector, params field.Params, screen config.ScreenConfig, f frames.Frame) error {
	perf.StartPhase(telemetry.PhaseWrite)
	stats := telemetry.ComputeFrameStats(f.Result(), f.Time, f.Elapsed)
	stats.LogStats()

	if err := out.WriteFrame(stats); err != nil {
		return err
	}
	if err := out.WriteDots(f.Index, f.Dots); err != nil {
		return err
	}
	if path := out.FramePath(f.Index); path != "" {
		perf.StartPhase(telemetry.PhaseRasterize)
		if err := renderer.SavePNG(path, f.Dots, params, screen.Width, screen.Height); err != nil {
			return err
		}
	}
	return nil
}
