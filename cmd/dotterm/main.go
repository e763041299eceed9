// Terminal dot field preview.
//
// Usage: go run ./cmd/dotterm [-config path] [-log file]
//
// Keys: +/- step frames, space animates, i inverts, q/Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/oripop/config"
	"github.com/pthm-cable/oripop/field"
	"github.com/pthm-cable/oripop/frames"
)

type preview struct {
	screen    tcell.Screen
	params    field.Params
	cache     *frames.Cache
	frame     int64
	animating bool
	last      time.Duration
}

func main() {
	configPath := flag.String("config", "", "Path or go-getter URL of config.yaml (empty = use defaults)")
	logPath := flag.String("log", "", "Write JSON logs to this file (terminal is in use)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	p := &preview{
		screen: screen,
		params: cfg.Params.Clone(),
		cache:  frames.NewCache(cfg.Frames.CacheSize),
	}
	p.run()

	st := p.cache.Stats()
	slog.Info("preview closed", "frame", p.frame, "cache_hits", st.Hits, "cache_misses", st.Misses)
}

func (p *preview) run() {
	ticker := time.NewTicker(time.Second / field.FramesPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- p.screen.PollEvent()
		}
	}()

	p.draw()
	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return
			}
			p.draw()
		case <-ticker.C:
			if p.animating {
				p.frame++
				p.draw()
			}
		}
	}
}

func (p *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				p.frame++
			case '-', '_':
				p.frame--
			case ' ':
				p.animating = !p.animating
			case 'i':
				p.params.Render.Invert = !p.params.Render.Invert
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *preview) draw() {
	start := time.Now()
	dots := p.cache.GetFrame(p.params, p.frame).Dots
	p.last = time.Since(start)

	w, h := p.screen.Size()
	rows := h - 1
	grid := Bin(dots, p.params, w, rows)

	fg, bg := tcell.ColorWhite, tcell.ColorBlack
	if p.params.Render.Invert {
		fg, bg = bg, fg
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	p.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			p.screen.SetContent(grid.OffX+x, grid.OffY+y, grid.Shade(x, y), nil, style)
		}
	}

	status := fmt.Sprintf(" frame %d  dots %d  gen %s  [+/-] step  [space] %s  [i] invert  [q] quit",
		p.frame, len(dots), p.last.Round(time.Millisecond), playLabel(p.animating))
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		p.screen.SetContent(x, h-1, r, nil, statusStyle)
	}
	p.screen.Show()
}

func playLabel(animating bool) string {
	if animating {
		return "pause"
	}
	return "play"
}
