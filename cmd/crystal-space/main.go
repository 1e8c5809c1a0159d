// Command crystal-space opens a GLFW window and renders the orbiting system with WebGPU.
//
// Settings are read from CRYSTAL_SPACE_ environment variables; see engine/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/crystal-space/engine"
	"github.com/Carmen-Shannon/crystal-space/engine/config"
	"github.com/Carmen-Shannon/crystal-space/engine/renderer"
	"github.com/Carmen-Shannon/crystal-space/engine/window"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s\n\nConfigured through %s* environment variables.\n", os.Args[0], config.EnvPrefix)
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Engine] config: %v", err)
	}
	background, _ := cfg.Clear()

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.WindowTitle),
		window.WithSize(cfg.WindowWidth, cfg.WindowHeight),
	)
	if err != nil {
		log.Fatalf("[Engine] window: %v", err)
	}
	defer win.Close()

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithClearColor(background),
	)
	if err != nil {
		log.Fatalf("[Engine] renderer: %v", err)
	}
	defer r.Release()
	win.SetResizeCallback(func(width, height int) {
		if err := r.Resize(width, height); err != nil {
			log.Printf("[Renderer] resize to %dx%d: %v", width, height, err)
		}
	})

	// ── Engine ──────────────────────────────────────────────────────────
	eng, err := cfg.NewEngine(
		engine.WithInputSource(win),
		engine.WithRenderer(r),
	)
	if err != nil {
		log.Fatalf("[Engine] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eng.Run(ctx); err != nil {
		log.Printf("[Engine] stopped after %d ticks: %v", eng.Ticks(), err)
		return
	}
	log.Printf("[Engine] closed after %d ticks", eng.Ticks())
}
