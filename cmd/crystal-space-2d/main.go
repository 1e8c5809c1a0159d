// Command crystal-space-2d runs the orbiting system in an ebiten window, drawing bodies as circles.
//
// Settings are read from CRYSTAL_SPACE_ environment variables; see engine/config.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/crystal-space/engine/canvas"
	"github.com/Carmen-Shannon/crystal-space/engine/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s\n\nConfigured through %s* environment variables.\n", os.Args[0], config.EnvPrefix)
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Canvas] config: %v", err)
	}
	background, _ := cfg.Clear()

	eng, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("[Canvas] %v", err)
	}

	c := canvas.NewCanvas(eng,
		canvas.WithTitle(cfg.WindowTitle),
		canvas.WithSize(cfg.WindowWidth, cfg.WindowHeight),
		canvas.WithTPS(int(math.Round(cfg.TickRate))),
		canvas.WithClearColor(background),
	)
	if err := c.Run(); err != nil {
		log.Fatalf("[Canvas] %v", err)
	}
}
