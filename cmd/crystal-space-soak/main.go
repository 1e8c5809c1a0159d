// Command crystal-space-soak drives many seeded scenes with random input and exits non-zero
// if any camera invariant is broken.
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

	"github.com/Carmen-Shannon/crystal-space/engine/config"
	"github.com/Carmen-Shannon/crystal-space/engine/soak"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s\n\nConfigured through %s* environment variables.\n", os.Args[0], config.EnvPrefix)
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Soak] config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := soak.NewRunner(
		soak.WithScenes(cfg.SoakScenes),
		soak.WithTicks(cfg.SoakTicks),
		soak.WithWorkers(cfg.Workers()),
		soak.WithBaseSeed(cfg.Seed),
		soak.WithPlanetCount(cfg.Planets),
		soak.WithControllerOptions(cfg.ControllerOptions()...),
	).Run(ctx)

	for _, v := range report.Violations {
		log.Printf("[Soak] %s", v)
	}
	if !report.OK() {
		os.Exit(1)
	}
}
