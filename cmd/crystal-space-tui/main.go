// Command crystal-space-tui runs the orbiting system in the terminal.
// Arrow keys or hjkl pan, the mouse wheel zooms toward the pointer, q quits.
//
// Settings are read from CRYSTAL_SPACE_ environment variables; see engine/config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/crystal-space/engine/config"
	"github.com/Carmen-Shannon/crystal-space/engine/terminal"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s\n\nConfigured through %s* environment variables.\n", os.Args[0], config.EnvPrefix)
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Terminal] config: %v", err)
	}
	// the terminal owns stdout, profiler output would corrupt the screen
	cfg.Profiling = false

	eng, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("[Terminal] %v", err)
	}

	m := terminal.NewModel(eng, terminal.WithTickInterval(time.Duration(float64(time.Second)/min(cfg.TickRate, 30))))
	if err := m.Run(); err != nil {
		log.Fatalf("[Terminal] %v", err)
	}
}
