// The fastlife-sim command runs the simulation interactively against one
// of the front-ends. Configuration comes from the environment:
//
//	FASTLIFE_FRONTEND  console (default), sdl or ebiten
//	FASTLIFE_STORE     path of the settings database (default fastlife.db)
//	FASTLIFE_SCALE     window pixels per cell for sdl/ebiten (default 24)
//	FASTLIFE_TIMING    log per-round evolve timings (default false)
package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"badge.team/fastlife/console"
	"badge.team/fastlife/ebitenui"
	"badge.team/fastlife/hal"
	"badge.team/fastlife/life"
	"badge.team/fastlife/sdlui"
	"badge.team/fastlife/timerloop"
	"badge.team/fastlife/valuestore"
)

// The badge fires its timer dispatch every 25ms; a shorter period
// interferes with button detection there, so the simulator keeps it.
const basePeriodMS = 25

type config struct {
	Frontend  string `env:"FASTLIFE_FRONTEND" envDefault:"console"`
	StorePath string `env:"FASTLIFE_STORE" envDefault:"fastlife.db"`
	Scale     int    `env:"FASTLIFE_SCALE" envDefault:"24"`
	Timing    bool   `env:"FASTLIFE_TIMING" envDefault:"false"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	// A broken store is not fatal: the game falls back to defaults and
	// the session's settings just won't survive a restart.
	var store hal.ValueStore
	db, err := valuestore.Open(cfg.StorePath)
	if err != nil {
		log.Printf("opening value store: %v (settings will not persist)", err)
		store = valuestore.NewMemory()
	} else {
		defer db.Close()
		store = db
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch cfg.Frontend {
	case "console":
		runConsole(cfg, store, rng)
	case "sdl":
		runSDL(cfg, store, rng)
	case "ebiten":
		runEbiten(cfg, store, rng)
	default:
		log.Fatalf("unknown front-end %q (want console, sdl or ebiten)", cfg.Frontend)
	}
}

func runConsole(cfg config, store hal.ValueStore, rng *rand.Rand) {
	display := console.NewDisplay(os.Stdout)
	defer display.Restore()

	loop := timerloop.NewLoop()
	buttons := console.NewButtons(loop)

	game := life.New(display, store, log.Default(), rng)
	game.SetTiming(cfg.Timing)
	game.Bind(buttons)

	// Feed stdin keys into the loop; EOF leaves the simulation running.
	go buttons.ReadFrom(os.Stdin)

	loop.Begin(basePeriodMS)
	loop.New(basePeriodMS, game.Frame)
}

func runSDL(cfg config, store hal.ValueStore, rng *rand.Rand) {
	front, err := sdlui.New("fastlife", cfg.Scale)
	if err != nil {
		log.Fatalf("sdl front-end: %v", err)
	}
	defer front.Destroy()

	game := life.New(front, store, log.Default(), rng)
	game.SetTiming(cfg.Timing)
	game.Bind(front)

	front.Begin(basePeriodMS)
	front.New(basePeriodMS, game.Frame)
}

func runEbiten(cfg config, store hal.ValueStore, rng *rand.Rand) {
	front := ebitenui.New(cfg.Scale)

	game := life.New(front, store, log.Default(), rng)
	game.SetTiming(cfg.Timing)
	game.Bind(front)

	front.Begin(basePeriodMS)
	front.New(basePeriodMS, game.Frame)
}
