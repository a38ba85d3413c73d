package life

import (
	"log"
	"math/rand"
	"time"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/util"
)

// TintPool holds the "live" cell colors a reset can choose from.
var TintPool = [8]hal.Color{
	{R: 0x00, G: 0xFF, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xFF},
	{R: 0xFF, G: 0x00, B: 0x00},
	{R: 0xB8, G: 0xE9, B: 0x86},
	{R: 0xF8, G: 0xB7, B: 0x00},
	{R: 0x50, G: 0xE3, B: 0xC2},
	{R: 0xFE, G: 0x13, B: 0xD4},
	{R: 0x90, G: 0x13, B: 0xFE},
}

// DefaultPalette is the fade-out gradient indexed by intensity-1, dimmest
// first. Slot 8 is a placeholder for the fully-alive color: every reset
// overwrites it with a tint picked from TintPool.
var DefaultPalette = [9]hal.Color{
	{R: 52, G: 41, B: 51},
	{R: 68, G: 50, B: 58},
	{R: 83, G: 60, B: 63},
	{R: 96, G: 71, B: 67},
	{R: 106, G: 84, B: 71},
	{R: 114, G: 98, B: 77},
	{R: 118, G: 113, B: 87},
	{R: 119, G: 128, B: 100},
	{R: 250, G: 250, B: 110},
}

// Game owns the whole run state: the board ring, the round counter, the
// reset flag, the palette and the user settings. The frame callback and
// the button handlers all operate on the same Game, and the platform only
// ever invokes them from its single dispatch thread, so none of this
// needs locking.
type Game struct {
	hist         history
	round        int
	resetPending bool
	palette      [9]hal.Color

	settings Settings
	display  hal.Display
	store    hal.ValueStore
	rng      *rand.Rand
	logger   *log.Logger
	timing   bool
}

// New creates a game against the given collaborators. Settings are loaded
// from the store, falling back to defaults when the record is absent or
// the store is broken. The first frame performs the initial board
// randomization, so the game is ready to schedule as soon as it returns.
func New(display hal.Display, store hal.ValueStore, logger *log.Logger, rng *rand.Rand) *Game {
	if logger == nil {
		logger = log.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		display:      display,
		store:        store,
		logger:       logger,
		rng:          rng,
		settings:     DefaultSettings(),
		palette:      DefaultPalette,
		resetPending: true,
	}
	g.hist.init()
	g.loadSettings()
	return g
}

// Board returns the board currently on display.
func (g *Game) Board() Board {
	return g.hist.current()
}

// Settings returns a copy of the active configuration.
func (g *Game) Settings() Settings {
	return g.settings
}

// SetTiming turns per-round evolve timing logs on or off.
func (g *Game) SetTiming(on bool) {
	g.timing = on
}

// Frame runs one frame: performs a pending reset, renders the current
// board, evolves it and checks for stagnation. It returns the delay in
// milliseconds the timer should wait before the next frame; after a
// stagnation decision that is three times the configured delay, so the
// final board lingers visibly before the randomized one replaces it.
func (g *Game) Frame() int {
	if g.resetPending {
		g.reset()
	}

	g.render()

	start := time.Now()
	Evolve(g.hist.current(), g.hist.scratch())
	if g.timing {
		g.logger.Printf("round %d evolved in %v", g.round, time.Since(start))
	}

	if g.hist.stagnant() {
		g.logger.Printf("board finished; resetting")
		g.resetPending = true
		return g.settings.DelayMS * 3
	}

	g.round++
	if g.round > MaxRounds {
		g.logger.Printf("bored of this board; resetting")
		g.resetPending = true
		return g.settings.DelayMS * 3
	}

	g.hist.rotate()
	return g.settings.DelayMS
}

// reset randomizes a fresh board, clears the history and the round
// counter and picks a new tint for the fully-alive cells.
func (g *Game) reset() {
	g.hist.clear()
	g.hist.current().Randomize(g.rng, Density)
	g.palette[8] = TintPool[g.rng.Intn(len(TintPool))]
	g.round = 0
	g.resetPending = false
}

// render pushes the current board to the display. Composition is disabled
// around the writes so a partially drawn frame never becomes visible.
func (g *Game) render() {
	d := g.display
	d.DisableComp()
	d.Clear()

	board := g.hist.current()
	pos := Offset
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if v := board[pos]; v != 0 {
				if g.settings.Mode == ModeFadeOut {
					// Fade effect after cells die.
					d.Pixel(g.palette[v-1], util.Cell{X: c, Y: r})
				} else if v == MaxIntensity {
					// Live mode only shows cells that are alive.
					d.Pixel(g.palette[8], util.Cell{X: c, Y: r})
				}
			}
			pos++
		}
		pos += 2
	}

	d.EnableComp()
}

// loadSettings pulls the persisted configuration. A missing record or a
// broken store is not an error; defaults apply.
func (g *Game) loadSettings() {
	s := DefaultSettings()
	ok, err := g.store.Load(AppName, settingsKey, &s)
	if err != nil {
		g.logger.Printf("loading settings: %v (using defaults)", err)
		return
	}
	if ok {
		g.settings = s
	}
}

// saveSettings writes the configuration through synchronously. Failures
// are logged and otherwise ignored; the running game keeps its values.
func (g *Game) saveSettings() {
	if err := g.store.Save(AppName, settingsKey, g.settings); err != nil {
		g.logger.Printf("saving settings: %v", err)
	}
}
