package life

import (
	"time"

	"badge.team/fastlife/hal"
)

// flashDuration is how long the can't-go-further background flash shows.
// Blocking for it is fine: nothing else has to run while it is visible.
const flashDuration = 100 * time.Millisecond

var flashColor = hal.Color{R: 127, G: 127, B: 127}

// Bind registers the four button actions. Handlers run on the same
// dispatch thread as the frame callback, interleaved between frames, so
// the configuration they mutate is at most one frame stale when read.
func (g *Game) Bind(buttons hal.Buttons) {
	buttons.Register(hal.ButtonReset, g.onReset)
	buttons.Register(hal.ButtonSpeedUp, g.onSpeedUp)
	buttons.Register(hal.ButtonSpeedDown, g.onSpeedDown)
	buttons.Register(hal.ButtonMode, g.onMode)
}

// onReset clears the display right away; the board itself is
// re-randomized at the start of the next frame.
func (g *Game) onReset(pressed bool) {
	if !pressed {
		return
	}
	g.display.Clear()
	g.resetPending = true
}

func (g *Game) onSpeedUp(pressed bool) {
	if !pressed {
		return
	}
	if g.settings.SpeedUp() {
		g.saveSettings()
	} else {
		g.flashBounds()
	}
}

func (g *Game) onSpeedDown(pressed bool) {
	if !pressed {
		return
	}
	if g.settings.SpeedDown() {
		g.saveSettings()
	} else {
		g.flashBounds()
	}
}

func (g *Game) onMode(pressed bool) {
	if !pressed {
		return
	}
	g.settings.ToggleMode()
	g.saveSettings()
}

// flashBounds briefly lights the background grey to signal that the delay
// is already at its limit.
func (g *Game) flashBounds() {
	g.display.Background(flashColor)
	time.Sleep(flashDuration)
	g.display.Background(hal.Color{})
}
