// Package hal declares the contracts between the simulation core and the
// platform it runs on: a pixel-matrix display, buttons, a frame timer and a
// persistent value store. Front-ends implement these against a terminal, an
// SDL window, an Ebiten window, or nothing at all for headless runs.
package hal

import "badge.team/fastlife/util"

// Color is the 3-byte RGB tuple the display consumes.
type Color struct {
	R, G, B uint8
}

// Display is a pixel-matrix driver. Writes issued between DisableComp and
// EnableComp must not become visible until composition is re-enabled, so a
// half-drawn frame never shows.
type Display interface {
	Clear()
	Pixel(c Color, p util.Cell)
	Background(c Color)
	DisableComp()
	EnableComp()
}

// Button identifies one of the physical inputs.
type Button int

const (
	ButtonReset Button = iota
	ButtonSpeedUp
	ButtonSpeedDown
	ButtonMode
)

// Handler receives both press and release events for a button.
type Handler func(pressed bool)

// Buttons registers handlers for press/release events.
type Buttons interface {
	Register(b Button, h Handler)
}

// Frame is a timer callback. Its return value is the delay in milliseconds
// before the timer invokes it again; it is always positive.
type Frame func() int

// Timers drives the frame loop. Begin sets the base dispatch period, New
// schedules the frame callback and blocks for the lifetime of the loop.
type Timers interface {
	Begin(basePeriodMS int)
	New(periodMS int, f Frame)
}

// ValueStore persists small records per app name and key. Load reports
// whether the record existed; absence is not an error.
type ValueStore interface {
	Load(app, key string, out any) (bool, error)
	Save(app, key string, v any) error
}

// NopDisplay discards every write. It stands in for the real display in
// benchmarks and headless runs.
type NopDisplay struct{}

func (NopDisplay) Clear()                 {}
func (NopDisplay) Pixel(Color, util.Cell) {}
func (NopDisplay) Background(Color)       {}
func (NopDisplay) DisableComp()           {}
func (NopDisplay) EnableComp()            {}
