// Package sdlui is the SDL2 front-end: the pixel matrix drawn scaled up
// in a window, with keyboard keys standing in for the badge buttons.
package sdlui

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/life"
	"badge.team/fastlife/util"
)

// Frontend implements the display, button and timer contracts on top of
// one SDL window. The event loop, frame callback and button handlers all
// run on the goroutine that calls New, keeping the single-thread model.
type Frontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	bg       hal.Color
	handlers map[hal.Button]hal.Handler
	base     time.Duration
}

// New initialises SDL and opens the window. Call Destroy when done.
func New(title string, scale int) (*Frontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(life.Cols*scale), int32(life.Rows*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return &Frontend{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
		handlers: make(map[hal.Button]hal.Handler),
	}, nil
}

// Destroy tears the window and SDL down.
func (f *Frontend) Destroy() {
	f.renderer.Destroy()
	f.window.Destroy()
	sdl.Quit()
}

// Clear paints the whole window with the background color.
func (f *Frontend) Clear() {
	f.renderer.SetDrawColor(f.bg.R, f.bg.G, f.bg.B, 255)
	f.renderer.Clear()
}

// Pixel fills one scaled cell.
func (f *Frontend) Pixel(c hal.Color, p util.Cell) {
	f.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	f.renderer.FillRect(&sdl.Rect{
		X: int32(p.X) * f.scale,
		Y: int32(p.Y) * f.scale,
		W: f.scale,
		H: f.scale,
	})
}

// Background changes the background color and shows it immediately, so
// the bounds-reached flash is visible between frames.
func (f *Frontend) Background(c hal.Color) {
	f.bg = c
	f.Clear()
	f.renderer.Present()
}

func (f *Frontend) DisableComp() {}

// EnableComp presents the finished frame.
func (f *Frontend) EnableComp() {
	f.renderer.Present()
}

// Register installs the handler for one button.
func (f *Frontend) Register(b hal.Button, h hal.Handler) {
	f.handlers[b] = h
}

// Begin records the base dispatch period.
func (f *Frontend) Begin(basePeriodMS int) {
	f.base = time.Duration(basePeriodMS) * time.Millisecond
}

// New runs the SDL event loop on the calling goroutine: it polls events,
// fires button handlers and invokes the frame callback whenever its
// deadline passes. Closing the window ends the loop.
func (f *Frontend) New(periodMS int, frame hal.Frame) {
	next := time.Now().Add(time.Duration(periodMS) * time.Millisecond)
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.KeyboardEvent:
				f.key(e)
			}
		}
		if !time.Now().Before(next) {
			delay := frame()
			next = time.Now().Add(time.Duration(delay) * time.Millisecond)
		}
		// Idle between polls without burning a core.
		sdl.Delay(5)
	}
}

// key translates a keyboard event into a button press or release.
//
//	R          - reset
//	up arrow   - raise the frame delay (slower)
//	down arrow - lower the frame delay (faster)
//	M          - toggle fade-out / live mode
func (f *Frontend) key(e *sdl.KeyboardEvent) {
	if e.Repeat != 0 {
		return
	}
	var btn hal.Button
	switch e.Keysym.Sym {
	case sdl.K_r:
		btn = hal.ButtonReset
	case sdl.K_UP:
		btn = hal.ButtonSpeedUp
	case sdl.K_DOWN:
		btn = hal.ButtonSpeedDown
	case sdl.K_m:
		btn = hal.ButtonMode
	default:
		return
	}
	if h := f.handlers[btn]; h != nil {
		h(e.Type == sdl.KEYDOWN)
	}
}
