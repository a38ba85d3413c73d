// Package ebitenui is the Ebiten front-end: the board drawn into a small
// offscreen image that Ebiten scales up to the window every frame.
package ebitenui

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/life"
	"badge.team/fastlife/util"
)

// Frontend implements ebiten.Game plus the display, button and timer
// contracts. Ebiten ticks at its own rate; the simulation frame callback
// only fires once the delay it last returned has elapsed.
type Frontend struct {
	img      *ebiten.Image
	bg       hal.Color
	scale    int
	handlers map[hal.Button]hal.Handler

	frame hal.Frame
	delay time.Duration
	last  time.Time
}

// New returns a front-end rendering each cell as a scale x scale square.
func New(scale int) *Frontend {
	return &Frontend{
		img:      ebiten.NewImage(life.Cols, life.Rows),
		scale:    scale,
		handlers: make(map[hal.Button]hal.Handler),
	}
}

// Clear fills the board image with the background color.
func (f *Frontend) Clear() {
	f.img.Fill(rgba(f.bg))
}

// Pixel lights one cell in the board image.
func (f *Frontend) Pixel(c hal.Color, p util.Cell) {
	f.img.Set(p.X, p.Y, rgba(c))
}

// Background sets the background color. The flash handler sleeps before
// restoring it, and Draw cannot run while a handler blocks Update, so
// the flash shows as a brief hitch here rather than a grey blink.
func (f *Frontend) Background(c hal.Color) {
	f.bg = c
	f.img.Fill(rgba(c))
}

func (f *Frontend) DisableComp() {}

func (f *Frontend) EnableComp() {}

// Register installs the handler for one button.
func (f *Frontend) Register(b hal.Button, h hal.Handler) {
	f.handlers[b] = h
}

// Begin is kept for contract parity; Ebiten drives its own tick rate.
func (f *Frontend) Begin(basePeriodMS int) {}

// New starts the Ebiten loop. It blocks until the window is closed.
func (f *Frontend) New(periodMS int, frame hal.Frame) {
	f.frame = frame
	f.delay = time.Duration(periodMS) * time.Millisecond
	f.last = time.Now()
	ebiten.SetWindowSize(life.Cols*f.scale, life.Rows*f.scale)
	ebiten.SetWindowTitle("fastlife")
	if err := ebiten.RunGame(f); err != nil {
		log.Printf("ebiten: %v", err)
	}
}

// Update fires button handlers and, once the current delay has elapsed,
// the simulation frame callback.
func (f *Frontend) Update() error {
	f.pollButtons()
	if time.Since(f.last) >= f.delay {
		next := f.frame()
		f.delay = time.Duration(next) * time.Millisecond
		f.last = time.Now()
	}
	return nil
}

// Draw scales the board image up to the window.
func (f *Frontend) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(f.scale), float64(f.scale))
	screen.DrawImage(f.img, op)
}

// Layout fixes the logical screen size to the scaled board.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return life.Cols * f.scale, life.Rows * f.scale
}

// Key bindings mirror the SDL front-end: R reset, arrows for speed, M
// for the display mode.
var keymap = map[ebiten.Key]hal.Button{
	ebiten.KeyR:         hal.ButtonReset,
	ebiten.KeyArrowUp:   hal.ButtonSpeedUp,
	ebiten.KeyArrowDown: hal.ButtonSpeedDown,
	ebiten.KeyM:         hal.ButtonMode,
}

func (f *Frontend) pollButtons() {
	for key, btn := range keymap {
		h := f.handlers[btn]
		if h == nil {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			h(true)
		}
		if inpututil.IsKeyJustReleased(key) {
			h(false)
		}
	}
}

func rgba(c hal.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
