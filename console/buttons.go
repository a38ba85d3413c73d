package console

import (
	"bufio"
	"io"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/timerloop"
)

// Buttons maps typed characters to button events:
//
//	r - reset the board
//	u - raise the frame delay (slower)
//	d - lower the frame delay (faster)
//	m - toggle fade-out / live mode
//
// Events are dispatched onto the frame loop, so handlers never run
// concurrently with a frame callback.
type Buttons struct {
	loop     *timerloop.Loop
	handlers map[hal.Button]hal.Handler
}

// NewButtons returns a button registry dispatching onto loop.
func NewButtons(loop *timerloop.Loop) *Buttons {
	return &Buttons{
		loop:     loop,
		handlers: make(map[hal.Button]hal.Handler),
	}
}

// Register installs the handler for one button. Call before ReadFrom.
func (b *Buttons) Register(btn hal.Button, h hal.Handler) {
	b.handlers[btn] = h
}

// ReadFrom consumes characters from r until EOF. Each recognized key
// produces a press followed by a release, matching the press/release
// contract of the physical buttons.
func (b *Buttons) ReadFrom(r io.Reader) {
	in := bufio.NewReader(r)
	for {
		ch, _, err := in.ReadRune()
		if err != nil {
			return
		}
		var btn hal.Button
		switch ch {
		case 'r':
			btn = hal.ButtonReset
		case 'u':
			btn = hal.ButtonSpeedUp
		case 'd':
			btn = hal.ButtonSpeedDown
		case 'm':
			btn = hal.ButtonMode
		default:
			continue
		}
		h := b.handlers[btn]
		if h == nil {
			continue
		}
		b.loop.Dispatch(func() {
			h(true)
			h(false)
		})
	}
}
