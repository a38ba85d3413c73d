package console

import (
	"strings"
	"testing"
	"time"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/timerloop"
)

func TestButtonsDispatchPressAndRelease(t *testing.T) {
	loop := timerloop.NewLoop()
	go loop.New(1000, func() int { return 1000 })
	defer loop.Stop()

	buttons := NewButtons(loop)
	type event struct {
		btn     hal.Button
		pressed bool
	}
	events := make(chan event, 8)
	for _, btn := range []hal.Button{hal.ButtonReset, hal.ButtonSpeedUp, hal.ButtonSpeedDown, hal.ButtonMode} {
		btn := btn
		buttons.Register(btn, func(pressed bool) {
			events <- event{btn: btn, pressed: pressed}
		})
	}

	// Unknown characters are skipped; each known key yields press+release.
	buttons.ReadFrom(strings.NewReader("x r?m"))

	want := []event{
		{hal.ButtonReset, true},
		{hal.ButtonReset, false},
		{hal.ButtonMode, true},
		{hal.ButtonMode, false},
	}
	for i, w := range want {
		select {
		case got := <-events:
			if got != w {
				t.Fatalf("event %d = %+v, want %+v", i, got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestButtonsIgnoreUnregistered(t *testing.T) {
	loop := timerloop.NewLoop()
	go loop.New(1000, func() int { return 1000 })
	defer loop.Stop()

	buttons := NewButtons(loop)
	// No handlers registered: parsing must simply drop the keys.
	buttons.ReadFrom(strings.NewReader("rudm"))
}
