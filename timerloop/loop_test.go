package timerloop

import (
	"testing"
	"time"
)

func TestLoopRunsFramesUntilStopped(t *testing.T) {
	loop := NewLoop()
	count := 0
	done := make(chan struct{})
	go func() {
		loop.New(1, func() int {
			count++
			if count == 3 {
				loop.Stop()
			}
			return 1
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	if count != 3 {
		t.Fatalf("frame ran %d times, want 3", count)
	}
}

func TestLoopHonoursReturnedDelay(t *testing.T) {
	loop := NewLoop()
	var stamps []time.Time
	done := make(chan struct{})
	go func() {
		loop.New(1, func() int {
			stamps = append(stamps, time.Now())
			if len(stamps) == 2 {
				loop.Stop()
			}
			return 50
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	if gap := stamps[1].Sub(stamps[0]); gap < 50*time.Millisecond {
		t.Fatalf("frames %v apart, want at least the returned 50ms", gap)
	}
}

func TestLoopDispatchRunsBetweenFrames(t *testing.T) {
	loop := NewLoop()
	ran := make(chan struct{})
	go loop.New(1000, func() int { return 1000 })
	defer loop.Stop()

	loop.Dispatch(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatched event did not run")
	}
}

func TestDispatchAfterStopDoesNotBlock(t *testing.T) {
	loop := NewLoop()
	loop.Stop()
	done := make(chan struct{})
	go func() {
		// Fill past the channel buffer; Stop must keep this from hanging.
		for i := 0; i < 64; i++ {
			loop.Dispatch(func() {})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked after stop")
	}
}
