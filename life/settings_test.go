package life

import "testing"

func TestSpeedUpSteps(t *testing.T) {
	s := DefaultSettings()
	if !s.SpeedUp() {
		t.Fatal("speed up refused mid-range")
	}
	if s.DelayMS != 275 {
		t.Fatalf("delay = %d, want 275", s.DelayMS)
	}
}

func TestSpeedUpRefusedPastCeiling(t *testing.T) {
	s := Settings{DelayMS: 4990, Mode: ModeFadeOut}
	// 4990+25 would overshoot 5000, so the request is denied outright.
	if s.SpeedUp() {
		t.Fatal("speed up applied past the ceiling")
	}
	if s.DelayMS != 4990 {
		t.Fatalf("delay = %d, want unchanged 4990", s.DelayMS)
	}
}

func TestSpeedUpReachesCeilingExactly(t *testing.T) {
	s := Settings{DelayMS: 4975, Mode: ModeFadeOut}
	if !s.SpeedUp() {
		t.Fatal("speed up to the exact ceiling refused")
	}
	if s.DelayMS != MaxDelayMS {
		t.Fatalf("delay = %d, want %d", s.DelayMS, MaxDelayMS)
	}
}

func TestSpeedDownRefusedPastFloor(t *testing.T) {
	s := Settings{DelayMS: MinDelayMS, Mode: ModeFadeOut}
	if s.SpeedDown() {
		t.Fatal("speed down applied past the floor")
	}
	if s.DelayMS != MinDelayMS {
		t.Fatalf("delay = %d, want unchanged %d", s.DelayMS, MinDelayMS)
	}
}

func TestSpeedDownReachesFloorExactly(t *testing.T) {
	s := Settings{DelayMS: 50, Mode: ModeFadeOut}
	if !s.SpeedDown() {
		t.Fatal("speed down to the exact floor refused")
	}
	if s.DelayMS != MinDelayMS {
		t.Fatalf("delay = %d, want %d", s.DelayMS, MinDelayMS)
	}
}

func TestToggleModeIsIdempotentTwice(t *testing.T) {
	s := DefaultSettings()
	orig := s.Mode
	s.ToggleMode()
	if s.Mode != ModeLive {
		t.Fatalf("mode = %q after one toggle, want %q", s.Mode, ModeLive)
	}
	s.ToggleMode()
	if s.Mode != orig {
		t.Fatalf("mode = %q after two toggles, want %q", s.Mode, orig)
	}
}
