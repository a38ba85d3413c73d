package life

// Display modes. FadeOut draws dying cells with a dimming gradient, Live
// shows only the cells that are fully alive.
const (
	ModeFadeOut = "fade_out"
	ModeLive    = "live"
)

// Frame delay bounds and adjustment step, in milliseconds.
const (
	MinDelayMS  = 25
	MaxDelayMS  = 5000
	DelayStepMS = 25
)

// AppName is the namespace the settings record is stored under.
const AppName = "fastlife"

const settingsKey = "settings"

// Settings is the persisted user configuration record.
type Settings struct {
	DelayMS int    `json:"delay_ms"`
	Mode    string `json:"mode"`
}

// DefaultSettings returns the configuration used on first run or when the
// store has no record for us.
func DefaultSettings() Settings {
	return Settings{DelayMS: 250, Mode: ModeFadeOut}
}

// SpeedUp raises the frame delay by one step and reports whether the
// change was applied. A change that would land past the ceiling is
// refused outright rather than clamped.
func (s *Settings) SpeedUp() bool {
	if s.DelayMS+DelayStepMS > MaxDelayMS {
		return false
	}
	s.DelayMS += DelayStepMS
	return true
}

// SpeedDown lowers the frame delay by one step and reports whether the
// change was applied.
func (s *Settings) SpeedDown() bool {
	if s.DelayMS-DelayStepMS < MinDelayMS {
		return false
	}
	s.DelayMS -= DelayStepMS
	return true
}

// ToggleMode flips between the fade-out and live display modes.
func (s *Settings) ToggleMode() {
	if s.Mode == ModeFadeOut {
		s.Mode = ModeLive
	} else {
		s.Mode = ModeFadeOut
	}
}
