// Package session owns the per-run viewer state: the camera, the set of held
// keys, pointer tracking, frame timing and overlay settings. The renderer
// forwards window events here and reads the camera back each frame.
package session

import (
	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/pkg/camera"
)

// Settings are the toggles exposed in the overlay
type Settings struct {
	ShowUI  bool
	ShowFPS bool
}

// Session is the top-level mutable state of one viewer run. It is used from
// the event-loop thread only.
type Session struct {
	Camera   *camera.Camera
	Settings Settings

	bindings    Bindings
	held        map[Key]struct{}
	pointer     pointerTracker
	sensitivity float32

	lastTick float64
	ticked   bool

	quit bool
}

// New creates a session from configuration.
func New(cfg *config.Config) (*Session, error) {
	bindings, err := BindingsFromConfig(cfg.Controls)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.Camera.FieldOfView, cfg.Camera.FarDistance)
	cam.SetSpeed(cfg.Camera.Speed)

	return &Session{
		Camera:      cam,
		Settings:    Settings{ShowUI: false, ShowFPS: true},
		bindings:    bindings,
		held:        make(map[Key]struct{}),
		sensitivity: cfg.Camera.MouseSensitivity,
	}, nil
}

// KeyDown records a key press and handles toggle keys. Keys the window
// system cannot identify arrive as NoKey and are ignored, so they never
// match an unbound action.
func (s *Session) KeyDown(k Key) {
	if k == NoKey {
		return
	}
	s.held[k] = struct{}{}

	switch k {
	case s.bindings.ToggleUI:
		s.SetShowUI(!s.Settings.ShowUI)
	case s.bindings.ToggleFPS:
		s.Settings.ShowFPS = !s.Settings.ShowFPS
	case s.bindings.Quit:
		s.quit = true
	}
}

// KeyUp records a key release.
func (s *Session) KeyUp(k Key) {
	delete(s.held, k)
}

// IsHeld reports whether k is currently pressed.
func (s *Session) IsHeld(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// Held returns the movement actions bound to the currently pressed keys.
func (s *Session) Held() camera.Movement {
	var m camera.Movement
	for k := range s.held {
		m = m.With(s.bindings.Movement[k])
	}
	return m
}

// SetShowUI shows or hides the settings panel. Pointer look is suspended
// while it is shown and re-seeded when it is hidden.
func (s *Session) SetShowUI(show bool) {
	s.Settings.ShowUI = show
	s.pointer.reset()
}

// PointerMoved feeds an absolute cursor position. The change since the last
// position turns the camera; the first sample only seeds the tracker.
func (s *Session) PointerMoved(x, y float64) {
	if s.Settings.ShowUI {
		return
	}
	dx, dy, ok := s.pointer.move(x, y)
	if !ok {
		return
	}
	s.Look(dx, dy)
}

// Look turns the camera by a raw pointer delta in pixels.
func (s *Session) Look(dx, dy float64) {
	s.Camera.Look(
		-float32(dx)*s.sensitivity, // yaw
		-float32(dy)*s.sensitivity, // pitch
	)
}

// Tick advances movement by the wall-clock time since the previous tick and
// returns that delta. The first tick only starts the clock.
func (s *Session) Tick(now float64) float32 {
	if !s.ticked {
		s.ticked = true
		s.lastTick = now
		return 0
	}

	dt := float32(now - s.lastTick)
	if dt < 0 {
		dt = 0
	}
	s.lastTick = now

	s.Camera.Update(s.Held(), dt)
	return dt
}

// RequestQuit marks the session as finished.
func (s *Session) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether a quit key or button was used.
func (s *Session) QuitRequested() bool {
	return s.quit
}
