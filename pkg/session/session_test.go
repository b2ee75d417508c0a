package session

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/pkg/camera"
)

const (
	keyW      = Key('W')
	keyS      = Key('S')
	keyA      = Key('A')
	keyD      = Key('D')
	keySpace  = Key(config.KeySpace)
	keyCtrl   = Key(config.KeyLeftControl)
	keyEscape = Key(config.KeyEscape)
	keyF2     = Key(config.KeyF1 + 1)
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	want := map[Key]camera.Movement{
		keyW:     camera.MoveForward,
		keyS:     camera.MoveBackward,
		keyA:     camera.MoveLeft,
		keyD:     camera.MoveRight,
		keySpace: camera.MoveUp,
		keyCtrl:  camera.MoveDown,
	}
	for k, m := range want {
		if got := b.Movement[k]; got != m {
			t.Errorf("key %d bound to %v, want %v", k, got, m)
		}
	}
	if b.ToggleUI != keyEscape || b.ToggleFPS != keyF2 {
		t.Errorf("unexpected toggles: ui=%d fps=%d", b.ToggleUI, b.ToggleFPS)
	}
	if b.Quit != NoKey {
		t.Errorf("expected quit unbound, got %d", b.Quit)
	}
}

func TestBindingsFromConfigRejectsUnknownKey(t *testing.T) {
	cc := config.Default().Controls
	cc.Left = "Nope"

	if _, err := BindingsFromConfig(cc); err == nil {
		t.Fatal("expected an error for an unknown key name")
	}
}

func TestNewAppliesCameraConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Speed = 3
	cfg.Camera.FieldOfView = 75
	cfg.Camera.FarDistance = 200

	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Speed() != 3 || s.Camera.FOV() != 75 || s.Camera.Far() != 200 {
		t.Errorf("camera not configured: speed=%v fov=%v far=%v",
			s.Camera.Speed(), s.Camera.FOV(), s.Camera.Far())
	}
	if s.Settings.ShowUI || !s.Settings.ShowFPS {
		t.Errorf("unexpected initial settings %+v", s.Settings)
	}
}

func TestHeldTracksKeys(t *testing.T) {
	s := newSession(t)

	s.KeyDown(keyW)
	s.KeyDown(keyD)
	s.KeyDown(Key('Z')) // unbound
	if got := s.Held(); got != camera.MoveForward|camera.MoveRight {
		t.Errorf("expected forward+right, got %v", got)
	}

	s.KeyUp(keyW)
	if got := s.Held(); got != camera.MoveRight {
		t.Errorf("expected right, got %v", got)
	}
	if !s.IsHeld(Key('Z')) {
		t.Error("expected unbound key to still be tracked as held")
	}
}

func TestTickIntegratesElapsedTime(t *testing.T) {
	s := newSession(t)

	if dt := s.Tick(100); dt != 0 {
		t.Errorf("expected first tick to only start the clock, got %v", dt)
	}

	s.KeyDown(keyW)
	if dt := s.Tick(100.5); dt != 0.5 {
		t.Errorf("expected dt 0.5, got %v", dt)
	}

	if got := s.Camera.Position(); !vecNear(got, mgl32.Vec3{0, 0, -4}, 1e-5) {
		t.Errorf("expected (0,0,-4) after half a second forward, got %v", got)
	}
}

func TestTickWithoutKeysKeepsPosition(t *testing.T) {
	s := newSession(t)
	s.Tick(0)
	s.Tick(3)

	if got := s.Camera.Position(); got != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("expected no movement, got %v", got)
	}
}

func TestTickClampsBackwardsClock(t *testing.T) {
	s := newSession(t)
	s.KeyDown(keyW)
	s.Tick(10)

	if dt := s.Tick(9); dt != 0 {
		t.Errorf("expected dt clamped to 0, got %v", dt)
	}
	if got := s.Camera.Position(); got != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("expected no movement on a backwards clock, got %v", got)
	}
}

func TestPointerMovedSeedsThenLooks(t *testing.T) {
	s := newSession(t)

	s.PointerMoved(400, 300)
	if yaw, pitch := s.Camera.Orientation(); yaw != 0 || pitch != 0 {
		t.Fatalf("first sample must only seed, got yaw=%v pitch=%v", yaw, pitch)
	}

	s.PointerMoved(410, 280)
	yaw, pitch := s.Camera.Orientation()
	if !mgl32.FloatEqualThreshold(yaw, -0.01, 1e-5) {
		t.Errorf("expected yaw -0.01 after moving right 10px, got %v", yaw)
	}
	if !mgl32.FloatEqualThreshold(pitch, 0.02, 1e-5) {
		t.Errorf("expected pitch 0.02 after moving up 20px, got %v", pitch)
	}
	if want := s.Camera.Position().Add(s.Camera.Forward()); !vecNear(s.Camera.Target(), want, 1e-5) {
		t.Errorf("expected target %v, got %v", want, s.Camera.Target())
	}
}

func TestPointerIgnoredWhileUIShown(t *testing.T) {
	s := newSession(t)
	s.PointerMoved(0, 0)

	s.KeyDown(keyEscape)
	if !s.Settings.ShowUI {
		t.Fatal("expected Escape to show the UI")
	}
	s.PointerMoved(500, 500)
	if yaw, pitch := s.Camera.Orientation(); yaw != 0 || pitch != 0 {
		t.Fatalf("expected no look while UI shown, got yaw=%v pitch=%v", yaw, pitch)
	}

	// Hiding the UI re-seeds, so the jump back is not applied as a delta.
	s.KeyUp(keyEscape)
	s.KeyDown(keyEscape)
	s.PointerMoved(900, 900)
	if yaw, pitch := s.Camera.Orientation(); yaw != 0 || pitch != 0 {
		t.Errorf("expected re-seed after hiding UI, got yaw=%v pitch=%v", yaw, pitch)
	}
}

func TestToggleFPS(t *testing.T) {
	s := newSession(t)
	s.KeyDown(keyF2)
	if s.Settings.ShowFPS {
		t.Error("expected F2 to hide the FPS display")
	}
	s.KeyUp(keyF2)
	s.KeyDown(keyF2)
	if !s.Settings.ShowFPS {
		t.Error("expected a second F2 to show it again")
	}
}

func TestQuit(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Quit = "Q"
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if s.QuitRequested() {
		t.Fatal("unexpected quit before any input")
	}
	s.KeyDown(Key('Q'))
	if !s.QuitRequested() {
		t.Error("expected quit key to request quit")
	}
}

func TestUnidentifiedKeyIsIgnored(t *testing.T) {
	s := newSession(t)

	s.KeyDown(NoKey)
	if s.QuitRequested() {
		t.Error("unidentified key requested quit with no quit key bound")
	}
	if s.IsHeld(NoKey) {
		t.Error("unidentified key recorded as held")
	}
	if s.Settings.ShowUI || !s.Settings.ShowFPS {
		t.Errorf("unidentified key changed settings: %+v", s.Settings)
	}
}

func vecNear(a, b mgl32.Vec3, tolerance float32) bool {
	return a.Sub(b).Len() <= tolerance
}
