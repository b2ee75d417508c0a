package overlay

import "testing"

func TestFPSCounterAverages(t *testing.T) {
	c := NewFPSCounter(0.5)

	changed := false
	for i := 0; i < 40; i++ {
		changed = c.Add(1.0/60) || changed
	}
	if !changed {
		t.Fatal("expected the rate to refresh after half a second of frames")
	}
	if fps := c.FPS(); fps < 59 || fps > 61 {
		t.Errorf("expected about 60 fps, got %v", fps)
	}
	if c.Label() != "60" {
		t.Errorf("expected label 60, got %q", c.Label())
	}
}

func TestFPSCounterWaitsForWindow(t *testing.T) {
	c := NewFPSCounter(1)
	if c.Add(0.1) {
		t.Error("expected no refresh before the window elapses")
	}
	if c.FPS() != 0 {
		t.Errorf("expected 0 before the first window, got %v", c.FPS())
	}
}

func TestFPSLabel(t *testing.T) {
	tests := map[float32]string{0: "0", 59.6: "60", 144.2: "144"}
	for in, want := range tests {
		if got := FPSLabel(in); got != want {
			t.Errorf("FPSLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
