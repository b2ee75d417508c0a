package overlay

import "fmt"

// FPSCounter averages frame times over a fixed window so the displayed rate
// does not flicker every frame.
type FPSCounter struct {
	Window  float32 // seconds per sample
	elapsed float32
	frames  int
	fps     float32
}

// NewFPSCounter creates a counter that refreshes every window seconds.
func NewFPSCounter(window float32) *FPSCounter {
	return &FPSCounter{Window: window}
}

// Add records one frame of length dt. It returns true when the displayed
// rate changed.
func (c *FPSCounter) Add(dt float32) bool {
	c.elapsed += dt
	c.frames++
	if c.elapsed < c.Window || c.elapsed <= 0 {
		return false
	}
	c.fps = float32(c.frames) / c.elapsed
	c.elapsed = 0
	c.frames = 0
	return true
}

// FPS returns the last averaged frame rate.
func (c *FPSCounter) FPS() float32 {
	return c.fps
}

// Label formats the rate for display.
func (c *FPSCounter) Label() string {
	return FPSLabel(c.fps)
}

// FPSLabel formats a frame rate with no decimals.
func FPSLabel(fps float32) string {
	return fmt.Sprintf("%.0f", fps)
}
