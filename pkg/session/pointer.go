package session

// pointerTracker turns absolute cursor positions into deltas
type pointerTracker struct {
	lastX, lastY float64
	seeded       bool
}

func (p *pointerTracker) move(x, y float64) (dx, dy float64, ok bool) {
	if !p.seeded {
		p.lastX, p.lastY = x, y
		p.seeded = true
		return 0, 0, false
	}

	dx, dy = x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	return dx, dy, true
}

func (p *pointerTracker) reset() {
	p.seeded = false
}
