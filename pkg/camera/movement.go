package camera

import "strings"

// Movement is the set of movement actions held during a tick.
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// NoMovement is the empty set.
const NoMovement Movement = 0

var movementNames = [...]struct {
	m    Movement
	name string
}{
	{MoveForward, "forward"},
	{MoveBackward, "backward"},
	{MoveLeft, "left"},
	{MoveRight, "right"},
	{MoveUp, "up"},
	{MoveDown, "down"},
}

// Has reports whether every action in o is held.
func (m Movement) Has(o Movement) bool {
	return o != 0 && m&o == o
}

// With returns m with o added.
func (m Movement) With(o Movement) Movement {
	return m | o
}

// Without returns m with o removed.
func (m Movement) Without(o Movement) Movement {
	return m &^ o
}

func (m Movement) String() string {
	if m == NoMovement {
		return "none"
	}
	var parts []string
	for _, mn := range movementNames {
		if m.Has(mn.m) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
