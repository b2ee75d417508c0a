package session

import (
	"fmt"

	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/pkg/camera"
)

// Key is a physical key code (GLFW numbering).
type Key int

// NoKey marks an unbound action
const NoKey Key = -1

// Bindings maps physical keys to movement actions and toggles.
type Bindings struct {
	Movement  map[Key]camera.Movement
	ToggleUI  Key
	ToggleFPS Key
	Quit      Key
}

// DefaultBindings returns WASD movement with Space/LeftControl for up/down,
// Escape for the settings panel and F2 for the FPS display.
func DefaultBindings() Bindings {
	b, err := BindingsFromConfig(config.Default().Controls)
	if err != nil {
		panic(err)
	}
	return b
}

// BindingsFromConfig resolves key names from the controls section.
func BindingsFromConfig(cc config.ControlsConfig) (Bindings, error) {
	lookup := func(action, name string) (Key, error) {
		code, ok := config.KeyCode(name)
		if !ok {
			return NoKey, fmt.Errorf("unknown key %q for %s", name, action)
		}
		return Key(code), nil
	}

	b := Bindings{Movement: make(map[Key]camera.Movement), Quit: NoKey}
	moves := []struct {
		action string
		name   string
		move   camera.Movement
	}{
		{"forward", cc.Forward, camera.MoveForward},
		{"backward", cc.Backward, camera.MoveBackward},
		{"left", cc.Left, camera.MoveLeft},
		{"right", cc.Right, camera.MoveRight},
		{"up", cc.Up, camera.MoveUp},
		{"down", cc.Down, camera.MoveDown},
	}
	for _, m := range moves {
		k, err := lookup(m.action, m.name)
		if err != nil {
			return Bindings{}, err
		}
		b.Movement[k] = b.Movement[k].With(m.move)
	}

	var err error
	if b.ToggleUI, err = lookup("toggle_ui", cc.ToggleUI); err != nil {
		return Bindings{}, err
	}
	if b.ToggleFPS, err = lookup("toggle_fps", cc.ToggleFPS); err != nil {
		return Bindings{}, err
	}
	if cc.Quit != "" {
		if b.Quit, err = lookup("quit", cc.Quit); err != nil {
			return Bindings{}, err
		}
	}

	return b, nil
}
