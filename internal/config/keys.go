package config

import "strconv"

// Key codes match GLFW's key values, so a glfw.Key converts directly.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace        = 32
	KeyEscape       = 256
	KeyEnter        = 257
	KeyTab          = 258
	KeyBackspace    = 259
	KeyRight        = 262
	KeyLeft         = 263
	KeyDown         = 264
	KeyUp           = 265
	KeyF1           = 290
	KeyLeftShift    = 340
	KeyLeftControl  = 341
	KeyLeftAlt      = 342
	KeyRightShift   = 344
	KeyRightControl = 345
	KeyRightAlt     = 346
)

// KeyNames maps the names accepted in the controls section to key codes.
var KeyNames = map[string]int{
	"Space":        KeySpace,
	"Escape":       KeyEscape,
	"Enter":        KeyEnter,
	"Tab":          KeyTab,
	"Backspace":    KeyBackspace,
	"Right":        KeyRight,
	"Left":         KeyLeft,
	"Down":         KeyDown,
	"Up":           KeyUp,
	"LeftShift":    KeyLeftShift,
	"LeftControl":  KeyLeftControl,
	"LeftAlt":      KeyLeftAlt,
	"RightShift":   KeyRightShift,
	"RightControl": KeyRightControl,
	"RightAlt":     KeyRightAlt,
}

func init() {
	// Letters and digits use their ASCII values
	for c := 'A'; c <= 'Z'; c++ {
		KeyNames[string(c)] = int(c)
	}
	for c := '0'; c <= '9'; c++ {
		KeyNames[string(c)] = int(c)
	}
	for i := 1; i <= 12; i++ {
		KeyNames["F"+strconv.Itoa(i)] = KeyF1 + i - 1
	}
}

// KeyCode looks up a key name, returning false if it is unknown or empty.
func KeyCode(name string) (int, bool) {
	code, ok := KeyNames[name]
	return code, ok
}
