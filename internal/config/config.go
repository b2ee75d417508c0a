package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Skybox   SkyboxConfig   `yaml:"skybox"`
	Shaders  ShaderConfig   `yaml:"shaders"`
	Controls ControlsConfig `yaml:"controls"`
}

type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FieldOfView      float32 `yaml:"field_of_view"` // horizontal, degrees
	FarDistance      float32 `yaml:"far_distance"`
	Speed            float32 `yaml:"speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

type SkyboxConfig struct {
	Dir      string `yaml:"dir"`
	FaceSize int    `yaml:"face_size"`
	// Copy top.png into -Y and bottom.png into +Y
	SwapVerticalFaces bool `yaml:"swap_vertical_faces"`
	// Use solid placeholder faces instead of failing when images are missing
	PlaceholderOnError bool `yaml:"placeholder_on_error"`
}

type ShaderConfig struct {
	SkyboxVertex    string `yaml:"skybox_vertex"`
	SkyboxFragment  string `yaml:"skybox_fragment"`
	OverlayVertex   string `yaml:"overlay_vertex"`
	OverlayFragment string `yaml:"overlay_fragment"`
}

// ControlsConfig maps actions to key names (see KeyNames).
type ControlsConfig struct {
	Forward   string `yaml:"forward"`
	Backward  string `yaml:"backward"`
	Left      string `yaml:"left"`
	Right     string `yaml:"right"`
	Up        string `yaml:"up"`
	Down      string `yaml:"down"`
	ToggleUI  string `yaml:"toggle_ui"`
	ToggleFPS string `yaml:"toggle_fps"`
	Quit      string `yaml:"quit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			Title:  "Skyview",
			VSync:  true,
		},
		Camera: CameraConfig{
			FieldOfView:      90,
			FarDistance:      10000,
			Speed:            10,
			MouseSensitivity: 0.001,
		},
		Skybox: SkyboxConfig{
			Dir:      "assets/skybox",
			FaceSize: 512,
		},
		Shaders: ShaderConfig{
			SkyboxVertex:    "assets/shaders/skybox.vert",
			SkyboxFragment:  "assets/shaders/skybox.frag",
			OverlayVertex:   "assets/shaders/overlay.vert",
			OverlayFragment: "assets/shaders/overlay.frag",
		},
		Controls: ControlsConfig{
			Forward:   "W",
			Backward:  "S",
			Left:      "A",
			Right:     "D",
			Up:        "Space",
			Down:      "LeftControl",
			ToggleUI:  "Escape",
			ToggleFPS: "F2",
			Quit:      "",
		},
	}
}

// LoadConfig reads a YAML file on top of the defaults. A missing file is not
// an error; the defaults are returned.
func LoadConfig(filename string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid value")

// Validate checks value ranges and key names.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Display.Width > 0 && c.Display.Height > 0,
		"display size %dx%d", c.Display.Width, c.Display.Height)
	check(c.Camera.FieldOfView > 0 && c.Camera.FieldOfView < 180,
		"camera.field_of_view %v (want 0 < fov < 180)", c.Camera.FieldOfView)
	check(c.Camera.FarDistance > 0, "camera.far_distance %v", c.Camera.FarDistance)
	check(c.Camera.MouseSensitivity >= 0, "camera.mouse_sensitivity %v", c.Camera.MouseSensitivity)
	check(c.Skybox.FaceSize > 0, "skybox.face_size %d", c.Skybox.FaceSize)
	check(c.Skybox.Dir != "", "skybox.dir is empty")

	for action, name := range c.Controls.Bindings() {
		if name == "" && action == "quit" {
			continue
		}
		_, ok := KeyNames[name]
		check(ok, "controls.%s key %q", action, name)
	}

	return errors.Join(errs...)
}

// Bindings returns the configured key name for each action.
func (cc ControlsConfig) Bindings() map[string]string {
	return map[string]string{
		"forward":    cc.Forward,
		"backward":   cc.Backward,
		"left":       cc.Left,
		"right":      cc.Right,
		"up":         cc.Up,
		"down":       cc.Down,
		"toggle_ui":  cc.ToggleUI,
		"toggle_fps": cc.ToggleFPS,
		"quit":       cc.Quit,
	}
}
