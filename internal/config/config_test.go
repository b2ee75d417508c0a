package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyview.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultMatchesViewerConstants(t *testing.T) {
	cfg := Default()

	if cfg.Camera.FieldOfView != 90 {
		t.Errorf("expected fov 90, got %v", cfg.Camera.FieldOfView)
	}
	if cfg.Camera.FarDistance != 10000 {
		t.Errorf("expected far 10000, got %v", cfg.Camera.FarDistance)
	}
	if cfg.Camera.Speed != 10 {
		t.Errorf("expected speed 10, got %v", cfg.Camera.Speed)
	}
	if cfg.Camera.MouseSensitivity != 0.001 {
		t.Errorf("expected sensitivity 0.001, got %v", cfg.Camera.MouseSensitivity)
	}
	if cfg.Skybox.FaceSize != 512 {
		t.Errorf("expected face size 512, got %d", cfg.Skybox.FaceSize)
	}
	if cfg.Skybox.SwapVerticalFaces || cfg.Skybox.PlaceholderOnError {
		t.Error("expected vertical swap and placeholder fallback off by default")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
display:
  width: 640
camera:
  speed: 25
skybox:
  swap_vertical_faces: true
controls:
  up: E
  down: Q
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Display.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != Default().Display.Height {
		t.Errorf("expected default height to survive, got %d", cfg.Display.Height)
	}
	if cfg.Camera.Speed != 25 {
		t.Errorf("expected speed 25, got %v", cfg.Camera.Speed)
	}
	if cfg.Camera.FarDistance != 10000 {
		t.Errorf("expected default far distance, got %v", cfg.Camera.FarDistance)
	}
	if !cfg.Skybox.SwapVerticalFaces {
		t.Error("expected swap_vertical_faces to be set")
	}
	if cfg.Controls.Up != "E" || cfg.Controls.Down != "Q" || cfg.Controls.Forward != "W" {
		t.Errorf("unexpected controls %+v", cfg.Controls)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero fov", "camera:\n  field_of_view: 0\n", "field_of_view"},
		{"straight fov", "camera:\n  field_of_view: 180\n", "field_of_view"},
		{"negative far", "camera:\n  far_distance: -1\n", "far_distance"},
		{"zero face size", "skybox:\n  face_size: 0\n", "face_size"},
		{"unknown key", "controls:\n  forward: Banana\n", "controls.forward"},
		{"empty dir", "skybox:\n  dir: \"\"\n", "skybox.dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid in chain, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "display: [unterminated")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustLoadConfig to panic")
		}
	}()
	MustLoadConfig(writeConfig(t, "camera:\n  far_distance: 0\n"))
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"W", 87},
		{"A", 65},
		{"Space", 32},
		{"Escape", 256},
		{"F2", 291},
		{"F12", 301},
		{"LeftControl", 341},
		{"0", 48},
	}
	for _, tt := range tests {
		code, ok := KeyCode(tt.name)
		if !ok || code != tt.code {
			t.Errorf("KeyCode(%q) = %d, %v; want %d", tt.name, code, ok, tt.code)
		}
	}

	if _, ok := KeyCode(""); ok {
		t.Error("expected empty key name to be unknown")
	}
}
