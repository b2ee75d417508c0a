package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	log.Println("Starting Skyview...")

	// Parse command line flags
	configPath := flag.String("config", "skyview.yaml", "Path to the YAML config file")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	skyboxDir := flag.String("skybox", "", "Directory holding the six face images (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Display.Width = *width
	}
	if *height > 0 {
		cfg.Display.Height = *height
	}
	if *skyboxDir != "" {
		cfg.Skybox.Dir = *skyboxDir
	}

	// Initialize the renderer
	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
