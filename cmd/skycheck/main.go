// Command skycheck validates a skybox directory without opening a window. It
// decodes the six faces, reports their size and the cube layer each one is
// copied into, and can write a copy resampled to the configured face size.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/pkg/skybox"
)

func main() {
	configPath := flag.String("config", "skyview.yaml", "Path to the YAML config file")
	dir := flag.String("dir", "", "Skybox directory (overrides config)")
	out := flag.String("out", "", "Write faces resampled to skybox.face_size into this directory")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.Skybox.Dir = *dir
	}

	faces, err := skybox.LoadFaces(cfg.Skybox.Dir)
	if err != nil {
		log.Fatalf("Invalid skybox: %v", err)
	}

	fmt.Printf("%s: six %dx%d faces\n", cfg.Skybox.Dir, faces.Size, faces.Size)
	for _, t := range skybox.BlitTargets(cfg.Skybox.SwapVerticalFaces) {
		fmt.Printf("  %-11s -> %s\n", t.Source.FileName(), t.Layer)
	}
	if faces.Size != cfg.Skybox.FaceSize {
		fmt.Printf("faces will be scaled to %dpx when copied into the cube sampler\n", cfg.Skybox.FaceSize)
	}

	if *out == "" {
		return
	}
	if err := writeFaces(faces.Resize(cfg.Skybox.FaceSize), *out); err != nil {
		log.Fatalf("Failed to write faces: %v", err)
	}
	fmt.Printf("wrote %dpx faces to %s\n", cfg.Skybox.FaceSize, *out)
}

func writeFaces(faces *skybox.FaceSet, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range skybox.Faces {
		path := filepath.Join(dir, f.FileName())
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(file, faces.Image(f)); err != nil {
			file.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
