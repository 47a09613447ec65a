package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/cfannin/go-sphere-tracer/pkg/film"
	"github.com/cfannin/go-sphere-tracer/pkg/geometry"
	"github.com/cfannin/go-sphere-tracer/pkg/renderer"
	"github.com/cfannin/go-sphere-tracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "classic", "Scene type: 'classic' or 'cover'")
	width := flag.Int("width", 0, "Override image width in pixels")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	maxBounces := flag.Int("max-bounces", 0, "Override maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Base seed for the per-row random generators")
	workers := flag.Int("workers", 0, "Concurrent row workers (0 = one per CPU)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	output := flag.String("output", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	flag.Parse()

	if err := run(*sceneType, *width, *samples, *maxBounces, *seed, *workers, *format, *output); err != nil {
		glog.Exitf("Render failed: %v", err)
	}
}

func run(sceneType string, width, samples, maxBounces int, seed int64, workers int, format, output string) error {
	world, cameraConfig, err := buildScene(sceneType, seed)
	if err != nil {
		return err
	}

	// Command line overrides for the scene's default camera settings
	if width > 0 {
		cameraConfig.Width = width
	}
	if samples > 0 {
		cameraConfig.SamplesPerPixel = samples
	}
	if maxBounces > 0 {
		cameraConfig.MaxBounces = maxBounces
	}

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return fmt.Errorf("while configuring camera: %w", err)
	}

	glog.Infof("Rendering %q scene at %dx%d, %d samples per pixel, %d max bounces",
		sceneType, camera.Width(), camera.Height(),
		cameraConfig.SamplesPerPixel, cameraConfig.MaxBounces)

	rt := renderer.NewRaytracer(world, camera)
	rt.SetSeed(seed)
	rt.SetWorkers(workers)
	rt.SetProgress(func(rowsDone, totalRows int) {
		if rowsDone%50 == 0 || rowsDone == totalRows {
			glog.Infof("Rendered %d/%d rows", rowsDone, totalRows)
		}
	})

	img, stats, err := rt.Render()
	if err != nil {
		return fmt.Errorf("while rendering: %w", err)
	}
	glog.Infof("Render completed in %v (%.0f samples/sec)",
		stats.Elapsed.Round(time.Millisecond), stats.SamplesPerSecond())

	path, err := writeImage(img, sceneType, format, output)
	if err != nil {
		return err
	}
	glog.Infof("Render saved as %s", path)
	return nil
}

func buildScene(sceneType string, seed int64) (*geometry.Scene, renderer.CameraConfig, error) {
	switch sceneType {
	case "classic":
		world, config := scene.NewClassicScene()
		return world, config, nil
	case "cover":
		world, config := scene.NewCoverScene(seed)
		return world, config, nil
	default:
		return nil, renderer.CameraConfig{}, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

func writeImage(img *film.Image, sceneType, format, output string) (string, error) {
	if output == "" {
		outputDir := filepath.Join("output", sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return "", fmt.Errorf("while creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	file, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("while creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, img.RGBA())
	case "ppm":
		err = img.WriteP3(file)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("while encoding %s output: %w", format, err)
	}
	return output, nil
}
