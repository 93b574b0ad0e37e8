package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"robot-renderer/internal/app"
	"robot-renderer/internal/batch"
	"robot-renderer/internal/config"
	"robot-renderer/internal/input"
	"robot-renderer/internal/robot"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	keys := flag.String("keys", "", `Key script applied before rendering, e.g. "k right*5 c wait=50ms"`)
	frames := flag.Int("frames", 1, "Number of frames to render")
	interval := flag.Duration("interval", 40*time.Millisecond, "Loop time between frames")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")
	width := flag.Int("width", 0, "Image width (default: 650)")
	height := flag.Int("height", 0, "Image height (default: 500)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	trace := flag.String("trace", "", "Write the first frame's draw calls as JSON to this file")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	actions, err := input.ParseScript(*keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The loop clock is virtual, so runs are reproducible
	start := time.Unix(0, 0).UTC()
	a := app.New(cfg, start)
	a.Apply(actions)

	if *frames < 1 {
		*frames = 1
	}
	jobs := make([]batch.Job, *frames)
	for i := range jobs {
		jobs[i] = batch.Job{Frame: i, Time: a.Loop.Now().Sub(start), Joints: a.Joints}
		a.Advance(a.Loop.Now().Add(*interval))
	}

	if *trace != "" {
		if err := writeTrace(*trace, a, jobs[0].Joints); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Trace: %s\n", *trace)
	}

	w, h := a.Size()
	fmt.Printf("Robot renderer → %s\n", cfg.OutputFormat())
	fmt.Printf("Frames: %d, Size: %dx%d, Workers: %d\n", len(jobs), w, h, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	if err := batch.PrepareOutput(cfg.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	begin := time.Now()

	results := batch.Run(batch.Config{
		Scene:       a.Scene,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.OutputFormat(),
		Width:       w,
		Height:      h,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    2 * time.Second,
	}, jobs)

	elapsed := time.Since(begin)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func writeTrace(path string, a *app.App, j robot.Joints) error {
	var rec robot.Recorder
	a.Scene.Draw(j, &rec)

	data, err := json.MarshalIndent(rec.Calls, "", "  ")
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}
