package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"robot-renderer/internal/app"
	"robot-renderer/internal/config"
	"robot-renderer/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	width := flag.Int("width", 0, "Window width (default: 650)")
	height := flag.Int("height", 0, "Window height (default: 500)")
	supersample := flag.Int("supersample", 0, "Render at N times the window size and filter down (default: 1)")
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
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Keys: b/h/k select base/hip/knee, left/right rotate, c/C start/stop cannon")

	a := app.New(cfg, time.Now())
	if err := viewer.Run(a, "Robot"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
