package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"robot-renderer/internal/output"
	"robot-renderer/internal/robot"
	"robot-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Format      output.Format
	Width       int
	Height      int
	Supersample int
	Workers     int

	// Progress is how often a progress line is printed; zero disables it.
	Progress time.Duration
}

// Job is one pose snapshot to render.
type Job struct {
	Frame  int
	Time   time.Duration // loop time since the run started
	Joints robot.Joints
}

// Result holds the outcome of rendering one job.
type Result struct {
	Frame   int
	Image   string // path relative to the output directory
	Success bool
	Error   string
}

// ImageName returns the file name of frame n.
func ImageName(n int, f output.Format) string {
	return fmt.Sprintf("frame_%04d%s", n, f.Ext())
}

// PrepareOutput creates the output directory so an unusable path fails
// before any frame is rendered.
func PrepareOutput(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: create output directory: %w", err)
	}
	return nil
}

// Run renders all jobs using a worker pool. Results are in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	name := ImageName(job.Frame, cfg.Format)
	img := cfg.Scene.Render(job.Joints, cfg.Width, cfg.Height, cfg.Supersample)

	if err := output.Save(filepath.Join(cfg.OutputDir, name), img, cfg.Format); err != nil {
		slog.Debug("batch: frame failed", "frame", job.Frame, "err", err)
		return Result{Frame: job.Frame, Image: name, Error: err.Error()}
	}
	slog.Debug("batch: frame written", "frame", job.Frame, "image", name)
	return Result{Frame: job.Frame, Image: name, Success: true}
}
