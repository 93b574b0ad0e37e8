package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame  int     `json:"frame"`
	TimeMS float64 `json:"time_ms"`
	Base   float64 `json:"base"`
	Hip    float64 `json:"hip"`
	Knee   float64 `json:"knee"`
	Cannon float64 `json:"cannon"`
	Image  string  `json:"image"`
}

// WriteManifest writes the manifest for the successfully rendered jobs.
// results must be in job order, as returned by Run.
func WriteManifest(path string, jobs []Job, results []Result) error {
	if len(jobs) != len(results) {
		return fmt.Errorf("batch: %d jobs but %d results", len(jobs), len(results))
	}

	entries := make([]ManifestEntry, 0, len(jobs))
	for i, job := range jobs {
		if !results[i].Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:  job.Frame,
			TimeMS: float64(job.Time) / 1e6,
			Base:   job.Joints.Base,
			Hip:    job.Joints.Hip,
			Knee:   job.Joints.Knee,
			Cannon: job.Joints.Cannon,
			Image:  results[i].Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
