package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int           // Number of pixels in the grid
	TotalSamples int           // Total radiance estimates taken
	Elapsed      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
