package renderer

import (
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/cfannin/go-sphere-tracer/pkg/film"
)

// renderRows fans the image rows out over a bounded pool of goroutines
// and joins them before returning. Each row task owns a private random
// generator seeded from the base seed plus the row index, and writes
// only its own row slice, so no synchronization is needed beyond the
// final join.
func (rt *Raytracer) renderRows(img *film.Image) error {
	workers := rt.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	totalRows := img.Height()
	var rowsDone atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < totalRows; j++ {
		j := j
		g.Go(func() error {
			random := rand.New(rand.NewSource(rt.seed + int64(j)))
			rt.renderRow(j, img.Row(j), random)

			if rt.progress != nil {
				rt.progress(int(rowsDone.Add(1)), totalRows)
			}
			return nil
		})
	}
	return g.Wait()
}
