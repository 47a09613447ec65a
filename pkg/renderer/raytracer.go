package renderer

import (
	"math"
	"math/rand"
	"time"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
	"github.com/cfannin/go-sphere-tracer/pkg/film"
)

// Raytracer drives the Monte-Carlo sampling loop over the pixel grid.
// The world and camera are treated as read-only for the duration of a
// render.
type Raytracer struct {
	world    core.Hittable
	camera   *Camera
	seed     int64
	workers  int
	progress func(rowsDone, totalRows int)
}

// NewRaytracer creates a raytracer for the given world and camera
func NewRaytracer(world core.Hittable, camera *Camera) *Raytracer {
	return &Raytracer{
		world:  world,
		camera: camera,
		seed:   42, // Deterministic by default so renders are reproducible
	}
}

// SetSeed sets the base seed for the per-row random generators
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetWorkers sets the maximum number of rows rendered concurrently.
// Zero or negative means one worker per CPU.
func (rt *Raytracer) SetWorkers(workers int) {
	rt.workers = workers
}

// SetProgress installs a callback invoked after each completed row
func (rt *Raytracer) SetProgress(progress func(rowsDone, totalRows int)) {
	rt.progress = progress
}

// Render produces the finished pixel grid. Every pixel accumulates
// SamplesPerPixel independent radiance estimates; rows are rendered in
// parallel and the grid is fully populated before it is returned.
func (rt *Raytracer) Render() (*film.Image, RenderStats, error) {
	start := time.Now()
	img := film.NewImage(rt.camera.Width(), rt.camera.Height())

	if err := rt.renderRows(img); err != nil {
		return nil, RenderStats{}, err
	}

	cfg := rt.camera.Config()
	stats := RenderStats{
		TotalPixels:  rt.camera.Width() * rt.camera.Height(),
		TotalSamples: rt.camera.Width() * rt.camera.Height() * cfg.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	return img, stats, nil
}

// renderRow renders a single row into its disjoint slice of the grid
func (rt *Raytracer) renderRow(j int, out []film.RGB, random *rand.Rand) {
	cfg := rt.camera.Config()
	for i := 0; i < rt.camera.Width(); i++ {
		sum := core.Vec3{}
		for s := 0; s < cfg.SamplesPerPixel; s++ {
			ray := rt.camera.GetRay(i, j, random)
			sum = sum.Add(rt.rayColor(ray, cfg.MaxBounces, random))
		}
		out[i] = film.Resolve(sum, cfg.SamplesPerPixel)
	}
}

// rayColor recursively estimates the radiance carried along a ray
func (rt *Raytracer) rayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Bounce budget exhausted: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound keeps rays from re-hitting the surface
	// they just left due to floating-point error (shadow acne)
	if hit, isHit := rt.world.Hit(ray, 0.001, math.Inf(1)); isHit {
		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.Vec3{} // Absorbed
		}
		return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random))
	}

	return backgroundGradient(ray)
}

// backgroundGradient returns the sky color for a ray that escapes the
// scene: a vertical blend from white at the horizon to sky blue above
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Lerp(blue, t)
}
