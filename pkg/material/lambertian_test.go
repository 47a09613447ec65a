package material

import (
	"math/rand"
	"testing"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.3, 0.1)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 1, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0, 2, 1), core.NewVec3(0, -1, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Lambertian must always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray must originate at the hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scattered direction must never be degenerate")
		}
	}
}

func TestLambertian_ScatterStaysAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	random := rand.New(rand.NewSource(7))

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))

	// normal + unit vector can graze the surface but, statistically,
	// the bulk of directions must point into the normal's hemisphere
	above := 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		scatter, _ := lambertian.Scatter(rayIn, hit, random)
		if scatter.Scattered.Direction.Dot(hit.Normal) > 0 {
			above++
		}
	}
	if above < trials*95/100 {
		t.Errorf("Expected almost all scattered directions above the surface, got %d/%d", above, trials)
	}
}
