// Package scene builds the demo worlds the command line renderer can
// draw, pairing each with a matching camera configuration.
package scene

import (
	"math/rand"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
	"github.com/cfannin/go-sphere-tracer/pkg/geometry"
	"github.com/cfannin/go-sphere-tracer/pkg/material"
	"github.com/cfannin/go-sphere-tracer/pkg/renderer"
)

// NewClassicScene creates the three-sphere test scene: a yellow-green
// ground, a blue diffuse sphere flanked by a glass sphere and a gold
// metal sphere
func NewClassicScene() (*geometry.Scene, renderer.CameraConfig) {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := mustDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewScene(
		mustSphere(core.NewVec3(0, -100.5, -1), 100.0, materialGround),
		mustSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		mustSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		mustSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	cameraConfig := renderer.CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxBounces:      50,
		VFov:            90.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   1.0,
	}

	return world, cameraConfig
}

// NewCoverScene creates the classic book-cover scene: a large gray
// ground sphere, a field of small randomly placed diffuse, metal and
// glass spheres, and three large feature spheres. The field layout is
// deterministic for a given seed.
func NewCoverScene(seed int64) (*geometry.Scene, renderer.CameraConfig) {
	random := rand.New(rand.NewSource(seed))

	world := geometry.NewScene(
		mustSphere(core.NewVec3(0, -1000, 0), 1000.0,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the field clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			var mat core.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := randomColorRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = mustDielectric(1.5)
			}

			world.Add(mustSphere(center, 0.2, mat))
		}
	}

	world.Add(mustSphere(core.NewVec3(0, 1, 0), 1.0, mustDielectric(1.5)))
	world.Add(mustSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(mustSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	cameraConfig := renderer.CameraConfig{
		Width:           1200,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 50,
		MaxBounces:      10,
		VFov:            20.0,
		LookFrom:        core.NewVec3(12, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}

	return world, cameraConfig
}

// randomColor returns a color with each channel uniform in [0, 1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// randomColorRange returns a color with each channel uniform in [min, max)
func randomColorRange(random *rand.Rand, min, max float64) core.Vec3 {
	span := max - min
	return core.NewVec3(
		min+span*random.Float64(),
		min+span*random.Float64(),
		min+span*random.Float64(),
	)
}

// mustSphere builds a sphere from static scene data known to be valid
func mustSphere(center core.Vec3, radius float64, mat core.Material) *geometry.Sphere {
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		panic(err)
	}
	return s
}

// mustDielectric builds a dielectric from static scene data known to be valid
func mustDielectric(refractionIndex float64) *material.Dielectric {
	d, err := material.NewDielectric(refractionIndex)
	if err != nil {
		panic(err)
	}
	return d
}
