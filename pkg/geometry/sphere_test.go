package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
)

// testMaterial is a placeholder material for intersection tests
type testMaterial struct{}

func (testMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func newTestSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, testMaterial{})
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return sphere
}

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -0.5, -1000} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius, testMaterial{}); err == nil {
			t.Errorf("Expected error for radius %g, got none", radius)
		}
	}
}

func TestSphere_Hit_CenterShot(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T <= 0 {
		t.Errorf("Expected positive t, got %f", hit.T)
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from outside")
	}
}

func TestSphere_Hit_OffsetMiss(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 3), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for offset ray, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NormalOpposesRay(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0.5, -0.25, -2), 1.5)
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			8*random.Float64()-4,
			8*random.Float64()-4,
			8*random.Float64()-4,
		)
		direction := core.RandomUnitVector(random)
		ray := core.NewRay(origin, direction)

		if hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
			if ray.Direction.Dot(hit.Normal) > 0 {
				t.Fatalf("Normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
			}
			if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
				t.Fatalf("Normal %v is not unit length", hit.Normal)
			}
		}
	}
}

func TestSphere_Hit_OpenInterval(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// The nearer root is exactly t=1; with tMax=1 the interval is open
	// so the hit must be rejected (the farther root t=3 is outside too)
	if hit, isHit := sphere.Hit(ray, 0.001, 1.0); isHit {
		t.Errorf("Expected miss at interval boundary, got hit at t=%f", hit.T)
	}

	// The farther root is used when the nearer one is below tMin
	hit, isHit := sphere.Hit(ray, 1.5, math.Inf(1))
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Far root exits through the back face, expected FrontFace=false")
	}
}

func TestSphere_Hit_DegenerateDirection(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 0))

	if _, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected no hit for a zero-length ray direction")
	}
}

func TestSphere_Hit_Pure(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0.3, 0.1, -1), 0.75)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0.1, 0, -1))

	first, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	for i := 0; i < 10; i++ {
		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("Hit became a miss on repeated call")
		}
		if hit.T != first.T || hit.Point != first.Point || hit.Normal != first.Normal {
			t.Fatalf("Repeated call returned different record: %+v vs %+v", hit, first)
		}
	}
}
