package geometry

import "github.com/cfannin/go-sphere-tracer/pkg/core"

// Scene is a composite Hittable aggregating all objects in a world.
// It is mutable while being built and must be treated as read-only
// once a render starts.
type Scene struct {
	Objects []core.Hittable
}

// NewScene creates a scene containing the given objects
func NewScene(objects ...core.Hittable) *Scene {
	return &Scene{Objects: objects}
}

// Add appends an object to the scene
func (s *Scene) Add(object core.Hittable) {
	s.Objects = append(s.Objects, object)
}

// Clear removes all objects from the scene
func (s *Scene) Clear() {
	s.Objects = nil
}

// Hit returns the nearest intersection among all objects. Each object
// is tested against a shrinking upper bound so only the closest hit
// survives the linear scan.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range s.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
