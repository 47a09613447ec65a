package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
)

// CameraConfig holds the full render configuration for a camera
type CameraConfig struct {
	Width           int       // Rendered image width in pixels
	AspectRatio     float64   // Ratio of image width over height
	SamplesPerPixel int       // Number of jittered rays per pixel
	MaxBounces      int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64   // Distance from eye to the plane of perfect focus
}

// Camera generates rays for rendering. All derived state is computed
// once at construction; reconfiguring means constructing a new camera.
type Camera struct {
	config CameraConfig
	height int

	center      core.Vec3
	pixel00Loc  core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below

	// Camera frame basis vectors: u right, v up, w backwards
	u, v, w core.Vec3

	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates the configuration and derives the viewport
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxBounces < 0 {
		return nil, fmt.Errorf("max bounces must be non-negative, got %d", config.MaxBounces)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.FocusDistance <= 0 {
		return nil, fmt.Errorf("focus distance must be positive, got %g", config.FocusDistance)
	}

	c := &Camera{config: config}
	c.initialize()
	return c, nil
}

// initialize derives the image dimensions, viewing basis, pixel grid
// and defocus disk from the configuration
func (c *Camera) initialize() {
	cfg := c.config

	c.height = int(math.Round(float64(cfg.Width) / cfg.AspectRatio))
	if c.height < 1 {
		c.height = 1
	}

	c.center = cfg.LookFrom

	// Viewport dimensions from the vertical field of view
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * float64(cfg.Width) / float64(c.height)

	// Orthonormal basis for the camera frame
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport
	// edges; v is negated because pixel rows increase downward
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(cfg.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Defocus disk basis vectors
	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// Config returns the configuration the camera was built with
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the rendered image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetRay generates a randomly jittered ray through the pixel at column
// i, row j, originating from the camera center or, when depth of field
// is enabled, from a random point on the defocus disk
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(random))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// pixelSampleSquare returns a random offset within the half-pixel
// square around a pixel center
func (c *Camera) pixelSampleSquare(random *rand.Rand) core.Vec3 {
	px := random.Float64() - 0.5
	py := random.Float64() - 0.5
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

// defocusDiskSample returns a random origin on the camera defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// degreesToRadians converts an angle in degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
