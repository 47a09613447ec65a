// Package film holds the finished pixel grid a render produces and the
// sinks that serialize it.
package film

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/cfannin/go-sphere-tracer/pkg/core"
)

// RGB is a resolved, displayable 8-bit pixel
type RGB struct {
	R, G, B uint8
}

// Image is a dense row-major grid of resolved pixels. Row 0 is the top
// of the frame.
type Image struct {
	width  int
	height int
	pixels []RGB
}

// NewImage creates an image with the given dimensions, initially black
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Set stores the pixel at column x, row y
func (img *Image) Set(x, y int, p RGB) {
	img.pixels[y*img.width+x] = p
}

// At returns the pixel at column x, row y
func (img *Image) At(x, y int) RGB {
	return img.pixels[y*img.width+x]
}

// Row returns the backing slice for row y. Rows are disjoint, so
// concurrent writers that own distinct rows need no synchronization.
func (img *Image) Row(y int) []RGB {
	return img.pixels[y*img.width : (y+1)*img.width]
}

// Resolve turns an unnormalized per-pixel radiance sum into a
// displayable pixel: average over the sample count, gamma-correct each
// channel with sqrt (gamma 2.0), clamp to [0, 0.999] and quantize.
func Resolve(sum core.Vec3, samplesPerPixel int) RGB {
	scale := 1.0 / float64(samplesPerPixel)
	return RGB{
		R: quantize(math.Sqrt(sum.X * scale)),
		G: quantize(math.Sqrt(sum.Y * scale)),
		B: quantize(math.Sqrt(sum.Z * scale)),
	}
}

// quantize maps a gamma-corrected channel to an 8-bit value
func quantize(c float64) uint8 {
	if c < 0 {
		c = 0
	}
	if c > 0.999 {
		c = 0.999
	}
	return uint8(256 * c)
}

// WriteP3 serializes the image in the plain-text PPM (P3) format:
// a header line, dimensions, the maximum channel value, then one
// "r g b" triple per pixel in row-major order.
func (img *Image) WriteP3(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}
	for _, p := range img.pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("while writing PPM pixel: %w", err)
		}
	}
	return bw.Flush()
}

// RGBA converts the image to a standard library RGBA image for PNG
// encoding
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			p := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}
