package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/squeezetools/nowscreen/internal/render/layout"
)

// Canvas is an offscreen surface drawn at Factor times the final size and
// downsampled once drawing is done.
type Canvas struct {
	*image.RGBA
	Factor int
	Width  int // final width
	Height int // final height
}

// NewCanvas allocates a canvas for a width x height output, filled with bg.
func NewCanvas(width, height, factor int, bg color.Color) (*Canvas, error) {
	if width < MinWidth || width > MaxWidth || height <= 0 || height > MaxWidth {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if factor < 1 {
		factor = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width*factor, height*factor))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &Canvas{RGBA: img, Factor: factor, Width: width, Height: height}, nil
}

// Context returns a gg drawing context sharing the canvas pixels.
func (c *Canvas) Context() *gg.Context {
	return gg.NewContextForRGBA(c.RGBA)
}

// Downsample resamples the canvas to its final size with a Lanczos filter.
func (c *Canvas) Downsample() *image.RGBA {
	if c.Factor == 1 {
		return Flatten(c.RGBA)
	}
	return Flatten(imaging.Resize(c.RGBA, c.Width, c.Height, imaging.Lanczos))
}

// Flatten copies img into a new RGBA with every pixel fully opaque.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xFF
	}
	return out
}

// Spotlight lays a soft light over the upper right of img, as if lit from
// above and to the right. A transparent light leaves img untouched.
func Spotlight(img *image.RGBA, light color.NRGBA) *image.RGBA {
	if light.A == 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	box := layout.Fraction(image.Rect(0, 0, w, h), 0.3, -0.2, 1.2, 0.7)

	dc := gg.NewContext(w, h)
	dc.DrawEllipse(
		float64(box.Min.X+box.Max.X)/2, float64(box.Min.Y+box.Max.Y)/2,
		float64(box.Dx())/2, float64(box.Dy())/2,
	)
	dc.SetColor(light)
	dc.Fill()

	sigma := float64(w / 10)
	glow := imaging.Blur(dc.Image(), sigma)

	out := Flatten(img)
	draw.Draw(out, out.Bounds(), glow, image.Point{}, draw.Over)
	return Flatten(out)
}
