package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"fortio.org/safecast"
	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// FramebufferSink shows a rendered face on a Linux framebuffer device, stretched
// to the device bounds.
type FramebufferSink struct {
	Path   string // e.g. /dev/fb0
	Gray   bool   // single channel panel
	Only   string // face name to show; empty shows every face
	Logger Logger
}

func (s FramebufferSink) Write(ctx context.Context, face Face, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Only != "" && s.Only != face.Name() {
		return nil
	}
	dev, err := fb.Open(s.Path)
	if err != nil {
		return fmt.Errorf("framebuffer open %s failed: %w", s.Path, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if s.Logger != nil {
		s.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	canvas := FitTo(img, bounds.Dx(), bounds.Dy())
	if s.Gray {
		blitGray(dev, canvas)
	} else {
		blit(dev, canvas)
	}
	if s.Logger != nil {
		s.Logger.Infof("fb", "blit %s done", face.Name())
	}
	return nil
}

// FitTo stretches img onto a width x height RGBA.
func FitTo(img image.Image, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
		return out
	}
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

// blit copies canvas pixel by pixel, the device does its own pixel format conversion.
func blit(dst draw.Image, canvas *image.RGBA) {
	bounds := dst.Bounds()
	for y := 0; y < bounds.Dy() && y < canvas.Rect.Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < canvas.Rect.Dx(); x++ {
			pixel := canvas.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}

// blitGray is blit for single channel framebuffers (e-paper, mono OLED).
func blitGray(dst draw.Image, canvas *image.RGBA) {
	bounds := dst.Bounds()
	for y := 0; y < bounds.Dy() && y < canvas.Rect.Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < canvas.Rect.Dx(); x++ {
			p := canvas.RGBAAt(x, y)
			lum := (299*int(p.R) + 587*int(p.G) + 114*int(p.B)) / 1000
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: safecast.MustConvert[uint8](lum)})
		}
	}
}
