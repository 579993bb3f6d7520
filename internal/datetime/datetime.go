// Package datetime draws the digital date and time card: two centered lines
// of text on a plain background, reduced to a few colours for small files.
package datetime

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/squeezetools/nowscreen/internal/fonts"
	"github.com/squeezetools/nowscreen/internal/palette"
	"github.com/squeezetools/nowscreen/internal/render"
	"github.com/squeezetools/nowscreen/internal/render/layout"
)

const (
	// Squeezebox Touch screen.
	DefaultWidth  = 480
	DefaultHeight = 272

	Supersample = 2
	FontSize    = 48 // points at output scale

	dateTop = 70
	timeTop = 140
)

// Size returns the output size for width, keeping the 480x272 proportions.
func Size(width int) (int, int) {
	return width, layout.HeightForAspect(width, DefaultWidth, DefaultHeight)
}

// Render draws date and clock text onto a width x height card. face must be
// sized for the supersampled canvas (FontSize * Supersample at 480 wide).
func Render(width, height int, pal palette.Text, face font.Face, date, clock string) (*image.RGBA, error) {
	canvas, err := render.NewCanvas(width, height, Supersample, pal.Background)
	if err != nil {
		return nil, err
	}
	scale := canvas.Factor * width
	drawCentered(canvas.RGBA, date, dateTop*scale/DefaultWidth, pal.Foreground, face)
	drawCentered(canvas.RGBA, clock, timeTop*scale/DefaultWidth, pal.Foreground, face)
	return canvas.Downsample(), nil
}

// drawCentered centers text horizontally with the top of its ascender at top.
func drawCentered(img *image.RGBA, text string, top int, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	bounds, _ := drawer.BoundString(text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	x := layout.CenterX(img.Bounds(), textWidth) - bounds.Min.X.Floor()
	baseline := top + face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

// Options configures a Face.
type Options struct {
	Width    int
	FontPath string // empty uses the embedded Go font
	Lang     string
	Logger   render.Logger
}

// Face renders the date/time card. It holds a font face and is not safe for
// concurrent use.
type Face struct {
	width, height int
	face          font.Face
	labels        *Labels
}

// NewFace loads the font and translations for opts. Font problems are logged
// and fall back to a built-in font; only a broken catalogue is an error.
func NewFace(opts Options) (*Face, error) {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	w, h := Size(width)
	labels, err := NewLabels(opts.Lang)
	if err != nil {
		return nil, err
	}
	if !labels.Supported() && opts.Logger != nil {
		opts.Logger.Errorf("datetime", "no translations for %q, using %s", opts.Lang, DefaultLanguage)
	}
	size := float64(FontSize*Supersample*w) / DefaultWidth
	face, src := fonts.Load(opts.FontPath, size, opts.Logger)
	if opts.Logger != nil {
		opts.Logger.Infof("datetime", "font source=%s size=%gpt", src, size)
	}
	return &Face{width: w, height: h, face: face, labels: labels}, nil
}

func (*Face) Name() string     { return "datetime" }
func (*Face) FileName() string { return "date_time.png" }
func (*Face) Colors() int      { return render.DefaultColors }

func (f *Face) Render(now time.Time, mode palette.Mode) (*image.RGBA, error) {
	return Render(f.width, f.height, palette.TextFor(mode), f.face, f.labels.Date(now), Clock(now))
}
