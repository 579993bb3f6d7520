// Package clockface draws an analog Swiss railway clock: steel ring, white
// face, 60 bar markers, tapered hands and a red pivot dot.
package clockface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"

	"github.com/squeezetools/nowscreen/internal/palette"
	"github.com/squeezetools/nowscreen/internal/render"
	"github.com/squeezetools/nowscreen/internal/render/layout"
)

// Supersample is the factor the face is drawn at before downsampling.
const Supersample = 4

var ErrInvalidTime = errors.New("time out of range")

// Frame is the complete geometry of one clock drawing. It does not depend on
// colours, so day and night renders of the same time share it.
type Frame struct {
	Geometry    Geometry
	HourAngle   float64
	MinuteAngle float64
	HourTicks   []Polygon
	MinuteTicks []Polygon
	HourHand    Polygon
	MinuteHand  Polygon
}

// NewFrame lays out the clock for hour:minute on a surface with the given bounds.
func NewFrame(bounds image.Rectangle, factor, hour, minute int) Frame {
	g := NewGeometry(bounds, factor)
	ha, ma := HandAngles(hour, minute)
	f := Frame{
		Geometry:    g,
		HourAngle:   ha,
		MinuteAngle: ma,
		HourHand:    g.HandPolygon(HourHand, ha),
		MinuteHand:  g.HandPolygon(MinuteHand, ma),
	}
	for _, m := range g.HourMarkers() {
		f.HourTicks = append(f.HourTicks, g.MarkerPolygon(m))
	}
	for _, m := range g.MinuteMarkers() {
		f.MinuteTicks = append(f.MinuteTicks, g.MarkerPolygon(m))
	}
	return f
}

// Size returns the output size for width: 16:9, height rounded.
func Size(width int) (int, int) {
	return width, layout.HeightForAspect(width, render.AspectWidth, render.AspectHeight)
}

// Render draws the clock showing hour:minute (24h clock) at the given output width.
func Render(width int, pal palette.Clock, hour, minute int) (*image.RGBA, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	w, h := Size(width)
	canvas, err := render.NewCanvas(w, h, Supersample, pal.Background)
	if err != nil {
		return nil, err
	}
	frame := NewFrame(canvas.Bounds(), canvas.Factor, hour, minute)
	paint(canvas.Context(), frame, pal)
	return render.Spotlight(canvas.Downsample(), pal.Spotlight), nil
}

// paint draws back to front: ring, face, hour ticks, minute ticks, hour
// hand, minute hand, center dot.
func paint(dc *gg.Context, f Frame, pal palette.Clock) {
	g := f.Geometry
	cx, cy := g.Center.X, g.Center.Y

	stroke := float64(ringStroke * g.SupersampleFac)
	dc.DrawCircle(cx, cy, g.OuterRadius)
	dc.SetColor(pal.RingFill)
	dc.Fill()
	dc.SetLineWidth(stroke)
	dc.DrawCircle(cx, cy, g.OuterRadius-stroke/2)
	dc.SetColor(pal.RingOutline)
	dc.Stroke()

	dc.DrawCircle(cx, cy, g.InnerRadius)
	dc.SetColor(pal.FaceFill)
	dc.Fill()
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, g.InnerRadius-0.5)
	dc.SetColor(pal.FaceOutline)
	dc.Stroke()

	for _, p := range f.HourTicks {
		fillPolygon(dc, p, pal.Ticks)
	}
	for _, p := range f.MinuteTicks {
		fillPolygon(dc, p, pal.Ticks)
	}
	fillPolygon(dc, f.HourHand, pal.HourHand)
	fillPolygon(dc, f.MinuteHand, pal.MinuteHand)

	dc.DrawCircle(cx, cy, g.Units(centerDotUnits))
	dc.SetColor(pal.CenterDot)
	dc.Fill()
}

func fillPolygon(dc *gg.Context, p Polygon, c color.Color) {
	dc.NewSubPath()
	dc.MoveTo(p[0].X, p[0].Y)
	for _, pt := range p[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

// Face adapts Render to the render.Face interface.
type Face struct {
	Width int
}

func (Face) Name() string     { return "clock" }
func (Face) FileName() string { return "swiss-clock.png" }
func (Face) Colors() int      { return 0 }

func (f Face) Render(now time.Time, mode palette.Mode) (*image.RGBA, error) {
	width := f.Width
	if width == 0 {
		width = render.DefaultWidth
	}
	return Render(width, palette.ClockFor(mode), now.Hour(), now.Minute())
}
