package clockface

import (
	"image"
	"math"

	"github.com/squeezetools/nowscreen/internal/render/layout"
)

// Dimensions of the face in clock units. The outer edge of the tick marks
// sits at TickRingUnits from the center.
const (
	TickRingUnits = 49.5
	tickInset     = 0.95

	hourTickLength   = 11.0
	hourTickWidth    = 3.0
	minuteTickLength = 3.2
	minuteTickWidth  = 1.2

	centerDotUnits = 1.5

	// ring offsets are in supersampled pixels, not units
	outerRingExtra = 75
	innerFaceExtra = 50
	ringStroke     = 4
)

// Hand shapes in clock units.
var (
	HourHand   = HandShape{Length: 32, StickOut: 12, BaseWidth: 6, TipWidth: 4.5}
	MinuteHand = HandShape{Length: 46, StickOut: 12, BaseWidth: 5.7, TipWidth: 3.5}
)

type Point struct{ X, Y float64 }

// Polygon is a closed quadrilateral in drawing order.
type Polygon [4]Point

// HandShape is a tapered hand. StickOut is how far it reaches behind the pivot.
type HandShape struct {
	Length    float64
	StickOut  float64
	BaseWidth float64
	TipWidth  float64
}

// Marker is a radial tick. Radii and width are in pixels.
type Marker struct {
	Angle       float64 // degrees
	OuterRadius float64
	InnerRadius float64
	Width       float64
}

// Geometry is everything derived from the drawing surface size.
type Geometry struct {
	Center         Point
	ClockRadius    int
	UnitScale      float64 // pixels per clock unit
	OuterRadius    float64
	InnerRadius    float64
	SupersampleFac int
}

// NewGeometry lays out a clock on a drawing surface of the given size.
// factor is the supersampling factor the surface was scaled by.
func NewGeometry(bounds image.Rectangle, factor int) Geometry {
	c := layout.Center(bounds)
	radius := int(float64(layout.FitSquare(bounds).Dx()) * 0.40)
	return Geometry{
		Center:         Point{X: float64(c.X), Y: float64(c.Y)},
		ClockRadius:    radius,
		UnitScale:      float64(radius) / TickRingUnits,
		OuterRadius:    float64(radius + outerRingExtra),
		InnerRadius:    float64(int(float64(radius)*tickInset) + innerFaceExtra),
		SupersampleFac: factor,
	}
}

// Units converts clock units to pixels.
func (g Geometry) Units(u float64) float64 { return u * g.UnitScale }

// Polar returns the point at radius r and angle degrees from the center.
func (g Geometry) Polar(r, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{X: g.Center.X + r*math.Cos(rad), Y: g.Center.Y + r*math.Sin(rad)}
}

// HandAngles returns the hour and minute hand angles in degrees for a
// 24h time. 0 minutes points at 12 o'clock (-90 degrees).
func HandAngles(hour, minute int) (hourAngle, minuteAngle float64) {
	h := float64(hour%12) + float64(minute)/60
	return h*30 - 90, float64(minute)*6 - 90
}

// HandPolygon returns base-left, tip-left, tip-right, base-right.
func (g Geometry) HandPolygon(shape HandShape, degrees float64) Polygon {
	rad := degrees * math.Pi / 180
	perp := rad + math.Pi/2
	dx, dy := math.Cos(rad), math.Sin(rad)
	px, py := math.Cos(perp), math.Sin(perp)

	length := g.Units(shape.Length)
	stick := g.Units(shape.StickOut)
	base := g.Units(shape.BaseWidth) / 2
	tipW := g.Units(shape.TipWidth) / 2

	tip := Point{X: g.Center.X + length*dx, Y: g.Center.Y + length*dy}
	tail := Point{X: g.Center.X - stick*dx, Y: g.Center.Y - stick*dy}
	return Polygon{
		{X: tail.X + base*px, Y: tail.Y + base*py},
		{X: tip.X + tipW*px, Y: tip.Y + tipW*py},
		{X: tip.X - tipW*px, Y: tip.Y - tipW*py},
		{X: tail.X - base*px, Y: tail.Y - base*py},
	}
}

// MarkerPolygon returns outer-left, inner-left, inner-right, outer-right.
func (g Geometry) MarkerPolygon(m Marker) Polygon {
	perp := m.Angle + 90
	outer := g.Polar(m.OuterRadius, m.Angle)
	inner := g.Polar(m.InnerRadius, m.Angle)
	rad := perp * math.Pi / 180
	ox, oy := m.Width/2*math.Cos(rad), m.Width/2*math.Sin(rad)
	return Polygon{
		{X: outer.X + ox, Y: outer.Y + oy},
		{X: inner.X + ox, Y: inner.Y + oy},
		{X: inner.X - ox, Y: inner.Y - oy},
		{X: outer.X - ox, Y: outer.Y - oy},
	}
}

// HourMarkers returns the 12 long ticks.
func (g Geometry) HourMarkers() []Marker {
	markers := make([]Marker, 0, 12)
	outer := g.Units(TickRingUnits * tickInset)
	for i := 0; i < 12; i++ {
		markers = append(markers, Marker{
			Angle:       float64(i)/12*360 - 90,
			OuterRadius: outer,
			InnerRadius: outer - g.Units(hourTickLength),
			Width:       g.Units(hourTickWidth),
		})
	}
	return markers
}

// MinuteMarkers returns the 48 short ticks; minutes on the hour are covered
// by the hour markers.
func (g Geometry) MinuteMarkers() []Marker {
	markers := make([]Marker, 0, 48)
	outer := g.Units(TickRingUnits * tickInset)
	for i := 0; i < 60; i++ {
		if i%5 == 0 {
			continue
		}
		markers = append(markers, Marker{
			Angle:       float64(i)/60*360 - 90,
			OuterRadius: outer,
			InnerRadius: outer - g.Units(minuteTickLength),
			Width:       g.Units(minuteTickWidth),
		})
	}
	return markers
}
