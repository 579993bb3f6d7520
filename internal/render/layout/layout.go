package layout

import (
	"image"
	"math"
)

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// HeightForAspect returns round(width * aspectH / aspectW).
func HeightForAspect(width, aspectW, aspectH int) int {
	if aspectW <= 0 {
		return 0
	}
	return int(math.Round(float64(width) * float64(aspectH) / float64(aspectW)))
}

// Center returns the integer center of rect, rounding down.
func Center(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxW := rect.Dx()
	maxH := rect.Dy()
	if widthPx > maxW {
		widthPx = maxW
	}
	if heightPx > maxH {
		heightPx = maxH
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	if size < 0 {
		size = 0
	}
	return AnchorTopLeft(rect, size, size)
}

// Fraction maps fractional coordinates (0 = Min, 1 = Max) onto rect.
// Values outside [0,1] extend past the rectangle, truncated like int().
func Fraction(rect image.Rectangle, x0, y0, x1, y1 float64) image.Rectangle {
	rect = Normalize(rect)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	return Normalize(image.Rect(
		rect.Min.X+int(w*x0),
		rect.Min.Y+int(h*y0),
		rect.Min.X+int(w*x1),
		rect.Min.Y+int(h*y1),
	))
}

// CenterX returns the x at which content of widthPx is horizontally centered in rect.
func CenterX(rect image.Rectangle, widthPx int) int {
	rect = Normalize(rect)
	return rect.Min.X + (rect.Dx()-widthPx)/2
}
