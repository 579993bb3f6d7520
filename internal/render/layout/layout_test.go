package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightForAspect(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{480, 270},
		{1920, 1080},
		{100, 56},  // 56.25
		{250, 141}, // 140.625
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeightForAspect(tt.width, 16, 9), "width %d", tt.width)
	}
	assert.Zero(t, HeightForAspect(480, 0, 9))
}

func TestCenterAndFitSquare(t *testing.T) {
	r := image.Rect(0, 0, 1920, 1080)
	assert.Equal(t, image.Pt(960, 540), Center(r))
	assert.Equal(t, image.Rect(0, 0, 1080, 1080), FitSquare(r))
	assert.Equal(t, image.Pt(2, 3), Center(image.Rect(5, 7, 0, 0)), "normalized first")
}

func TestFraction(t *testing.T) {
	r := image.Rect(0, 0, 480, 270)
	got := Fraction(r, 0.3, -0.2, 1.2, 0.7)
	assert.Equal(t, image.Rect(144, -54, 576, 189), got)
}

func TestCenterX(t *testing.T) {
	assert.Equal(t, 190, CenterX(image.Rect(0, 0, 480, 10), 100))
	assert.Equal(t, 15, CenterX(image.Rect(10, 0, 30, 10), 10))
}
