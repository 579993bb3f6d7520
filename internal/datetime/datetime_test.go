package datetime

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/squeezetools/nowscreen/internal/palette"
	"github.com/squeezetools/nowscreen/internal/render"
)

var monday = time.Date(2026, time.October, 19, 7, 5, 0, 0, time.UTC)

func TestLabels(t *testing.T) {
	tests := []struct {
		lang      string
		want      string
		supported bool
	}{
		{"en", "Mon 19 Oct", true},
		{"", "Mon 19 Oct", true},
		{"fr", "lun. 19 oct.", true},
		{"fr-CA", "lun. 19 oct.", true},
		{"de", "Mo 19 Okt", true},
		{"nl", "ma 19 okt", true},
		{"xx", "Mon 19 Oct", false},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l, err := NewLabels(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Date(monday))
			assert.Equal(t, tt.supported, l.Supported())
		})
	}
}

func TestLabelsCoverEveryDayAndMonth(t *testing.T) {
	l, err := NewLabels("de")
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "fr", "nl"}, l.Languages)
	seen := map[string]bool{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		seen[l.Weekday(d)] = true
	}
	assert.Len(t, seen, 7)
	seen = map[string]bool{}
	for m := time.January; m <= time.December; m++ {
		seen[l.Month(m)] = true
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, "Mär", l.Month(time.March))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "07:05", Clock(monday))
	assert.Equal(t, "23:59", Clock(time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC)))
}

func inkRows(img *image.RGBA, fg color.RGBA) (first, last int) {
	first, last = -1, -1
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if absDiff(p.R, fg.R)+absDiff(p.G, fg.G)+absDiff(p.B, fg.B) < 30 {
				if first < 0 {
					first = y
				}
				last = y
				break
			}
		}
	}
	return first, last
}

// inkCols returns the leftmost and rightmost columns with text in rows [y0, y1).
func inkCols(img *image.RGBA, fg color.RGBA, y0, y1 int) (left, right int) {
	left, right = -1, -1
	for y := y0; y < y1; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if absDiff(p.R, fg.R)+absDiff(p.G, fg.G)+absDiff(p.B, fg.B) >= 30 {
				continue
			}
			if left < 0 || x < left {
				left = x
			}
			if x > right {
				right = x
			}
		}
	}
	return left, right
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestFaceRender(t *testing.T) {
	f, err := NewFace(Options{Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "datetime", f.Name())
	assert.Equal(t, "date_time.png", f.FileName())
	assert.Equal(t, render.DefaultColors, f.Colors())

	day, err := f.Render(monday, palette.Day)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 480, 272), day.Bounds())
	assert.InDelta(t, int(palette.DayText().Background.B), int(day.RGBAAt(0, 0).B), 1)

	first, last := inkRows(day, palette.DayText().Foreground)
	assert.GreaterOrEqual(t, first, 70, "text starts at the date line")
	assert.Less(t, last, 272)
	assert.Greater(t, last, 140, "time line drawn below the date")

	for _, line := range []struct {
		name   string
		y0, y1 int
	}{
		{"date", dateTop, timeTop},
		{"time", timeTop, 272},
	} {
		left, right := inkCols(day, palette.DayText().Foreground, line.y0, line.y1)
		require.GreaterOrEqual(t, left, 0, line.name)
		assert.InDelta(t, left, 479-right, 6, "%s line is centred (x %d-%d)", line.name, left, right)
	}

	night, err := f.Render(monday, palette.Night)
	require.NoError(t, err)
	assert.InDelta(t, int(palette.NightText().Background.B), int(night.RGBAAt(0, 0).B), 1)

	again, err := f.Render(monday, palette.Day)
	require.NoError(t, err)
	assert.Equal(t, day.Pix, again.Pix)
}

func TestFaceWidth(t *testing.T) {
	f, err := NewFace(Options{Width: 240})
	require.NoError(t, err)
	img, err := f.Render(monday, palette.Day)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 136), img.Bounds())
}

func TestRenderWithBitmapFont(t *testing.T) {
	img, err := Render(480, 272, palette.NightText(), basicfont.Face7x13, "Mon 19 Oct", "07:05")
	require.NoError(t, err)
	lit := 0
	for i := 2; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 60 {
			lit++
		}
	}
	assert.Positive(t, lit, "some text visible")

	_, err = Render(4, 4, palette.NightText(), basicfont.Face7x13, "", "")
	assert.True(t, errors.Is(err, render.ErrInvalidSize))
}
