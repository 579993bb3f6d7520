package palette

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, 0, 0, time.Local)
}

func TestModeAtBoundaries(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want Mode
	}{
		{"late evening", at(22, 59), Day},
		{"night starts", at(23, 0), Night},
		{"midnight", at(0, 0), Night},
		{"early morning", at(6, 59), Night},
		{"day starts", at(7, 0), Day},
		{"noon", at(12, 0), Day},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeAt(tt.t, false, DefaultSchedule))
		})
	}
}

func TestModeAtForced(t *testing.T) {
	assert.Equal(t, Night, ModeAt(at(12, 0), true, DefaultSchedule))
}

func TestScheduleWithoutWrap(t *testing.T) {
	s := Schedule{Start: 1, End: 5}
	assert.False(t, s.IsNight(0))
	assert.True(t, s.IsNight(1))
	assert.True(t, s.IsNight(4))
	assert.False(t, s.IsNight(5))
	assert.False(t, Schedule{Start: 3, End: 3}.IsNight(3), "empty window never matches")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" NIGHT ")
	require.NoError(t, err)
	assert.Equal(t, Night, m)
	assert.Equal(t, "night", m.String())

	m, err = ParseMode("day")
	require.NoError(t, err)
	assert.Equal(t, Day, m)

	_, err = ParseMode("dusk")
	assert.Error(t, err)
}

func TestAdjustLightness(t *testing.T) {
	got := AdjustLightness(color.RGBA{R: 66, G: 66, B: 66, A: 0xFF}, 0.2)
	assert.InDelta(t, 117, int(got.R), 1)
	assert.Equal(t, got.R, got.G, "grey stays grey")
	assert.Equal(t, got.G, got.B, "grey stays grey")
	assert.Equal(t, uint8(0xFF), got.A)

	white := AdjustLightness(color.RGBA{R: 250, G: 250, B: 250, A: 0xFF}, 0.5)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}, white, "lightness clamps at 1")

	darker := AdjustLightness(color.RGBA{R: 0, G: 128, B: 255, A: 0xFF}, -0.1)
	assert.Less(t, int(darker.B)+int(darker.G), 128+255)
}

func TestPalettesDiffer(t *testing.T) {
	assert.NotEqual(t, DayClock(), NightClock())
	assert.Equal(t, DayClock(), ClockFor(Day))
	assert.Equal(t, NightText(), TextFor(Night))
	assert.Zero(t, NightClock().Spotlight.A, "no spotlight in the dark")
}
