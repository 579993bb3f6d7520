// Package palette holds the day and night colour sets used by the faces
// and the rule that decides which one is active.
package palette

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Mode int

const (
	Day Mode = iota
	Night
)

func (m Mode) String() string {
	if m == Night {
		return "night"
	}
	return "day"
}

// ParseMode accepts "day" or "night" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return Day, nil
	case "night":
		return Night, nil
	default:
		return Day, fmt.Errorf("unknown mode %q (want day or night)", s)
	}
}

// Schedule is the local-time window during which night mode is active.
// The window wraps around midnight when Start > End.
type Schedule struct {
	Start int // first night hour, 0-23
	End   int // first day hour, 0-23
}

// DefaultSchedule is 23:00 to 07:00.
var DefaultSchedule = Schedule{Start: 23, End: 7}

// IsNight reports whether hour falls inside the night window.
func (s Schedule) IsNight(hour int) bool {
	if s.Start == s.End {
		return false
	}
	if s.Start < s.End {
		return hour >= s.Start && hour < s.End
	}
	return hour >= s.Start || hour < s.End
}

// ModeAt picks the mode for t. force selects night regardless of the hour.
func ModeAt(t time.Time, force bool, s Schedule) Mode {
	if force || s.IsNight(t.Hour()) {
		return Night
	}
	return Day
}

// Clock is the colour set for the analog clock face.
type Clock struct {
	Background  color.RGBA
	RingFill    color.RGBA
	RingOutline color.RGBA
	FaceFill    color.RGBA
	FaceOutline color.RGBA
	HourHand    color.RGBA
	MinuteHand  color.RGBA
	Ticks       color.RGBA
	CenterDot   color.RGBA
	Spotlight   color.NRGBA // A == 0 disables the spotlight
}

// Text is the colour set for the date/time card.
type Text struct {
	Background color.RGBA
	Foreground color.RGBA
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// DayClock is the classic station clock: white face, black hands, red dot.
func DayClock() Clock {
	return Clock{
		Background:  rgb(230, 240, 250),
		RingFill:    rgb(211, 211, 211), // lightgray
		RingOutline: rgb(169, 169, 169), // darkgray
		FaceFill:    rgb(255, 255, 255),
		FaceOutline: rgb(128, 128, 128),
		HourHand:    rgb(0, 0, 0),
		MinuteHand:  rgb(0, 0, 0),
		Ticks:       rgb(0, 0, 0),
		CenterDot:   rgb(0xC2, 0x31, 0x32),
		Spotlight:   color.NRGBA{R: 255, G: 255, B: 255, A: 128},
	}
}

// NightClock keeps the day geometry but dims everything down for a dark room.
func NightClock() Clock {
	ring := rgb(28, 28, 32)
	face := rgb(8, 8, 12)
	return Clock{
		Background:  rgb(0, 0, 0),
		RingFill:    ring,
		RingOutline: AdjustLightness(ring, 0.1),
		FaceFill:    face,
		FaceOutline: AdjustLightness(face, 0.1),
		HourHand:    rgb(0, 128, 255),
		MinuteHand:  rgb(0, 128, 255),
		Ticks:       rgb(0, 96, 192),
		CenterDot:   rgb(0x80, 0x20, 0x20),
	}
}

func DayText() Text {
	return Text{Background: rgb(135, 206, 235), Foreground: rgb(0, 0, 0)}
}

func NightText() Text {
	return Text{Background: rgb(0, 0, 0), Foreground: rgb(0, 128, 255)}
}

func ClockFor(m Mode) Clock {
	if m == Night {
		return NightClock()
	}
	return DayClock()
}

func TextFor(m Mode) Text {
	if m == Night {
		return NightText()
	}
	return DayText()
}

// AdjustLightness raises the HSL lightness of c by delta, clamped to [0,1].
// A negative delta darkens. Alpha is kept.
func AdjustLightness(c color.RGBA, delta float64) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()
	l = min(1, max(0, l+delta))
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
