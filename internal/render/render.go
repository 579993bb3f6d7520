package render

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/squeezetools/nowscreen/internal/palette"
)

// ErrInvalidSize is returned when a face is asked for an output smaller than MinWidth.
var ErrInvalidSize = errors.New("invalid output size")

// Face renders one kind of screen for a point in time.
type Face interface {
	// Name is the short identifier used on the command line.
	Name() string
	// FileName is the output file name written by PNGSink.
	FileName() string
	// Colors is the palette size for the persisted file; 0 keeps full RGB.
	Colors() int
	Render(now time.Time, mode palette.Mode) (*image.RGBA, error)
}

// Sink persists or displays a rendered face.
type Sink interface {
	Write(ctx context.Context, face Face, img image.Image) error
}

// Logger is the component-tagged logger used by sinks.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
