package render

// Output geometry shared by the faces.
const (
	// DefaultWidth matches the Squeezebox Touch screen.
	DefaultWidth = 480

	AspectWidth  = 16
	AspectHeight = 9

	// MinWidth is the smallest output the faces accept.
	MinWidth = 16
	// MaxWidth caps either output dimension; supersampled canvases grow
	// with its square.
	MaxWidth = 4096

	// DefaultColors is the palette size for quantised outputs.
	DefaultColors = 8
)
