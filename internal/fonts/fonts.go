// Package fonts loads font faces for the text faces, falling back to the
// embedded Go font and finally to a fixed bitmap font.
package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/squeezetools/nowscreen/internal/render"
)

// Source says where a loaded face came from.
type Source int

const (
	FromFile Source = iota
	FromEmbedded
	FromBitmap
)

func (s Source) String() string {
	switch s {
	case FromFile:
		return "file"
	case FromEmbedded:
		return "embedded"
	default:
		return "bitmap"
	}
}

// Parse builds a face of size points from raw font bytes. OpenType is tried
// first, then the freetype TrueType parser which copes with some older files.
func Parse(data []byte, size float64) (font.Face, error) {
	otf, err := opentype.Parse(data)
	if err == nil {
		face, ferr := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
		err = ferr
	}
	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, fmt.Errorf("font parse failed: %v; truetype: %w", err, terr)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// Load returns a face for path at size points. An empty path or a file that
// cannot be read or parsed falls back to Go Regular, then to basicfont.
func Load(path string, size float64, logger render.Logger) (font.Face, Source) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var face font.Face
			face, err = Parse(data, size)
			if err == nil {
				if logger != nil {
					logger.Infof("font", "loaded %s at %gpt", path, size)
				}
				return face, FromFile
			}
		}
		if logger != nil {
			logger.Errorf("font", "error loading font %q, using default: %v", path, err)
		}
	}
	face, err := Parse(goregular.TTF, size)
	if err != nil {
		if logger != nil {
			logger.Errorf("font", "embedded font parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13, FromBitmap
	}
	return face, FromEmbedded
}
