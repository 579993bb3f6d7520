package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/soniakeys/quant/median"
)

// PNGSink writes each face to Dir/<face.FileName()>.
type PNGSink struct {
	Dir    string
	Logger Logger
}

// Path returns where face is written.
func (s PNGSink) Path(face Face) string {
	return filepath.Join(s.Dir, face.FileName())
}

func (s PNGSink) Write(ctx context.Context, face Face, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if n := face.Colors(); n > 0 {
		img = Quantize(img, n)
	}
	path := s.Path(face)
	if err := writePNGAtomic(path, img); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Infof("png", "saved %s to %q", face.Name(), path)
	}
	return nil
}

// Quantize reduces img to at most colors entries with Floyd-Steinberg dithering.
func Quantize(img image.Image, colors int) *image.Paletted {
	pal := median.Quantizer(colors).Quantize(make(color.Palette, 0, colors), img)
	out := image.NewPaletted(img.Bounds(), pal)
	draw.FloydSteinberg.Draw(out, out.Bounds(), img, img.Bounds().Min)
	return out
}

// EncodePNG writes img with maximum compression. Opaque RGBA images are
// stored as 24-bit RGB.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// writePNGAtomic writes to a pending file next to path and renames it into
// place, so readers never see a partial file.
func writePNGAtomic(path string, img image.Image) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer pending.Cleanup() // no-op after CloseAtomicallyReplace

	if err := EncodePNG(pending, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
