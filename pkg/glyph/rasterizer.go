// Package glyph renders the characters of a font into a sprite sheet.
package glyph

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/internal/logging"
)

// DefaultPadding is the transparent border around each rendered glyph.
const DefaultPadding = 8

// Font is a parsed TrueType or OpenType font.
type Font struct {
	otf *opentype.Font
}

// ParseFont parses font data in TrueType or OpenType format.
func ParseFont(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, atlastool.Wrap(err, "failed to parse font")
	}
	return &Font{otf: f}, nil
}

// LoadFont reads a .ttf or .otf font file.
func LoadFont(path string) (*Font, error) {
	if !fs.IsFile(path) {
		return nil, atlastool.NewValidationError("font file %q does not exist", path)
	}
	if !fs.HasExt(path, "ttf", "otf") {
		return nil, atlastool.NewValidationError("font file %q is not a TTF or OTF file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, atlastool.NewIOError(path, err)
	}

	f, err := ParseFont(data)
	if err != nil {
		return nil, atlastool.Wrap(err, "failed to load font %q", path)
	}
	return f, nil
}

// Metrics holds the vertical metrics of a font face in pixels.
type Metrics struct {
	Ascent     int
	Descent    int
	LineHeight int
}

// Rasterizer renders single characters to RGBA bitmaps.
//
// Every bitmap is as high as the face, from ascent to descent, plus padding
// on all sides. Glyphs are rendered in a single color with the coverage
// as alpha.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	face    font.Face
	padding int
	color   color.Color
}

// NewRasterizer creates a Rasterizer for the given font at scale pixels per em.
func NewRasterizer(f *Font, scale float64) (*Rasterizer, error) {
	if scale <= 0 {
		return nil, atlastool.NewValidationError("font scale must be greater than zero, got %v", scale)
	}

	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, atlastool.Wrap(err, "create font face")
	}

	return &Rasterizer{
		face:    face,
		padding: DefaultPadding,
		color:   color.White,
	}, nil
}

// Close releases the font face.
func (r *Rasterizer) Close() error {
	return r.face.Close()
}

// Metrics returns the vertical metrics of the face, rounded up to whole pixels.
func (r *Rasterizer) Metrics() Metrics {
	m := r.face.Metrics()
	return Metrics{
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

// Rasterize renders a single character.
//
// Characters without visible pixels (whitespace) produce a transparent
// bitmap that is two paddings wide.
func (r *Rasterizer) Rasterize(ch rune) *image.RGBA {
	m := r.face.Metrics()
	s := string(ch)
	pad := r.padding

	height := (m.Ascent + m.Descent).Ceil()
	bounds, _ := font.BoundString(r.face, s)

	empty := bounds.Empty()
	minX := 0
	width := 2 * pad
	if !empty {
		minX = bounds.Min.X.Floor()
		width = bounds.Max.X.Ceil() - minX
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*pad, height+2*pad))
	if empty {
		logging.Debug("Glyph %q has no pixels", s)
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.color),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(pad - minX),
			Y: fixed.I(pad) + m.Ascent,
		},
	}
	d.DrawString(s)

	return img
}
