package atlastool

import (
	"image"

	"github.com/akeil/atlastool/internal/imaging"
)

// Trimmed is a sprite cropped to its visible content.
type Trimmed struct {
	// Image holds the cropped pixels. Its bounds start at 0,0.
	Image *image.NRGBA
	// OriginalWidth and OriginalHeight are the dimensions before cropping.
	OriginalWidth  int
	OriginalHeight int
	// TopLeftX and TopLeftY locate the cropped region in the original bitmap.
	TopLeftX int
	TopLeftY int
	// CenterX and CenterY locate the cropped region relative to the center
	// of the original bitmap.
	CenterX int
	CenterY int
}

// Width returns the width of the cropped image.
func (t Trimmed) Width() int {
	return t.Image.Bounds().Dx()
}

// Height returns the height of the cropped image.
func (t Trimmed) Height() int {
	return t.Image.Bounds().Dy()
}

// Trim crops the given image to the smallest rectangle that contains all
// pixels with a non-zero alpha value.
//
// A fully transparent image is replaced with a transparent placeholder of
// half its size, offset by half its size.
// This keeps whitespace glyphs in the atlas with a sensible advance.
//
// The source image is not modified.
func Trim(img image.Image) Trimmed {
	src := imaging.ToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	t := Trimmed{
		OriginalWidth:  w,
		OriginalHeight: h,
	}

	// Fully transparent: a w/2 x h/2 placeholder with center offset 0.
	// The untouched scan bounds would give w/2 - (w-1); that is not used.
	if maxX < 0 {
		t.Image = image.NewNRGBA(image.Rect(0, 0, w/2, h/2))
		t.TopLeftX = w / 2
		t.TopLeftY = h / 2
		t.CenterX = w/2 - t.TopLeftX
		t.CenterY = h/2 - t.TopLeftY
		return t
	}

	crop := image.Rect(minX, minY, maxX+1, maxY+1)
	t.Image = image.NewNRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	imaging.Copy(t.Image, t.Image.Bounds(), src, crop.Min)
	t.TopLeftX = minX
	t.TopLeftY = minY
	t.CenterX = w/2 - minX
	t.CenterY = h/2 - minY

	return t
}
