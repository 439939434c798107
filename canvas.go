package atlastool

import (
	"image"

	"github.com/akeil/atlastool/internal/imaging"
)

// Canvas is the pixel buffer an atlas is composed on.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the composed image with straight alpha.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Blit copies every pixel of src to the canvas with the top-left corner
// at x,y. Pixels replace what is on the canvas, including their alpha.
//
// An OutOfBounds error is returned if src does not fit completely.
func (c *Canvas) Blit(x, y int, src image.Image) error {
	b := src.Bounds()
	if x < 0 || y < 0 || x+b.Dx() > c.Width() || y+b.Dy() > c.Height() {
		return OutOfBounds{
			X:            x,
			Y:            y,
			Width:        b.Dx(),
			Height:       b.Dy(),
			CanvasWidth:  c.Width(),
			CanvasHeight: c.Height(),
		}
	}

	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	imaging.Copy(c.img, r, src, b.Min)
	return nil
}
