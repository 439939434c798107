package atlastool

import (
	"image"
	"image/color"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

// newSprite creates a transparent w x h image with the area r filled with c.
func newSprite(w, h int, r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// opaque creates a w x h image filled with c.
func opaque(w, h int, c color.RGBA) *image.RGBA {
	return newSprite(w, h, image.Rect(0, 0, w, h), c)
}

// samePixels reports whether a and b have the same size and pixel values.
func samePixels(a, b image.Image) bool {
	ba, bb := a.Bounds(), b.Bounds()
	if ba.Dx() != bb.Dx() || ba.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ba.Dy(); y++ {
		for x := 0; x < ba.Dx(); x++ {
			r0, g0, b0, a0 := a.At(ba.Min.X+x, ba.Min.Y+y).RGBA()
			r1, g1, b1, a1 := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
				return false
			}
		}
	}
	return true
}
