// Package preview renders saved atlases for inspection.
package preview

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"

	"github.com/akeil/atlastool"
)

// OutlineColor is the default color for frame outlines.
var OutlineColor = color.RGBA{255, 0, 255, 255}

// Outline returns a copy of the atlas image with a one pixel border drawn
// along the inner edge of every frame.
// Empty frames are skipped.
func Outline(a *atlastool.Atlas, c color.Color) *image.RGBA {
	src := a.Image
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1)

	for _, key := range a.Sheet.Keys() {
		for _, f := range a.Sheet.Sprites[key] {
			if f.Width == 0 || f.Height == 0 {
				continue
			}
			// stroke through the pixel centers of the outermost rows and columns
			x0 := float64(f.X) + 0.5
			y0 := float64(f.Y) + 0.5
			x1 := float64(f.X+f.Width) - 0.5
			y1 := float64(f.Y+f.Height) - 0.5
			draw2dkit.Rectangle(gc, x0, y0, x1, y1)
			gc.Stroke()
		}
	}

	return dst
}
