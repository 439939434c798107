package preview

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/atlastool"
)

func testAtlas(t *testing.T) *atlastool.Atlas {
	t.Helper()
	b := atlastool.NewBuilder("preview")
	for i, size := range []int{8, 6, 4} {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p+1] = uint8(60 * (i + 1))
			img.Pix[p+3] = 255
		}
		require.NoError(t, b.AddSprite("box", img))
	}
	require.NoError(t, b.AddSprite("empty", image.NewRGBA(image.Rect(0, 0, 2, 2))))

	sheet, canvas, err := b.Pack()
	require.NoError(t, err)
	return &atlastool.Atlas{Sheet: sheet, Image: canvas.Image()}
}

func TestOutline(t *testing.T) {
	a := testAtlas(t)
	before := append([]uint8(nil), a.Image.Pix...)

	out := Outline(a, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, a.Image.Bounds().Size(), out.Bounds().Size())
	assert.Equal(t, before, a.Image.Pix, "source image must not change")

	at := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(a.Image.At(x, y)).(color.RGBA)
	}
	for _, f := range a.Sheet.Sprites["box"] {
		x, y := int(f.X), int(f.Y+f.Height/2)
		assert.NotEqual(t, at(x, y), out.RGBAAt(x, y), "left edge of %+v", f)
		assert.Greater(t, out.RGBAAt(x, y).R, uint8(127))

		cx, cy := int(f.X+f.Width/2), int(f.Y+f.Height/2)
		assert.Equal(t, at(cx, cy), out.RGBAAt(cx, cy), "center of %+v", f)
	}
}

func TestWritePDF(t *testing.T) {
	a := testAtlas(t)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(a, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}
