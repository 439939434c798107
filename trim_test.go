package atlastool

import (
	"image"
	"image/color"
	"testing"
)

func TestTrimOpaque(t *testing.T) {
	src := opaque(4, 4, red)
	tr := Trim(src)

	if tr.Width() != 4 || tr.Height() != 4 {
		t.Errorf("unexpected size: %vx%v", tr.Width(), tr.Height())
	}
	if tr.TopLeftX != 0 || tr.TopLeftY != 0 {
		t.Errorf("unexpected top left offset: %v,%v", tr.TopLeftX, tr.TopLeftY)
	}
	if tr.CenterX != 2 || tr.CenterY != 2 {
		t.Errorf("unexpected center offset: %v,%v", tr.CenterX, tr.CenterY)
	}
	if !samePixels(src, tr.Image) {
		t.Errorf("opaque image should not change when trimmed")
	}
}

func TestTrimIdempotent(t *testing.T) {
	src := newSprite(9, 7, image.Rect(2, 1, 6, 5), green)
	first := Trim(src)
	second := Trim(first.Image)

	if second.TopLeftX != 0 || second.TopLeftY != 0 {
		t.Errorf("unexpected offset when trimming a trimmed image: %v,%v", second.TopLeftX, second.TopLeftY)
	}
	if second.OriginalWidth != first.Width() || second.OriginalHeight != first.Height() {
		t.Errorf("unexpected original size: %vx%v", second.OriginalWidth, second.OriginalHeight)
	}
	if !samePixels(first.Image, second.Image) {
		t.Errorf("trimming a trimmed image should not change it")
	}
}

func TestTrimTransparent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 5))
	tr := Trim(src)

	if tr.Width() != 3 || tr.Height() != 2 {
		t.Errorf("unexpected placeholder size: %vx%v != 3x2", tr.Width(), tr.Height())
	}
	if tr.TopLeftX != 3 || tr.TopLeftY != 2 {
		t.Errorf("unexpected top left offset: %v,%v != 3,2", tr.TopLeftX, tr.TopLeftY)
	}
	if tr.CenterX != 0 || tr.CenterY != 0 {
		t.Errorf("unexpected center offset: %v,%v", tr.CenterX, tr.CenterY)
	}
	if tr.OriginalWidth != 7 || tr.OriginalHeight != 5 {
		t.Errorf("unexpected original size: %vx%v", tr.OriginalWidth, tr.OriginalHeight)
	}
	for i := 3; i < len(tr.Image.Pix); i += 4 {
		if tr.Image.Pix[i] != 0 {
			t.Fatalf("placeholder should be fully transparent")
		}
	}
}

func TestTrimCenterOffset(t *testing.T) {
	// content occupies x 6..8, y 1..3
	src := newSprite(10, 8, image.Rect(6, 1, 9, 4), blue)
	tr := Trim(src)

	if tr.Width() != 3 || tr.Height() != 3 {
		t.Errorf("unexpected size: %vx%v", tr.Width(), tr.Height())
	}
	if tr.TopLeftX != 6 || tr.TopLeftY != 1 {
		t.Errorf("unexpected top left offset: %v,%v", tr.TopLeftX, tr.TopLeftY)
	}

	// content right of center gives a negative offset
	expectedX := 10/2 - 6
	expectedY := 8/2 - 1
	if tr.CenterX != expectedX || tr.CenterY != expectedY {
		t.Errorf("unexpected center offset: %v,%v != %v,%v", tr.CenterX, tr.CenterY, expectedX, expectedY)
	}
}

func TestTrimEdgeContent(t *testing.T) {
	// a single pixel in the bottom right corner is content, not empty
	src := newSprite(5, 5, image.Rect(4, 4, 5, 5), red)
	tr := Trim(src)

	if tr.Width() != 1 || tr.Height() != 1 {
		t.Errorf("unexpected size: %vx%v", tr.Width(), tr.Height())
	}
	if tr.TopLeftX != 4 || tr.TopLeftY != 4 {
		t.Errorf("unexpected top left offset: %v,%v", tr.TopLeftX, tr.TopLeftY)
	}
}

func TestTrimSemiTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	src.SetNRGBA(1, 2, color.NRGBA{100, 50, 200, 3})
	src.SetNRGBA(3, 4, color.NRGBA{255, 255, 255, 200})

	tr := Trim(src)
	if tr.Width() != 3 || tr.Height() != 3 {
		t.Errorf("unexpected size: %vx%v", tr.Width(), tr.Height())
	}
	if tr.TopLeftX != 1 || tr.TopLeftY != 2 {
		t.Errorf("unexpected top left offset: %v,%v", tr.TopLeftX, tr.TopLeftY)
	}
	if c := tr.Image.NRGBAAt(0, 0); c != (color.NRGBA{100, 50, 200, 3}) {
		t.Errorf("unexpected color of translucent pixel: %v", c)
	}
}

func TestTrimSubImage(t *testing.T) {
	big := newSprite(20, 20, image.Rect(12, 12, 14, 15), green)
	sub := big.SubImage(image.Rect(10, 10, 20, 20))

	tr := Trim(sub)
	if tr.OriginalWidth != 10 || tr.OriginalHeight != 10 {
		t.Errorf("unexpected original size: %vx%v", tr.OriginalWidth, tr.OriginalHeight)
	}
	if tr.TopLeftX != 2 || tr.TopLeftY != 2 {
		t.Errorf("unexpected top left offset: %v,%v", tr.TopLeftX, tr.TopLeftY)
	}
	if tr.Width() != 2 || tr.Height() != 3 {
		t.Errorf("unexpected size: %vx%v", tr.Width(), tr.Height())
	}
	if tr.Image.Bounds().Min != image.ZP {
		t.Errorf("trimmed image should start at 0,0, got %v", tr.Image.Bounds())
	}
}

func TestTrimDoesNotModifySource(t *testing.T) {
	src := newSprite(4, 4, image.Rect(1, 1, 3, 3), red)
	before := append([]uint8(nil), src.Pix...)

	tr := Trim(src)
	tr.Image.Set(0, 0, blue)

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatalf("source image was modified")
		}
	}
}
