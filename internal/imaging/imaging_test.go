package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			}
		}
	}
	return img
}

func TestResize(t *testing.T) {
	src := checker(4, 2)
	dst := Resize(src, 2)

	b := dst.Bounds()
	if b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("unexpected size: %vx%v", b.Dx(), b.Dy())
	}

	// every source pixel becomes a 2x2 block
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			_, _, _, a := dst.At(x, y).RGBA()
			_, _, _, e := src.At(x/2, y/2).RGBA()
			if a != e {
				t.Fatalf("unexpected alpha at %v,%v: %v != %v", x, y, a, e)
			}
		}
	}

	half := Resize(checker(5, 5), 0.5)
	if half.Bounds().Dx() != 2 || half.Bounds().Dy() != 2 {
		t.Errorf("unexpected size when scaling down: %v", half.Bounds())
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	src.SetNRGBA(1, 1, color.NRGBA{100, 50, 200, 3})
	if ToNRGBA(src) != src {
		t.Errorf("NRGBA images at the origin should be returned as they are")
	}

	sub := src.SubImage(image.Rect(1, 1, 4, 4))
	conv := ToNRGBA(sub)
	if conv.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Errorf("unexpected bounds: %v", conv.Bounds())
	}
	if c := conv.NRGBAAt(0, 0); c != (color.NRGBA{100, 50, 200, 3}) {
		t.Errorf("unexpected color for translucent pixel: %v", c)
	}

	rgba := ToNRGBA(checker(2, 2))
	if c := rgba.NRGBAAt(0, 0); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("unexpected color after conversion: %v", c)
	}
}

func TestCopy(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(2, 2, color.NRGBA{10, 20, 30, 1})
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	dst.SetNRGBA(0, 0, color.NRGBA{1, 1, 1, 255})

	Copy(dst, image.Rect(1, 1, 3, 3), src, image.Pt(1, 1))

	if c := dst.NRGBAAt(2, 2); c != (color.NRGBA{10, 20, 30, 1}) {
		t.Errorf("unexpected color: %v", c)
	}
	if c := dst.NRGBAAt(1, 1); c.A != 0 {
		t.Errorf("transparent source pixel should replace the destination: %v", c)
	}
	if c := dst.NRGBAAt(0, 0); c.A != 255 {
		t.Errorf("pixel outside the copy area was changed: %v", c)
	}
	if c := dst.NRGBAAt(3, 3); c.A != 0 {
		t.Errorf("pixel outside the copy area was changed: %v", c)
	}
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	src := checker(3, 3)

	p := filepath.Join(dir, "img.png")
	err := Write(p, src)
	if err != nil {
		t.Fatal(err)
	}
	img, err := Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Errorf("unexpected size after reading: %v", img.Bounds())
	}

	bmpPath := filepath.Join(dir, "img.bmp")
	if err := Write(bmpPath, src); err != nil {
		t.Fatal(err)
	}
	img, err = Read(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Errorf("unexpected size after reading bmp: %v", img.Bounds())
	}

	err = Write(filepath.Join(dir, "img.gif"), src)
	if err == nil {
		t.Errorf("unsupported format should not be written")
	}
}

func TestResizeFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "img.png")
	if err := Write(p, checker(4, 4)); err != nil {
		t.Fatal(err)
	}

	if err := ResizeFile(p, 0.5); err != nil {
		t.Fatal(err)
	}
	img, err := Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("unexpected width after resize: %v", img.Bounds().Dx())
	}

	if ResizeFile(p, 0) == nil {
		t.Errorf("zero scale should be rejected")
	}
}

func TestIsSupported(t *testing.T) {
	for _, n := range []string{"a.png", "b.JPG", "c.jpeg", "d.bmp"} {
		if !IsSupported(n) {
			t.Errorf("%q should be supported", n)
		}
	}
	for _, n := range []string{"a.gif", "b", "c.tga"} {
		if IsSupported(n) {
			t.Errorf("%q should not be supported", n)
		}
	}
}
