package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/imaging"
	"github.com/akeil/atlastool/pkg/glyph"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}
	if err := imaging.Write(path, img); err != nil {
		t.Fatal(err)
	}
}

func TestResizeValidation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	writeImage(t, file, 2, 2)

	cases := []struct {
		dir   string
		scale float64
	}{
		{dir, 0},
		{dir, -1},
		{filepath.Join(dir, "missing"), 0.5},
		{file, 0.5},
	}
	for _, c := range cases {
		err := doResize(c.dir, c.scale)
		if !atlastool.IsValidationError(err) {
			t.Errorf("expected a validation error for %q, %v; got %v", c.dir, c.scale, err)
		}
	}
}

func TestResize(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(sub, "b.bmp")
	other := filepath.Join(dir, "notes.txt")
	writeImage(t, a, 8, 4)
	writeImage(t, b, 6, 6)
	if err := os.WriteFile(other, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := doResize(dir, 0.5); err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]image.Point{a: {4, 2}, b: {3, 3}} {
		img, err := imaging.Read(path)
		if err != nil {
			t.Fatal(err)
		}
		if s := img.Bounds().Size(); s != want {
			t.Errorf("unexpected size of %q: %v, want %v", path, s, want)
		}
	}

	data, err := os.ReadFile(other)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "not an image" {
		t.Errorf("unexpected change to %q", other)
	}
}

func TestResizeEmptyDir(t *testing.T) {
	if err := doResize(t.TempDir(), 2); err != nil {
		t.Errorf("unexpected error for an empty directory: %v", err)
	}
}

func TestFontMapNoText(t *testing.T) {
	err := doFontMap("font.ttf", t.TempDir(), "", "", "txt", 12)
	if !atlastool.IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestFontMap(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "regular.ttf")
	if err := os.WriteFile(font, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	if err := doFontMap(font, out, "ab", "", "txt", 16); err != nil {
		t.Fatal(err)
	}

	a, err := atlastool.Open(filepath.Join(out, glyph.FontMapName))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b"} {
		if len(a.Sheet.Sprites[key]) != 1 {
			t.Errorf("unexpected frames for %q: %v", key, a.Sheet.Sprites[key])
		}
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	b := atlastool.NewBuilder("sheet")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.SetNRGBA(i, i, color.NRGBA{255, 0, 0, 255})
	}
	if err := b.AddSprite("A", img); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Save(dir); err != nil {
		t.Fatal(err)
	}

	outline := filepath.Join(dir, "outline.png")
	pdf := filepath.Join(dir, "contact.pdf")
	if err := doInfo(filepath.Join(dir, "sheet"), outline, pdf); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{outline, pdf} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("expected %q to be written: %v", p, err)
		}
	}
}
