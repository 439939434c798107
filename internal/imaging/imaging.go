package imaging

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/akeil/atlastool/internal/logging"
)

// Extensions lists the file extensions of the supported image formats.
var Extensions = []string{"png", "jpg", "jpeg", "bmp"}

// Resize creates a copy of the given image, scaled by the given factor
// with nearest neighbour sampling.
func Resize(i image.Image, scale float64) image.Image {
	b := i.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	// gift keeps the aspect ratio for a zero dimension
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}

	g := gift.New(gift.Resize(w, h, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, i)
	return dst
}

// ToNRGBA converts the given image to non-premultiplied RGBA
// with bounds starting at 0,0.
func ToNRGBA(i image.Image) *image.NRGBA {
	b := i.Bounds()
	if n, ok := i.(*image.NRGBA); ok && b.Min == image.ZP {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	Copy(dst, dst.Bounds(), i, b.Min)
	return dst
}

// Copy replaces the pixels in r of dst with the pixels of src starting at sp.
//
// NRGBA sources are copied byte for byte, so colors of translucent pixels
// survive unchanged. Other sources are converted with draw.Src.
func Copy(dst *image.NRGBA, r image.Rectangle, src image.Image, sp image.Point) {
	n, ok := src.(*image.NRGBA)
	if !ok {
		draw.Draw(dst, r, src, sp, draw.Src)
		return
	}

	r = r.Intersect(dst.Bounds())
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(n.Bounds())
	r.Max = r.Min.Add(sr.Size())
	rowLen := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		d := dst.PixOffset(r.Min.X, r.Min.Y+y)
		s := n.PixOffset(sr.Min.X, sr.Min.Y+y)
		copy(dst.Pix[d:d+rowLen], n.Pix[s:s+rowLen])
	}
}

// IsSupported tells if images with the given file name can be read and written.
func IsSupported(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Read decodes the image at the given path.
func Read(path string) (image.Image, error) {
	logging.Debug("Read image from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	i, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return i, nil
}

// Write encodes the image to the given path.
// The format is chosen from the file extension.
func Write(path string, i image.Image) error {
	logging.Debug("Write image to %q", path)
	if !IsSupported(path) {
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(w, i)
	case ".bmp":
		err = bmp.Encode(w, i)
	default:
		err = jpeg.Encode(w, i, &jpeg.Options{Quality: 95})
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ResizeFile scales the image at path and replaces it with the result.
func ResizeFile(path string, scale float64) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("invalid scale %v", scale)
	}
	i, err := Read(path)
	if err != nil {
		return err
	}
	return Write(path, Resize(i, scale))
}
