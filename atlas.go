package atlastool

import (
	"image"

	"github.com/akeil/atlastool/internal/imaging"
)

// Atlas is a saved sprite sheet, loaded with its image.
type Atlas struct {
	Sheet *SpriteSheet
	Image *image.NRGBA
}

// Open loads the atlas stored as <base>.json and <base>.png.
//
// The metadata is validated against the image bounds.
func Open(base string) (*Atlas, error) {
	var sheet SpriteSheet
	err := readJSON(base+MetadataExt, &sheet)
	if err != nil {
		return nil, err
	}

	img, err := readPNG(base + ImageExt)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() != int(sheet.Width) || b.Dy() != int(sheet.Height) {
		return nil, NewValidationError("image size %vx%v does not match sprite sheet size %vx%v",
			b.Dx(), b.Dy(), sheet.Width, sheet.Height)
	}

	err = sheet.Validate()
	if err != nil {
		return nil, Wrap(err, "invalid sprite sheet %q", base)
	}

	// NRGBA keeps the stored colors and allows SubImage(...)
	return &Atlas{
		Sheet: &sheet,
		Image: imaging.ToNRGBA(img),
	}, nil
}

// Frame returns the trimmed sprite for frame i of the given group.
// The returned image shares pixels with the atlas.
func (a *Atlas) Frame(key string, i int) (image.Image, error) {
	f, err := a.Sheet.Frame(key, i)
	if err != nil {
		return nil, err
	}
	return a.Image.SubImage(f.Rect()), nil
}

// Untrimmed reconstructs the sprite for frame i of the given group
// at its original size, with the trimmed pixels at their original position.
func (a *Atlas) Untrimmed(key string, i int) (*image.NRGBA, error) {
	f, err := a.Sheet.Frame(key, i)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, int(f.OriginalWidth), int(f.OriginalHeight)))
	x, y := int(f.TopLeftOffsetX), int(f.TopLeftOffsetY)
	r := image.Rect(x, y, x+int(f.Width), y+int(f.Height))
	imaging.Copy(dst, r, a.Image, f.Rect().Min)
	return dst, nil
}
