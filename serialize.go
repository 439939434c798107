package atlastool

import (
	"bufio"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/akeil/atlastool/internal/logging"
)

const (
	// ImageExt is the file extension for atlas images.
	ImageExt = ".png"
	// MetadataExt is the file extension for atlas metadata.
	MetadataExt = ".json"
)

// Write saves img as <base>.png and sheet as <base>.json.
//
// Both files are always attempted. If one or both fail, the returned error
// contains every failure. Files that were written successfully are kept.
func Write(img image.Image, sheet *SpriteSheet, base string) error {
	imgPath := base + ImageExt
	errImg := writePNG(imgPath, img)
	if errImg == nil {
		logging.Info("Saved sprite sheet image to %q", imgPath)
	}

	jsonPath := base + MetadataExt
	errJSON := writeJSON(jsonPath, sheet)
	if errJSON == nil {
		logging.Info("Saved sprite sheet metadata to %q", jsonPath)
	}

	return errors.Join(errImg, errJSON)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return NewIOError(path, err)
	}

	w := bufio.NewWriter(f)
	err = png.Encode(w, img)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewIOError(path, err)
	}
	return nil
}

func writeJSON(path string, sheet *SpriteSheet) error {
	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return Wrap(err, "encode metadata for %q", path)
	}
	data = append(data, '\n')

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return NewIOError(path, err)
	}
	return nil
}

func readJSON(path string, dst interface{}) error {
	r, err := os.Open(path)
	if err != nil {
		return NewIOError(path, err)
	}
	defer r.Close()

	dec := json.NewDecoder(r)
	err = dec.Decode(dst)
	if err != nil {
		return Wrap(err, "decode %q", path)
	}

	return nil
}

func readPNG(path string) (image.Image, error) {
	logging.Debug("Read PNG image from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, NewIOError(path, err)
	}
	defer f.Close()

	img, err := png.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, Wrap(err, "decode %q", path)
	}
	return img, nil
}
