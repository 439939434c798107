package glyph

import (
	"os"
	"sort"
	"unicode"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/internal/logging"
)

// FontMapName is the name of the sprite sheet created by BuildFontMap.
const FontMapName = "font_atlas"

// Runes returns the distinct characters of text in ascending order.
// Control characters like line breaks are left out.
func Runes(text string) []rune {
	seen := make(map[rune]bool)
	for _, r := range text {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		seen[r] = true
	}

	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// RunesFromDir collects the distinct characters from all files in dir
// that have the given extension.
func RunesFromDir(dir, ext string) ([]rune, error) {
	if !fs.IsDir(dir) {
		return nil, atlastool.NewValidationError("text directory %q is not a directory", dir)
	}

	paths, err := fs.List(dir, ext)
	if err != nil {
		return nil, atlastool.NewIOError(dir, err)
	}

	var text []byte
	for _, p := range paths {
		logging.Debug("Read characters from %q", p)
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, atlastool.NewIOError(p, err)
		}
		text = append(text, data...)
		text = append(text, '\n')
	}

	return Runes(string(text)), nil
}

// BuildFontMap renders each of the given characters and saves them as one
// sprite sheet named FontMapName in dir.
// Each character is a group with a single frame, keyed by the character.
func BuildFontMap(r *Rasterizer, runes []rune, dir string) (*atlastool.SpriteSheet, error) {
	if len(runes) == 0 {
		return nil, atlastool.NewValidationError("no characters to render")
	}

	b := atlastool.NewBuilder(FontMapName)
	for _, ch := range runes {
		err := b.AddSprite(string(ch), r.Rasterize(ch))
		if err != nil {
			return nil, err
		}
	}

	return b.Save(dir)
}
