package main

import (
	"fmt"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/pkg/glyph"
)

func doFontMap(fontFile, outDir, text, textDir, ext string, scale float64) error {
	if text == "" && textDir == "" {
		return atlastool.NewValidationError("no characters given, use --text or --text-dir")
	}

	runes := glyph.Runes(text)
	if textDir != "" {
		more, err := glyph.RunesFromDir(textDir, ext)
		if err != nil {
			return err
		}
		runes = glyph.Runes(string(runes) + string(more))
	}

	f, err := glyph.LoadFont(fontFile)
	if err != nil {
		return err
	}
	r, err := glyph.NewRasterizer(f, scale)
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Printf("%v render %d characters from %q\n", ellipsis, len(runes), fontFile)
	sheet, err := glyph.BuildFontMap(r, runes, outDir)
	if err != nil {
		fmt.Printf("%v Failed to build font map: %v\n", crossmark, err)
		return err
	}

	printSaved(sheet, outDir)
	return nil
}
