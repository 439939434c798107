package main

import (
	"fmt"
	"os"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/imaging"
	"github.com/akeil/atlastool/pkg/preview"
)

func doInfo(base, outline, pdf string) error {
	a, err := atlastool.Open(base)
	if err != nil {
		return err
	}
	s := a.Sheet

	fmt.Printf("Sprite sheet %q\n", s.Name)
	fmt.Println("--------------------")
	fmt.Printf("Size:   %dx%d\n", s.Width, s.Height)
	fmt.Printf("Frames: %d in %d groups\n", s.FrameCount(), len(s.Sprites))
	for _, key := range s.Keys() {
		fmt.Printf("- %v (%d)\n", key, len(s.Sprites[key]))
	}

	if outline != "" {
		err = imaging.Write(outline, preview.Outline(a, preview.OutlineColor))
		if err != nil {
			fmt.Printf("%v Failed to write outline: %v\n", crossmark, err)
			return err
		}
		fmt.Printf("%v outline saved as %q.\n", checkmark, outline)
	}

	if pdf != "" {
		err = writePDF(a, pdf)
		if err != nil {
			fmt.Printf("%v Failed to write PDF: %v\n", crossmark, err)
			return err
		}
		fmt.Printf("%v contact sheet saved as %q.\n", checkmark, pdf)
	}

	return nil
}

func writePDF(a *atlastool.Atlas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return atlastool.NewIOError(path, err)
	}
	defer f.Close()

	err = preview.WritePDF(a, f)
	if err != nil {
		return err
	}
	return f.Close()
}
