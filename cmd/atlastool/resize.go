package main

import (
	"fmt"
	"math"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/internal/imaging"
)

func doResize(dir string, scale float64) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return atlastool.NewValidationError("scale must be greater than zero, got %v", scale)
	}
	if !fs.Exists(dir) {
		return atlastool.NewValidationError("source directory %q does not exist", dir)
	}
	if !fs.IsDir(dir) {
		return atlastool.NewValidationError("source directory %q must be a directory", dir)
	}

	paths, err := fs.Walk(dir, imaging.Extensions...)
	if err != nil {
		return atlastool.NewIOError(dir, err)
	}
	if len(paths) == 0 {
		fmt.Printf("No images found in %q\n", dir)
		return nil
	}

	bar := progressbar.Default(int64(len(paths)), "resize")

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for _, p := range paths {
		p := p
		group.Go(func() error {
			err := imaging.ResizeFile(p, scale)
			bar.Add(1)
			if err != nil {
				return atlastool.Wrap(err, "resize %q", p)
			}
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return err
	}
	fmt.Printf("%v resized %d images in %q by %v.\n", checkmark, len(paths), dir, scale)
	return nil
}
