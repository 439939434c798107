package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/pkg/render"
)

type jobArgs struct {
	width     *int
	height    *int
	view      *string
	rotations *int
}

func jobFlags(cmd *kingpin.CmdClause) jobArgs {
	return jobArgs{
		width:     cmd.Flag("width", "Sprite width in pixels").Short('W').Required().Int(),
		height:    cmd.Flag("height", "Sprite height in pixels").Short('H').Required().Int(),
		view:      cmd.Flag("view", "View type").Short('v').Required().Enum(render.ViewTypes()...),
		rotations: cmd.Flag("rotations", "Number of rotations").Short('r').Default("1").Int(),
	}
}

func (a jobArgs) job(blend string) render.Job {
	// the flag is an enum, parsing cannot fail
	v, _ := render.ParseViewType(*a.view)
	return render.Job{
		BlendFile: blend,
		Width:     *a.width,
		Height:    *a.height,
		View:      v,
		Rotations: *a.rotations,
	}
}

func doStitch(renderDir, outDir, name string) error {
	set, err := render.Collect(renderDir)
	if err != nil {
		return err
	}
	return stitch(set, outDir, name)
}

func stitch(set *render.RenderSet, outDir, name string) error {
	fmt.Printf("%v stitch %d frames from %q\n", ellipsis, set.Len(), set.Dir)
	sheet, err := render.Stitch(set, outDir, name)
	if err != nil {
		fmt.Printf("%v Failed to stitch %q: %v\n", crossmark, set.Dir, err)
		return err
	}
	printSaved(sheet, outDir)
	return nil
}

func doRender(ctx context.Context, s settings, job render.Job, outDir string) error {
	job.OutputDir = render.ScratchDir(outDir)
	err := job.Validate()
	if err != nil {
		return err
	}

	b, err := setupBlender(ctx, s)
	if err != nil {
		return err
	}
	defer cleanup(s, job.OutputDir)

	fmt.Printf("%v render %q\n", ellipsis, job.BlendFile)
	err = b.Render(ctx, job)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, job.BlendFile, err)
		return err
	}

	set, err := render.Collect(job.OutputDir)
	if err != nil {
		return err
	}
	return stitch(set, outDir, "")
}

func doMega(ctx context.Context, s settings, job render.Job, sourceDir, outDir, name string) error {
	if name == "" {
		return atlastool.NewValidationError("output name must not be empty")
	}
	if fs.CheckDir(outDir) != nil {
		return atlastool.NewValidationError("output directory %q is not a directory", outDir)
	}

	files, err := render.FindBlendFiles(sourceDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No .blend files found in %q\n", sourceDir)
		return nil
	}

	b, err := setupBlender(ctx, s)
	if err != nil {
		return err
	}

	scratch := render.ScratchDir(outDir)
	defer cleanup(s, scratch)

	// blender does its own multiprocessing, render the files one by one
	bar := progressbar.Default(int64(len(files)), "render")
	for _, f := range files {
		bar.Describe(filepath.Base(f))
		j := job
		j.BlendFile = f
		j.OutputDir = scratch
		err = b.Render(ctx, j)
		if err != nil {
			fmt.Printf("%v Failed to render %q: %v\n", crossmark, f, err)
			return err
		}
		bar.Add(1)
	}
	bar.Finish()

	set, err := render.Collect(scratch)
	if err != nil {
		return err
	}
	return stitch(set, outDir, name)
}

func setupBlender(ctx context.Context, s settings) (*render.Blender, error) {
	exe, err := render.LocateBlender(ctx, s.blender)
	if err != nil {
		return nil, err
	}
	return render.NewBlender(exe, s.script), nil
}

func cleanup(s settings, scratch string) {
	if s.keep {
		fmt.Printf("%v renders kept in %q\n", checkmark, scratch)
		return
	}
	err := os.RemoveAll(scratch)
	if err != nil {
		fmt.Printf("%v Failed to remove %q: %v\n", crossmark, scratch, err)
		return
	}
	// fails unless the parent is empty
	os.Remove(filepath.Dir(scratch))
}

func printSaved(sheet *atlastool.SpriteSheet, outDir string) {
	base := filepath.Join(outDir, sheet.Name)
	fmt.Printf("%v sprite sheet %q saved as %q (%dx%d, %d frames).\n",
		checkmark, sheet.Name, base+atlastool.ImageExt, sheet.Width, sheet.Height, sheet.FrameCount())
}
