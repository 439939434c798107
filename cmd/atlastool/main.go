package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/pkg/render"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

// settings shared by the commands that run blender.
type settings struct {
	blender string
	script  string
	keep    bool
}

func main() {
	app := kingpin.New("atlastool", "Sprite atlas tool")
	app.HelpFlag.Short('h')

	var (
		logLevel = app.Flag("log-level", "Log level (debug, info, warning, error, none)").Envar("ATLASTOOL_LOG_LEVEL").Default("warning").String()
		blender  = app.Flag("blender", "Blender executable").Envar("ATLASTOOL_BLENDER").String()
		script   = app.Flag("script", "Render script for blender").Envar("ATLASTOOL_SCRIPT").Default(render.DefaultScript).String()
	)

	fontmap := app.Command("fontmap", "Render the characters of a font into a sprite sheet")
	var (
		fontFile = fontmap.Arg("font", "TTF or OTF font file").Required().String()
		fontOut  = fontmap.Arg("output", "Output directory").Required().String()
		text     = fontmap.Flag("text", "Characters to render").Short('t').String()
		textDir  = fontmap.Flag("text-dir", "Render all characters used in the files of this directory").String()
		textExt  = fontmap.Flag("ext", "Extension of the files in --text-dir").Default("txt").String()
		scale    = fontmap.Flag("scale", "Font size in pixels").Default("12").Float64()
	)

	stitchCmd := app.Command("stitch", "Combine blender renders into a sprite sheet")
	var (
		renderDir = stitchCmd.Arg("renders", "Directory with rendered frames").Required().String()
		stitchOut = stitchCmd.Arg("output", "Output directory").Required().String()
		sheetName = stitchCmd.Flag("name", "Name of the sprite sheet (default: from renders)").Short('n').String()
	)

	renderCmd := app.Command("render", "Render a .blend file into a sprite sheet")
	var (
		blendFile  = renderCmd.Arg("blend", ".blend file").Required().String()
		renderOut  = renderCmd.Arg("output", "Output directory").Required().String()
		renderJob  = jobFlags(renderCmd)
		animations = renderCmd.Flag("animations", "Animations to render").Short('a').String()
		keep       = renderCmd.Flag("keep-renders", "Keep the rendered frames").Bool()
	)

	mega := app.Command("mega", "Render all .blend files below a directory into one sprite sheet")
	var (
		sourceDir = mega.Arg("source", "Directory with .blend files").Required().String()
		megaOut   = mega.Arg("output", "Output directory").Required().String()
		megaName  = mega.Arg("name", "Name of the sprite sheet").Required().String()
		megaJob   = jobFlags(mega)
		megaKeep  = mega.Flag("keep-renders", "Keep the rendered frames").Bool()
	)

	resize := app.Command("resize", "Scale all images below a directory in place")
	var (
		resizeDir   = resize.Arg("dir", "Directory with images").Required().String()
		resizeScale = resize.Arg("scale", "Scale factor").Required().Float64()
	)

	info := app.Command("info", "Show a saved sprite sheet")
	var (
		infoBase = info.Arg("base", "Path of the sprite sheet without extension").Required().String()
		outline  = info.Flag("outline", "Write the atlas with frame outlines to this PNG file").String()
		pdf      = info.Flag("pdf", "Write a contact sheet to this PDF file").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	atlastool.SetLogLevel(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case "fontmap":
		err = doFontMap(*fontFile, *fontOut, *text, *textDir, *textExt, *scale)
	case "stitch":
		err = doStitch(*renderDir, *stitchOut, *sheetName)
	case "render":
		s := settings{blender: *blender, script: *script, keep: *keep}
		job := renderJob.job(*blendFile)
		job.Animations = *animations
		err = doRender(ctx, s, job, *renderOut)
	case "mega":
		s := settings{blender: *blender, script: *script, keep: *megaKeep}
		err = doMega(ctx, s, megaJob.job(""), *sourceDir, *megaOut, *megaName)
	case "resize":
		err = doResize(*resizeDir, *resizeScale)
	case "info":
		err = doInfo(*infoBase, *outline, *pdf)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
