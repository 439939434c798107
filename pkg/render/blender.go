// Package render runs Blender on .blend files and stitches the rendered
// frames into sprite sheets.
package render

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/internal/logging"
)

// ViewType selects the camera setup used by the render script.
type ViewType int

const (
	// Sidescroller is the classic platformer view.
	Sidescroller ViewType = iota
	// Isometric is a view like in Diablo.
	Isometric
	// TopDown looks straight down on the scene.
	TopDown
	// AdvanceWarsBattle mimics the battle cutscenes of Advance Wars.
	AdvanceWarsBattle
	// PokemonBattle mimics the battle cutscenes of Pokemon.
	PokemonBattle
	// InternalCamera uses the camera stored in the .blend file.
	InternalCamera
)

var viewNames = [...]string{
	"Sidescroller",
	"Isometric",
	"TopDown",
	"AdvanceWarsBattle",
	"PokemonBattle",
	"InternalCamera",
}

var viewFlags = [...]string{
	"sidescroller",
	"isometric",
	"top-down",
	"advance-wars-battle",
	"pokemon-battle",
	"internal-camera",
}

// String returns the name the render script expects, e.g. "TopDown".
func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "ViewType(" + strconv.Itoa(int(v)) + ")"
	}
	return viewNames[v]
}

// Flag returns the command line name, e.g. "top-down".
func (v ViewType) Flag() string {
	if v < 0 || int(v) >= len(viewFlags) {
		return ""
	}
	return viewFlags[v]
}

// ViewTypes lists the command line names of all view types.
func ViewTypes() []string {
	names := make([]string, len(viewFlags))
	copy(names, viewFlags[:])
	return names
}

// ParseViewType accepts the command line name or the script name of a view
// type, ignoring case.
func ParseViewType(s string) (ViewType, error) {
	for i := range viewFlags {
		if strings.EqualFold(s, viewFlags[i]) || strings.EqualFold(s, viewNames[i]) {
			return ViewType(i), nil
		}
	}
	return 0, atlastool.NewValidationError("unknown view type %q", s)
}

// Job describes one render run of a .blend file.
type Job struct {
	BlendFile string
	// OutputDir receives the rendered frames.
	OutputDir  string
	Width      int
	Height     int
	View       ViewType
	Rotations  int
	Animations string
}

// Validate checks that the job can be handed to Blender.
func (j Job) Validate() error {
	if j.BlendFile == "" {
		return atlastool.NewValidationError("no blender file given")
	}
	if !fs.Exists(j.BlendFile) {
		return atlastool.NewValidationError("blender file %q does not exist", j.BlendFile)
	}
	if !fs.IsFile(j.BlendFile) {
		return atlastool.NewValidationError("blender file %q is not a file", j.BlendFile)
	}
	if !fs.HasExt(j.BlendFile, "blend") {
		return atlastool.NewValidationError("blender file %q is not a .blend file", j.BlendFile)
	}
	if j.OutputDir == "" {
		return atlastool.NewValidationError("no output directory given")
	}
	if fs.CheckDir(j.OutputDir) != nil {
		return atlastool.NewValidationError("output directory %q is not a directory", j.OutputDir)
	}
	if j.Width <= 0 {
		return atlastool.NewValidationError("sprite width must be greater than 0")
	}
	if j.Height <= 0 {
		return atlastool.NewValidationError("sprite height must be greater than 0")
	}
	if j.Rotations <= 0 {
		return atlastool.NewValidationError("number of rotations must be greater than 0")
	}
	if j.View.Flag() == "" {
		return atlastool.NewValidationError("invalid view type %v", j.View)
	}
	return nil
}

// DefaultScript is the render script passed to Blender
// unless a different one is configured.
const DefaultScript = "data/render_blender.py"

var defaultCandidates = []string{
	"blender",
	"/Applications/Blender.app/Contents/MacOS/Blender",
}

// LocateBlender returns the first candidate that answers to --version.
// Empty candidates are ignored. If no candidates are given,
// the usual install locations and the PATH are searched.
func LocateBlender(ctx context.Context, candidates ...string) (string, error) {
	options := make([]string, 0, len(candidates)+3)
	for _, c := range candidates {
		if c != "" {
			options = append(options, c)
		}
	}
	if len(options) == 0 {
		options = append(options, defaultCandidates...)
		if p, err := exec.LookPath("blender"); err == nil {
			options = append(options, p)
		}
	}

	for _, o := range options {
		out, err := exec.CommandContext(ctx, o, "--version").Output()
		if err != nil {
			logging.Debug("Blender candidate %q: %v", o, err)
			continue
		}
		if len(bytes.TrimSpace(out)) != 0 {
			logging.Info("Using blender at %q", o)
			return o, nil
		}
	}

	return "", atlastool.NewValidationError("could not find blender executable (tried %v)", options)
}

// Blender runs render jobs with a Blender executable in background mode.
type Blender struct {
	Exe    string
	Script string
}

// NewBlender creates a Blender for the given executable and script.
// An empty script selects DefaultScript.
func NewBlender(exe, script string) *Blender {
	if script == "" {
		script = DefaultScript
	}
	return &Blender{Exe: exe, Script: script}
}

// Render validates the job and renders all frames into job.OutputDir.
// The output directory is created if necessary.
func (b *Blender) Render(ctx context.Context, job Job) error {
	err := job.Validate()
	if err != nil {
		return err
	}

	blend, err := filepath.Abs(job.BlendFile)
	if err != nil {
		return atlastool.Wrap(err, "resolve %q", job.BlendFile)
	}
	script, err := filepath.Abs(b.Script)
	if err != nil {
		return atlastool.Wrap(err, "resolve %q", b.Script)
	}
	if !fs.IsFile(script) {
		return atlastool.NewValidationError("render script %q does not exist", script)
	}
	out, err := filepath.Abs(job.OutputDir)
	if err != nil {
		return atlastool.Wrap(err, "resolve %q", job.OutputDir)
	}
	err = fs.EnsureDir(out)
	if err != nil {
		return atlastool.NewIOError(out, err)
	}

	args := []string{
		"-b", blend,
		"-P", script,
		"--",
		out,
		strconv.Itoa(job.Width),
		strconv.Itoa(job.Height),
		job.View.String(),
		strconv.Itoa(job.Rotations),
		job.Animations,
	}

	logging.Info("Render %q as %v", job.BlendFile, job.View)
	logging.Debug("Run %v %v", b.Exe, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, b.Exe, args...)
	output, err := cmd.CombinedOutput()
	if len(output) != 0 {
		logging.Debug("Blender output:\n%s", output)
	}
	if err != nil {
		return atlastool.Wrap(err, "blender failed to render %q", job.BlendFile)
	}

	return nil
}

// ScratchDir returns a new, unique directory below outDir
// for the frames of one render run.
func ScratchDir(outDir string) string {
	return filepath.Join(outDir, ".blender_render", uuid.New().String())
}
