package render

import (
	"image"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/atlastool"
	"github.com/akeil/atlastool/internal/fs"
	"github.com/akeil/atlastool/internal/imaging"
	"github.com/akeil/atlastool/internal/logging"
)

// MegaSheetName is the sheet name for renders from several source files.
const MegaSheetName = "MegaSheet"

// RenderSet is the rendered frames of a directory, grouped by sprite key.
type RenderSet struct {
	Dir    string
	groups map[string][]string
	files  map[string]bool
}

// Collect groups all .png renders in dir by their GroupKey.
// The frames of each group are ordered by file name.
func Collect(dir string) (*RenderSet, error) {
	if !fs.IsDir(dir) {
		return nil, atlastool.NewValidationError("render directory %q is not a directory", dir)
	}

	paths, err := fs.List(dir, "png")
	if err != nil {
		return nil, atlastool.NewIOError(dir, err)
	}

	s := &RenderSet{
		Dir:    dir,
		groups: make(map[string][]string),
		files:  make(map[string]bool),
	}
	for _, p := range paths {
		n, err := ParseRenderName(p)
		if err != nil {
			return nil, err
		}
		key := n.GroupKey()
		s.groups[key] = append(s.groups[key], p)
		s.files[n.File] = true
	}

	// fs.List returns sorted paths, groups keep that order
	logging.Debug("Collected %d frames in %d groups from %q", len(paths), len(s.groups), dir)
	return s, nil
}

// Keys returns the group keys in sorted order.
func (s *RenderSet) Keys() []string {
	keys := make([]string, 0, len(s.groups))
	for k := range s.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Frames returns the frame paths of the group key.
func (s *RenderSet) Frames(key string) []string {
	return s.groups[key]
}

// Len returns the number of frames in all groups.
func (s *RenderSet) Len() int {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	return n
}

// Name is the source file of the renders,
// or MegaSheetName if they come from more than one file.
func (s *RenderSet) Name() string {
	if len(s.files) > 1 {
		return MegaSheetName
	}
	for f := range s.files {
		return f
	}
	return ""
}

// Stitch packs all frames of the set into one sprite sheet and saves it
// in outDir. If name is empty, the name of the set is used.
func Stitch(s *RenderSet, outDir, name string) (*atlastool.SpriteSheet, error) {
	if s.Len() == 0 {
		return nil, atlastool.NewValidationError("no renders found in %q", s.Dir)
	}
	if name == "" {
		name = s.Name()
	}

	b := atlastool.NewBuilder(name)
	for _, key := range s.Keys() {
		imgs, err := loadFrames(s.Frames(key))
		if err != nil {
			return nil, err
		}
		err = b.AddSprites(key, imgs)
		if err != nil {
			return nil, err
		}
	}

	return b.Save(outDir)
}

func loadFrames(paths []string) ([]image.Image, error) {
	imgs := make([]image.Image, len(paths))

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		i, p := i, p
		group.Go(func() error {
			img, err := imaging.Read(p)
			if err != nil {
				return atlastool.NewIOError(p, err)
			}
			imgs[i] = img
			return nil
		})
	}

	return imgs, group.Wait()
}

// FindBlendFiles returns all .blend files below root, sorted by path.
func FindBlendFiles(root string) ([]string, error) {
	if !fs.IsDir(root) {
		return nil, atlastool.NewValidationError("source directory %q is not a directory", root)
	}
	paths, err := fs.Walk(root, "blend")
	if err != nil {
		return nil, atlastool.NewIOError(root, err)
	}
	return paths, nil
}
