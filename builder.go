package atlastool

import (
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/atlastool/internal/logging"
)

// Option configures a Builder.
type Option func(*Builder)

// WithFixedSize makes the Builder pack into a canvas of exactly width x height
// instead of sizing the canvas automatically.
func WithFixedSize(width, height int) Option {
	return func(b *Builder) {
		b.packer = NewFixedPacker(width, height)
	}
}

// WithWorkers limits the number of images trimmed concurrently by AddSprites.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// entry is a trimmed sprite waiting to be packed.
// key and index locate its frame in the resulting SpriteSheet.
type entry struct {
	key   string
	index int
	trim  Trimmed
}

// Builder collects sprites and composes them into an atlas.
//
// Sprites are added with AddSprite and grouped by key.
// Nothing is packed until Pack or Save is called;
// each call packs all sprites added so far.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	name    string
	packer  *Packer
	workers int
	entries []entry
	counts  map[string]int
}

// NewBuilder creates an empty Builder for an atlas with the given name.
// The name is used for the file names when the atlas is saved.
func NewBuilder(name string, opts ...Option) *Builder {
	b := &Builder{
		name:    name,
		packer:  NewPacker(),
		workers: runtime.NumCPU(),
		counts:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the name of the atlas.
func (b *Builder) Name() string {
	return b.name
}

// Len returns the number of sprites added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Groups returns the keys of all sprite groups in sorted order.
func (b *Builder) Groups() []string {
	keys := make([]string, 0, len(b.counts))
	for k := range b.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AddSprite trims img and appends it as a new frame to the group key.
// The group is created if it does not exist.
func (b *Builder) AddSprite(key string, img image.Image) error {
	if img == nil {
		return NewValidationError("nil image for sprite %q", key)
	}
	b.add(key, Trim(img))
	return nil
}

// AddSprites appends all images to the group key, in order.
//
// The images are trimmed concurrently. If any image is invalid,
// no frame is added.
func (b *Builder) AddSprites(key string, imgs []image.Image) error {
	trimmed := make([]Trimmed, len(imgs))

	var group errgroup.Group
	group.SetLimit(b.workers)
	for i, img := range imgs {
		i, img := i, img
		group.Go(func() error {
			if img == nil {
				return NewValidationError("nil image for sprite %q[%d]", key, i)
			}
			trimmed[i] = Trim(img)
			return nil
		})
	}
	err := group.Wait()
	if err != nil {
		return err
	}

	for _, t := range trimmed {
		b.add(key, t)
	}
	return nil
}

func (b *Builder) add(key string, t Trimmed) {
	idx := b.counts[key]
	b.counts[key] = idx + 1
	b.entries = append(b.entries, entry{key: key, index: idx, trim: t})

	logging.Debug("Add sprite %v[%d]: %vx%v -> %vx%v at %v,%v", key, idx,
		t.OriginalWidth, t.OriginalHeight, t.Width(), t.Height(), t.TopLeftX, t.TopLeftY)
}

// Pack arranges all sprites added so far and composes the atlas image.
//
// The returned SpriteSheet is newly allocated on every call.
func (b *Builder) Pack() (*SpriteSheet, *Canvas, error) {
	rects := make([]Rect, len(b.entries))
	for i, e := range b.entries {
		rects[i] = Rect{Width: e.trim.Width(), Height: e.trim.Height()}
	}

	layout, err := b.packer.Pack(rects)
	if err != nil {
		return nil, nil, err
	}

	sheet := &SpriteSheet{
		Width:   uint32(layout.Width),
		Height:  uint32(layout.Height),
		Name:    b.name,
		Sprites: make(map[string][]Frame, len(b.counts)),
	}
	for k, n := range b.counts {
		sheet.Sprites[k] = make([]Frame, n)
	}

	canvas := NewCanvas(layout.Width, layout.Height)
	for i, e := range b.entries {
		pos := layout.Positions[i]
		err = canvas.Blit(pos.X, pos.Y, e.trim.Image)
		if err != nil {
			return nil, nil, Wrap(err, "invariant violated for %v[%d]", e.key, e.index)
		}

		sheet.Sprites[e.key][e.index] = newFrame(pos, e.trim)
	}

	return sheet, canvas, nil
}

func newFrame(pos image.Point, t Trimmed) Frame {
	return Frame{
		X:              uint32(pos.X),
		Y:              uint32(pos.Y),
		Width:          uint32(t.Width()),
		Height:         uint32(t.Height()),
		OriginalWidth:  uint32(t.OriginalWidth),
		OriginalHeight: uint32(t.OriginalHeight),
		TopLeftOffsetX: uint32(t.TopLeftX),
		TopLeftOffsetY: uint32(t.TopLeftY),
		CenterOffsetX:  int32(t.CenterX),
		CenterOffsetY:  int32(t.CenterY),
	}
}

// Save packs the atlas and writes it to the directory dir as
// <dir>/<name>.png and <dir>/<name>.json.
//
// dir must not have a file extension. It is created if it does not exist.
// Returns the sprite sheet metadata that was written.
func (b *Builder) Save(dir string) (*SpriteSheet, error) {
	err := b.validateSave(dir)
	if err != nil {
		return nil, err
	}

	sheet, canvas, err := b.Pack()
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, NewIOError(dir, err)
	}

	base := filepath.Join(dir, b.name)
	err = Write(canvas.Image(), sheet, base)
	if err != nil {
		return nil, err
	}

	logging.Info("Saved sprite sheet %q to %q: %vx%v, %v sprites", b.name, base, sheet.Width, sheet.Height, len(b.entries))
	return sheet, nil
}

func (b *Builder) validateSave(dir string) error {
	if dir == "" {
		return NewValidationError("no output directory given")
	}
	// leading dots mark hidden directories (or "." and ".."), not extensions
	if ext := filepath.Ext(strings.TrimLeft(filepath.Base(dir), ".")); ext != "" {
		return NewValidationError("path %q should not have an extension (%q) when saving a sprite sheet", dir, ext)
	}
	if b.name == "" || strings.ContainsAny(b.name, `/\`) {
		return NewValidationError("invalid sprite sheet name %q", b.name)
	}
	if len(b.entries) == 0 {
		return NewValidationError("sprite sheet %q has no sprites", b.name)
	}

	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return NewValidationError("path %q exists and is not a directory", dir)
	} else if err != nil && !os.IsNotExist(err) {
		return NewIOError(dir, err)
	}

	return nil
}
