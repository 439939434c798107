package atlastool

import (
	"fmt"
	"image"
	"sort"
)

// Frame describes the placement of one sprite within an atlas together with
// the geometry of the sprite before it was trimmed.
type Frame struct {
	// X is the left edge of the frame in the atlas.
	X uint32 `json:"x"`
	// Y is the top edge of the frame in the atlas.
	Y uint32 `json:"y"`
	// Width is the width of the trimmed sprite.
	Width uint32 `json:"width"`
	// Height is the height of the trimmed sprite.
	Height uint32 `json:"height"`
	// OriginalWidth is the width of the sprite before trimming.
	OriginalWidth uint32 `json:"original_width"`
	// OriginalHeight is the height of the sprite before trimming.
	OriginalHeight uint32 `json:"original_height"`
	// TopLeftOffsetX is the distance from the left edge of the original
	// bitmap to the left edge of the trimmed region.
	TopLeftOffsetX uint32 `json:"top_left_offset_x"`
	// TopLeftOffsetY is the distance from the top edge of the original
	// bitmap to the top edge of the trimmed region.
	TopLeftOffsetY uint32 `json:"top_left_offset_y"`
	// CenterOffsetX is the distance from the center of the original bitmap
	// to the left edge of the trimmed region.
	CenterOffsetX int32 `json:"center_offset_x"`
	// CenterOffsetY is the distance from the center of the original bitmap
	// to the top edge of the trimmed region.
	CenterOffsetY int32 `json:"center_offset_y"`
}

// Rect returns the area covered by this frame in the atlas.
func (f Frame) Rect() image.Rectangle {
	x, y := int(f.X), int(f.Y)
	return image.Rect(x, y, x+int(f.Width), y+int(f.Height))
}

// Validate checks the trim geometry of a frame.
func (f Frame) Validate() error {
	if f.Width > f.OriginalWidth {
		return NewValidationError("frame width %v exceeds original width %v", f.Width, f.OriginalWidth)
	}
	if f.Height > f.OriginalHeight {
		return NewValidationError("frame height %v exceeds original height %v", f.Height, f.OriginalHeight)
	}
	return nil
}

// SpriteSheet is the metadata for a packed atlas.
//
// Sprites maps a group key (a character or an animation name) to its frames.
// Frames are kept in the order they were added,
// which is the playback order for animations.
type SpriteSheet struct {
	Width   uint32             `json:"width"`
	Height  uint32             `json:"height"`
	Name    string             `json:"name"`
	Sprites map[string][]Frame `json:"sprites"`
}

// Keys returns the group keys in sorted order.
func (s *SpriteSheet) Keys() []string {
	keys := make([]string, 0, len(s.Sprites))
	for k := range s.Sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FrameCount returns the total number of frames in all groups.
func (s *SpriteSheet) FrameCount() int {
	n := 0
	for _, frames := range s.Sprites {
		n += len(frames)
	}
	return n
}

// Frame returns the frame at index i of the given group.
func (s *SpriteSheet) Frame(key string, i int) (Frame, error) {
	frames, ok := s.Sprites[key]
	if !ok {
		return Frame{}, NewValidationError("no sprite group %q", key)
	}
	if i < 0 || i >= len(frames) {
		return Frame{}, NewValidationError("frame index %v out of range for %q (%v frames)", i, key, len(frames))
	}
	return frames[i], nil
}

// Validate checks that every frame lies within the atlas bounds
// and that no two frames overlap.
// Returns an error if invalid data is found, nil if everything is fine.
func (s *SpriteSheet) Validate() error {
	bounds := image.Rect(0, 0, int(s.Width), int(s.Height))

	type placed struct {
		name string
		rect image.Rectangle
	}
	all := make([]placed, 0, s.FrameCount())

	for _, key := range s.Keys() {
		for i, f := range s.Sprites[key] {
			err := f.Validate()
			if err != nil {
				return Wrap(err, "%v[%d]", key, i)
			}

			r := f.Rect()
			if r.Max.X > bounds.Max.X || r.Max.Y > bounds.Max.Y {
				return NewValidationError("%v[%d] at %v is not within atlas bounds %vx%v", key, i, r, s.Width, s.Height)
			}
			all = append(all, placed{fmt.Sprintf("%v[%d]", key, i), r})
		}
	}

	// sweep along x to avoid comparing every pair
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].rect.Min.X < all[j].rect.Min.X
	})
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if all[j].rect.Min.X >= all[i].rect.Max.X {
				break
			}
			if all[i].rect.Overlaps(all[j].rect) {
				return NewValidationError("%v overlaps %v", all[i].name, all[j].name)
			}
		}
	}

	return nil
}
