package atlastool

import (
	"image"
	"math"
	"sort"
)

// Rect is the size of one sprite to be placed by a Packer.
type Rect struct {
	Width  int
	Height int
}

// Layout is the result of packing a list of rectangles.
type Layout struct {
	Width  int
	Height int
	// Positions holds the top-left corner for each packed rectangle,
	// in the same order as the input.
	Positions []image.Point
}

// Sizing selects how a Packer determines the canvas size.
type Sizing int

const (
	// AutoSize estimates a power-of-two canvas from the sprite sizes and
	// grows it as needed.
	AutoSize Sizing = iota
	// FixedSize packs into a canvas of a given size and never grows it.
	FixedSize
)

func (s Sizing) String() string {
	switch s {
	case AutoSize:
		return "auto"
	case FixedSize:
		return "fixed"
	default:
		return "unknown"
	}
}

// Packer arranges rectangles in rows ("shelves").
//
// Rectangles are placed tallest first, left to right.
// A new row is started below the tallest rectangle of the current row
// when the next rectangle does not fit horizontally.
// The result is deterministic for a given input order.
type Packer struct {
	sizing Sizing
	width  int
	height int
}

// NewPacker creates a Packer that sizes the canvas automatically.
func NewPacker() *Packer {
	return &Packer{sizing: AutoSize}
}

// NewFixedPacker creates a Packer for a canvas of exactly width x height.
func NewFixedPacker(width, height int) *Packer {
	return &Packer{
		sizing: FixedSize,
		width:  width,
		height: height,
	}
}

// Sizing returns the sizing mode of this packer.
func (p *Packer) Sizing() Sizing {
	return p.sizing
}

// Pack computes a position for each of the given rectangles.
//
// With AutoSize, the canvas starts at the power of two that holds a roughly
// square grid of average sized rectangles. The width is doubled until it
// holds the widest rectangle, the height is doubled whenever a rectangle
// would extend below it. The canvas never shrinks.
//
// With FixedSize, a validation error is returned if the rectangles do not
// fit.
func (p *Packer) Pack(rects []Rect) (Layout, error) {
	l := Layout{Positions: make([]image.Point, len(rects))}

	if p.sizing == FixedSize && (p.width <= 0 || p.height <= 0) {
		return Layout{}, NewValidationError("invalid fixed canvas size %vx%v", p.width, p.height)
	}
	if len(rects) == 0 {
		if p.sizing == FixedSize {
			l.Width, l.Height = p.width, p.height
		}
		return l, nil
	}

	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rects[order[a]].Height > rects[order[b]].Height
	})

	width, height, err := p.initialSize(rects)
	if err != nil {
		return Layout{}, err
	}

	x, y, rowHeight := 0, 0, 0
	for _, i := range order {
		r := rects[i]
		if x+r.Width > width {
			x = 0
			y += rowHeight
			rowHeight = 0
		}

		for y+r.Height > height {
			if p.sizing == FixedSize {
				return Layout{}, NewValidationError("atlas full: %vx%v sprite does not fit into %vx%v", r.Width, r.Height, width, height)
			}
			height *= 2
		}

		l.Positions[i] = image.Pt(x, y)

		x += r.Width
		if r.Height > rowHeight {
			rowHeight = r.Height
		}
	}

	l.Width = width
	l.Height = height
	return l, nil
}

func (p *Packer) initialSize(rects []Rect) (int, int, error) {
	maxWidth := 0
	for _, r := range rects {
		if r.Width < 0 || r.Height < 0 {
			return 0, 0, NewValidationError("invalid sprite size %vx%v", r.Width, r.Height)
		}
		if r.Width > maxWidth {
			maxWidth = r.Width
		}
	}

	if p.sizing == FixedSize {
		if maxWidth > p.width {
			return 0, 0, NewValidationError("atlas full: sprite width %v exceeds canvas width %v", maxWidth, p.width)
		}
		return p.width, p.height, nil
	}

	n := len(rects)
	maxColumns := int(math.Ceil(math.Sqrt(float64(n))))

	sumWidth, sumHeight := 0, 0
	for _, r := range rects {
		sumWidth += r.Width
		sumHeight += r.Height
	}
	avgWidth := sumWidth / n
	avgHeight := sumHeight / n

	width := growPow2(2, avgWidth*maxColumns)
	// A single wide sprite can exceed the estimate.
	width = growPow2(width, maxWidth)
	height := growPow2(2, avgHeight)

	return width, height, nil
}

// growPow2 doubles v until it is at least target.
func growPow2(v, target int) int {
	for v < target {
		v *= 2
	}
	return v
}
