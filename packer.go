package atlas

import "github.com/ForeverZer0/rectpack"

// Rect is a rectangle submitted for placement, identified by the
// submitting entry's index.
type Rect struct {
	ID     int
	Width  int
	Height int
}

// PlacedRect locates a packed rectangle on a single page.
type PlacedRect struct {
	ID     int
	X      int
	Y      int
	Width  int
	Height int
}

// Packer places rectangles onto one square page. The planner drives it
// across an increasing page count, so an implementation only ever
// reasons about a single size x size page at a time.
//
// PackPage returns the placements that fit and the rectangles that did
// not. Placed rectangles must not overlap and must lie entirely within
// the page. Implementations must be deterministic for identical input.
type Packer interface {
	PackPage(size int, rects []Rect) (placed []PlacedRect, rest []Rect)
}

// maxRectsPacker is the default Packer, wrapping
// github.com/ForeverZer0/rectpack with the MaxRects best-short-side-fit
// heuristic and area-descending presorting.
type maxRectsPacker struct{}

// NewMaxRectsPacker returns the default rectangle packer.
func NewMaxRectsPacker() Packer {
	return maxRectsPacker{}
}

func (maxRectsPacker) PackPage(size int, rects []Rect) ([]PlacedRect, []Rect) {
	p, _ := rectpack.NewPacker(size, size, rectpack.MaxRectsBSSF)
	p.Sorter(rectpack.SortArea, true)
	for _, r := range rects {
		p.InsertSize(r.ID, r.Width, r.Height)
	}
	p.Pack()

	packed := p.Rects()
	placed := make([]PlacedRect, 0, len(packed))
	for _, r := range packed {
		placed = append(placed, PlacedRect{
			ID:     r.ID,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}

	var rest []Rect
	for _, sz := range p.Unpacked() {
		rest = append(rest, Rect{ID: sz.ID, Width: sz.Width, Height: sz.Height})
	}
	return placed, rest
}
