package atlas

// placement records where one entry's padded rectangle landed.
type placement struct {
	page int
	x    int
	y    int
	w    int // padded width
	h    int // padded height
}

// planPages searches for a full placement of rects over an increasing
// page count, one page at a time: rectangles that do not fit on a page
// are offered to the next. The search stops at the first page count
// that places everything, so a successful plan never changes when
// maxPages grows.
//
// rects must use IDs 0..len(rects)-1. The returned slice is indexed by
// ID. pageCount is the number of pages actually used.
func planPages(p Packer, size, maxPages int, rects []Rect) (places []placement, pageCount int, err error) {
	places = make([]placement, len(rects))
	pending := rects

	for page := 0; page < maxPages && len(pending) > 0; page++ {
		placed, rest := p.PackPage(size, pending)
		Logger().Debug("atlas: packed page",
			"page", page, "placed", len(placed), "pending", len(rest))

		for _, pr := range placed {
			places[pr.ID] = placement{page: page, x: pr.X, y: pr.Y, w: pr.Width, h: pr.Height}
		}
		pageCount = page + 1

		// A page that places nothing cannot make progress; the
		// remaining rectangles will never fit.
		if len(placed) == 0 {
			pending = rest
			break
		}
		pending = rest
	}

	if len(pending) > 0 {
		return nil, 0, &PagesExhaustedError{MaxPageCount: maxPages, Unplaced: len(pending)}
	}
	return places, pageCount, nil
}
