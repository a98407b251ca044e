package atlas

// composePages allocates pageCount size x size buffers, zero-initialized
// to transparent black, and blits every slot buffer at its placement.
//
// slots[i] is entry i's wrap-extended buffer and normally matches its
// placement extent exactly. A smaller buffer (a WrapSingle entry, left
// unextended) is centered in its slot and the surrounding ring is
// filled with edge-clamped copies so no page pixel is left undefined.
//
// Placements are disjoint by the planner's invariant, so composition
// order does not matter.
func composePages(pageCount, size int, slots []*Pixmap, places []placement) []*Pixmap {
	pages := make([]*Pixmap, pageCount)
	for i := range pages {
		pages[i] = NewPixmap(size, size)
	}

	for i, src := range slots {
		pl := places[i]
		page := pages[pl.page]
		if src.Width() == pl.w && src.Height() == pl.h {
			page.blit(src, pl.x, pl.y)
			continue
		}
		blitClamped(page, src, pl)
	}
	return pages
}

// blitClamped writes src into the placement slot on page, clamping
// coordinates outside the source to its nearest edge pixel.
func blitClamped(page, src *Pixmap, pl placement) {
	padX := (pl.w - src.Width()) / 2
	padY := (pl.h - src.Height()) / 2
	for y := 0; y < pl.h; y++ {
		sy := wrapIndex(y-padY, src.Height(), WrapClamp)
		for x := 0; x < pl.w; x++ {
			sx := wrapIndex(x-padX, src.Width(), WrapClamp)
			page.copyPixel(pl.x+x, pl.y+y, src, sx, sy)
		}
	}
}
