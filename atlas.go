package atlas

import "sync"

// Page is one fixed-size texture page of a generated atlas.
type Page struct {
	// Index is the page's position in Atlas.Pages, matching
	// Texcoord.Page.
	Index int

	// MipMaps holds the page's mip chain. Level 0 is Size x Size; each
	// subsequent level is halved.
	MipMaps []*Pixmap
}

// Atlas is the result of a generation pass: the composed pages and a
// texcoord per entry, keyed by the entries' keys.
type Atlas[K comparable] struct {
	// Size is the side length of every page at mip level 0.
	Size int

	// MipLevelCount is the length of every page's mip chain.
	MipLevelCount int

	// Pages are the composed page textures, in index order.
	Pages []Page

	// Texcoords maps each entry key to its content region, in the
	// entries' original order.
	Texcoords TexcoordMap[K]
}

// CreateAtlas packs the descriptor's entries onto pages, composes the
// page textures, generates their mip chains, and computes per-entry
// texcoords.
//
// Generation is all-or-nothing: every validation and planning error is
// detected before any pixel work, and no partial atlas is ever
// returned. The descriptor and its textures are read-only to the call.
func CreateAtlas[K comparable](desc *Descriptor[K]) (*Atlas[K], error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	maxSide := 1
	for _, e := range desc.Entries {
		maxSide = max(maxSide, e.Texture.Width(), e.Texture.Height())
	}
	padding := paddingWidth(desc.Mip, desc.Size, maxSide)

	rects := make([]Rect, len(desc.Entries))
	for i, e := range desc.Entries {
		w := e.Texture.Width() + 2*padding
		h := e.Texture.Height() + 2*padding
		if w > desc.Size || h > desc.Size {
			return nil, &EntryTooLargeError{
				Key:      e.Key,
				Width:    e.Texture.Width(),
				Height:   e.Texture.Height(),
				Padded:   max(w, h),
				PageSize: desc.Size,
			}
		}
		rects[i] = Rect{ID: i, Width: w, Height: h}
	}

	packer := desc.Packer
	if packer == nil {
		packer = NewMaxRectsPacker()
	}
	places, pageCount, err := planPages(packer, desc.Size, desc.MaxPageCount, rects)
	if err != nil {
		return nil, err
	}

	// Wrap extension is independent per entry.
	slots := make([]*Pixmap, len(desc.Entries))
	var wg sync.WaitGroup
	for i, e := range desc.Entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i] = extend(e.Texture, padding, e.Wrap)
		}()
	}
	wg.Wait()

	pages := composePages(pageCount, desc.Size, slots, places)

	levels := mipLevelCount(desc.Mip, desc.Size)
	var chains [][]*Pixmap
	if levels > 1 {
		resampler := desc.Resampler
		if resampler == nil {
			resampler = NewResampler(desc.Mip.Filter())
		}
		chains = generateMips(pages, levels, resampler)
	} else {
		chains = make([][]*Pixmap, len(pages))
		for i, page := range pages {
			chains[i] = []*Pixmap{page}
		}
	}

	out := &Atlas[K]{
		Size:          desc.Size,
		MipLevelCount: levels,
		Pages:         make([]Page, pageCount),
	}
	for i, chain := range chains {
		out.Pages[i] = Page{Index: i, MipMaps: chain}
	}
	for i, e := range desc.Entries {
		tc := texcoordFor(places[i], padding, e.Texture.Width(), e.Texture.Height(), desc.Size)
		out.Texcoords.add(e.Key, tc)
	}

	Logger().Info("atlas: generated",
		"entries", len(desc.Entries),
		"pages", pageCount,
		"mipLevels", levels,
		"padding", padding)
	return out, nil
}

// Indexed wraps plain textures into entries keyed by their position,
// for callers that identify entries by index rather than by name.
func Indexed(textures []*Pixmap, wrap WrapMode) []Entry[int] {
	entries := make([]Entry[int], len(textures))
	for i, t := range textures {
		entries[i] = Entry[int]{Key: i, Texture: t, Wrap: wrap}
	}
	return entries
}
