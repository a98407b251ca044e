package atlas

// paddingWidth computes the border width in pixels added on every side
// of every entry before packing.
//
// The controlling constraint: at mip level k the remaining true-padding
// margin around an entry is padding>>k, which must cover the filter's
// support radius for every level at which the entry's content still
// resolves. The border therefore starts at support<<depth, where depth
// is the number of halvings the border must survive.
//
//   - NoMip: zero (no downsampling, no bleed risk), unless an explicit
//     width was requested.
//   - Mip: depth is ceil(log2(longest entry side)), capped at the page
//     depth log2(size). Beyond that level the entry itself is sub-pixel
//     and cannot be sampled without mixing regardless of padding.
//   - MipWithBlock: depth is log2(size/blockSize), the number of
//     halvings the chain actually performs.
//
// maxEntrySide is the longest side of any entry in the descriptor.
func paddingWidth(opt MipOption, size, maxEntrySide int) int {
	if opt.explicitPad {
		return opt.padding
	}
	switch opt.mode {
	case mipFull:
		depth := ceilLog2(maxEntrySide)
		if pageDepth := log2(size); depth > pageDepth {
			depth = pageDepth
		}
		return opt.filter.supportRadius() << depth
	case mipBlock:
		depth := log2(size) - log2(opt.blockSize)
		return opt.filter.supportRadius() << depth
	default:
		return 0
	}
}

// mipLevelCount returns the length of each page's mip chain.
func mipLevelCount(opt MipOption, size int) int {
	switch opt.mode {
	case mipFull:
		return log2(size) + 1 // down to 1x1
	case mipBlock:
		return log2(size) - log2(opt.blockSize) + 1 // down to blockSize
	default:
		return 1
	}
}
