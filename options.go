package atlas

import "math/bits"

// WrapMode selects how an entry's padding border is synthesized before
// packing. The border keeps the entry bleed-free while the page is
// downsampled for mip maps.
type WrapMode int

const (
	// WrapClamp copies the nearest edge pixel into the border.
	WrapClamp WrapMode = iota

	// WrapRepeat wraps around into the source, as if it tiled infinitely.
	WrapRepeat

	// WrapMirror reflects the source across its border, folding back
	// and forth when the border is wider than the source.
	WrapMirror

	// WrapSingle opts the entry out of wrap extension entirely. Its
	// padding slot is filled with edge-clamped copies at compose time
	// so that no page pixel is left undefined.
	WrapSingle
)

// String returns the name of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "clamp"
	case WrapRepeat:
		return "repeat"
	case WrapMirror:
		return "mirror"
	case WrapSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Entry describes one source image submitted for packing. The texture
// is borrowed read-only; its pixels are never mutated.
type Entry[K comparable] struct {
	// Key identifies the entry in the resulting texcoord table.
	// Keys must be unique across the descriptor.
	Key K

	// Texture is the source pixel buffer.
	Texture *Pixmap

	// Wrap selects the padding fill policy for this entry.
	Wrap WrapMode
}

// mipMode discriminates the MipOption variants.
type mipMode int

const (
	mipNone mipMode = iota
	mipFull
	mipBlock
)

// MipOption selects the mip map strategy for the whole atlas. The zero
// value is NoMip. Construct values with [NoMip], [NoMipWithPadding],
// [Mip], [MipWithPadding], or [MipWithBlock].
type MipOption struct {
	mode        mipMode
	filter      Filter
	blockSize   int
	padding     int
	explicitPad bool
}

// NoMip disables mip generation. Pages have a single level and entries
// are packed without padding.
func NoMip() MipOption {
	return MipOption{mode: mipNone}
}

// NoMipWithPadding disables mip generation but still surrounds every
// entry with a wrap-extended border of the given width. Useful when the
// consumer samples with linear filtering near entry edges.
func NoMipWithPadding(padding int) MipOption {
	return MipOption{mode: mipNone, padding: max(0, padding), explicitPad: true}
}

// Mip generates a full mip chain per page, halving down to 1x1, using
// the given resampling filter. Padding is sized automatically from the
// filter's support radius and the deepest level at which any entry's
// content still resolves.
func Mip(filter Filter) MipOption {
	return MipOption{mode: mipFull, filter: filter}
}

// MipWithPadding is like [Mip] but with a caller-supplied padding width
// instead of the automatically derived one. Borders narrower than the
// automatic width trade memory for bleed at deep mip levels.
func MipWithPadding(filter Filter, padding int) MipOption {
	return MipOption{mode: mipFull, filter: filter, padding: max(0, padding), explicitPad: true}
}

// MipWithBlock generates a partial mip chain per page, stopping once a
// level's side length reaches blockSize. blockSize must be a power of
// two no larger than the page size.
func MipWithBlock(filter Filter, blockSize int) MipOption {
	return MipOption{mode: mipBlock, filter: filter, blockSize: blockSize}
}

// Enabled reports whether the option generates mip levels beyond level 0.
func (m MipOption) Enabled() bool {
	return m.mode != mipNone
}

// Filter returns the resampling filter. Meaningful only when Enabled.
func (m MipOption) Filter() Filter {
	return m.filter
}

// BlockSize returns the chain cutoff side length for the block variant,
// or zero for other variants.
func (m MipOption) BlockSize() int {
	return m.blockSize
}

// Descriptor configures a single atlas generation pass.
type Descriptor[K comparable] struct {
	// MaxPageCount is the upper bound on pages attempted. Exceeding it
	// fails generation with PagesExhaustedError.
	MaxPageCount int

	// Size is the side length in pixels of every page. Must be a power
	// of two when mip generation is enabled.
	Size int

	// Mip selects the mip map strategy.
	Mip MipOption

	// Entries are the source images, in the order their texcoords are
	// reported.
	Entries []Entry[K]

	// Packer places padded rectangles onto pages. Nil selects the
	// default MaxRects packer.
	Packer Packer

	// Resampler performs one mip-reduction step. Nil selects the
	// default kernel resampler for Mip.Filter.
	Resampler Resampler
}

// Validate checks the descriptor for degenerate configuration.
// All violations are detected before any pixel work begins.
func (d *Descriptor[K]) Validate() error {
	if d.MaxPageCount < 1 {
		return ErrZeroMaxPageCount
	}
	if d.Size < 1 {
		return &InvalidSizeError{Size: d.Size, Reason: "must be positive"}
	}
	if d.Mip.Enabled() && !isPow2(d.Size) {
		return &InvalidSizeError{Size: d.Size, Reason: "must be a power of two for mip generation"}
	}
	if d.Mip.mode == mipBlock {
		block := d.Mip.blockSize
		switch {
		case block < 1:
			return &InvalidBlockSizeError{BlockSize: block, Reason: "must be positive"}
		case !isPow2(block):
			return &InvalidBlockSizeError{BlockSize: block, Reason: "must be a power of two"}
		case block > d.Size:
			return &InvalidBlockSizeError{BlockSize: block, Reason: "must not exceed page size"}
		}
	}
	if len(d.Entries) == 0 {
		return ErrNoEntries
	}

	seen := make(map[K]struct{}, len(d.Entries))
	for _, e := range d.Entries {
		if e.Texture == nil {
			return &InvalidEntryError{Key: e.Key, Reason: "nil texture"}
		}
		if e.Texture.Width() < 1 || e.Texture.Height() < 1 {
			return &InvalidEntryError{Key: e.Key, Reason: "empty texture"}
		}
		if _, dup := seen[e.Key]; dup {
			return &DuplicateKeyError{Key: e.Key}
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

// isPow2 reports whether n is a positive power of two.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// log2 returns the base-2 logarithm of a power of two.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// ceilLog2 returns the smallest k with 1<<k >= n, for n >= 1.
func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}
