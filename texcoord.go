package atlas

import "iter"

// Texcoord locates an entry's content region on its page, in level-0
// pixel coordinates. Padding pixels are never included.
//
// The normalized rectangle returned by Float32 or Float64 is valid at
// every mip level: padding shrinks proportionally with each halving, so
// the same relative rectangle keeps addressing only the entry's own
// content.
type Texcoord struct {
	Page int
	MinX int
	MinY int
	MaxX int
	MaxY int

	// Size is the page side length the coordinates normalize against.
	Size int
}

// Texcoord32 is a texcoord normalized to [0, 1] using float32.
type Texcoord32 struct {
	Page           int
	U0, V0, U1, V1 float32
}

// Texcoord64 is a texcoord normalized to [0, 1] using float64.
type Texcoord64 struct {
	Page           int
	U0, V0, U1, V1 float64
}

// Float32 returns the normalized texcoord using float32.
func (t Texcoord) Float32() Texcoord32 {
	s := float32(t.Size)
	return Texcoord32{
		Page: t.Page,
		U0:   float32(t.MinX) / s,
		V0:   float32(t.MinY) / s,
		U1:   float32(t.MaxX) / s,
		V1:   float32(t.MaxY) / s,
	}
}

// Float64 returns the normalized texcoord using float64.
func (t Texcoord) Float64() Texcoord64 {
	s := float64(t.Size)
	return Texcoord64{
		Page: t.Page,
		U0:   float64(t.MinX) / s,
		V0:   float64(t.MinY) / s,
		U1:   float64(t.MaxX) / s,
		V1:   float64(t.MaxY) / s,
	}
}

// texcoordFor converts a placement, padding width and original extent
// into the entry's content rectangle on the page.
func texcoordFor(pl placement, padding, width, height, size int) Texcoord {
	return Texcoord{
		Page: pl.page,
		MinX: pl.x + padding,
		MinY: pl.y + padding,
		MaxX: pl.x + padding + width,
		MaxY: pl.y + padding + height,
		Size: size,
	}
}

// TexcoordMap maps entry keys to texcoords, preserving the insertion
// order of the descriptor's entries.
type TexcoordMap[K comparable] struct {
	keys   []K
	index  map[K]int
	coords []Texcoord
}

// add appends a key/texcoord pair. Keys were deduplicated during
// validation, so collisions cannot occur here.
func (m *TexcoordMap[K]) add(key K, tc Texcoord) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.coords = append(m.coords, tc)
}

// Get returns the texcoord stored for key.
func (m *TexcoordMap[K]) Get(key K) (Texcoord, bool) {
	i, ok := m.index[key]
	if !ok {
		return Texcoord{}, false
	}
	return m.coords[i], true
}

// Len returns the number of stored texcoords.
func (m *TexcoordMap[K]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *TexcoordMap[K]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// At returns the i-th key/texcoord pair in insertion order.
func (m *TexcoordMap[K]) At(i int) (K, Texcoord) {
	return m.keys[i], m.coords[i]
}

// All iterates key/texcoord pairs in insertion order.
func (m *TexcoordMap[K]) All() iter.Seq2[K, Texcoord] {
	return func(yield func(K, Texcoord) bool) {
		for i, k := range m.keys {
			if !yield(k, m.coords[i]) {
				return
			}
		}
	}
}
