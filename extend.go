package atlas

// extend returns a (w+2p)x(h+2p) buffer with src centered and the
// border synthesized according to the wrap mode. For WrapSingle, or
// when padding is zero, src is returned unchanged; the caller owns the
// distinction (compose fills Single slots with clamped copies).
func extend(src *Pixmap, padding int, wrap WrapMode) *Pixmap {
	if padding == 0 || wrap == WrapSingle {
		return src
	}

	w := src.Width()
	h := src.Height()
	dst := NewPixmap(w+2*padding, h+2*padding)

	for y := 0; y < dst.Height(); y++ {
		sy := wrapIndex(y-padding, h, wrap)
		for x := 0; x < dst.Width(); x++ {
			sx := wrapIndex(x-padding, w, wrap)
			dst.copyPixel(x, y, src, sx, sy)
		}
	}
	return dst
}

// wrapIndex maps a coordinate relative to the source origin (possibly
// negative or beyond n) to a source index in [0, n).
func wrapIndex(v, n int, wrap WrapMode) int {
	switch wrap {
	case WrapRepeat:
		return floorMod(v, n)
	case WrapMirror:
		// Period 2n: even tiles keep the source orientation, odd
		// tiles reflect it, folding indefinitely for wide borders.
		i := floorMod(v, n)
		if floorDiv(v, n)&1 != 0 {
			return n - 1 - i
		}
		return i
	default: // WrapClamp
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
}

// floorDiv returns the quotient of v/n rounded toward negative infinity.
func floorDiv(v, n int) int {
	q := v / n
	if v%n != 0 && (v < 0) != (n < 0) {
		q--
	}
	return q
}

// floorMod returns v mod n with the result in [0, n).
func floorMod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
