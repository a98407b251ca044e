package atlas

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as alpha-premultiplied RGBA, 4 bytes per pixel, in
// row-major order. The zero value of every pixel is fully transparent
// black, which is also the background color of composed atlas pages.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGBA sets a single pixel from premultiplied RGBA components.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// RGBAAt returns the premultiplied color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c color.RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// Image returns an image.RGBA view sharing the pixmap's backing memory.
// Mutating the view mutates the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}

	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// pixelAt returns the byte offset of pixel (x, y). Bounds are the
// caller's responsibility.
func (p *Pixmap) pixelAt(x, y int) int {
	return (y*p.width + x) * 4
}

// copyPixel copies one pixel from src (sx, sy) to p at (dx, dy).
// Bounds are the caller's responsibility.
func (p *Pixmap) copyPixel(dx, dy int, src *Pixmap, sx, sy int) {
	di := p.pixelAt(dx, dy)
	si := src.pixelAt(sx, sy)
	copy(p.data[di:di+4], src.data[si:si+4])
}

// blit copies the whole of src into p with its top-left corner at
// (x, y). The source must lie entirely within p's bounds.
func (p *Pixmap) blit(src *Pixmap, x, y int) {
	rowLen := src.width * 4
	for sy := 0; sy < src.height; sy++ {
		di := p.pixelAt(x, y+sy)
		si := src.pixelAt(0, sy)
		copy(p.data[di:di+rowLen], src.data[si:si+rowLen])
	}
}
