package atlas

import (
	"math"

	"golang.org/x/image/draw"
)

// Filter names the resampling kernel used for mip generation.
type Filter int

const (
	// FilterNearest picks the nearest source pixel.
	FilterNearest Filter = iota

	// FilterBox averages the covered source pixels.
	FilterBox

	// FilterLinear interpolates bilinearly (triangle kernel).
	FilterLinear

	// FilterCubic interpolates with the Catmull-Rom cubic kernel.
	FilterCubic

	// FilterGaussian blurs with a truncated Gaussian kernel.
	FilterGaussian

	// FilterLanczos3 uses the Lanczos kernel with radius 3.
	FilterLanczos3
)

// String returns the name of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBox:
		return "box"
	case FilterLinear:
		return "linear"
	case FilterCubic:
		return "cubic"
	case FilterGaussian:
		return "gaussian"
	case FilterLanczos3:
		return "lanczos3"
	default:
		return "unknown"
	}
}

// supportRadius returns the kernel's support radius in whole pixels.
// Padding widths are derived from this, so it rounds up.
func (f Filter) supportRadius() int {
	switch f {
	case FilterCubic, FilterGaussian:
		return 2
	case FilterLanczos3:
		return 3
	default:
		return 1
	}
}

// sinc is the normalized sinc function sin(pi*t) / (pi*t).
func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	t *= math.Pi
	return math.Sin(t) / t
}

// Kernels not predefined by x/image/draw.
var (
	boxKernel = &draw.Kernel{
		Support: 0.5,
		At: func(t float64) float64 {
			if t < 0.5 {
				return 1
			}
			return 0
		},
	}
	gaussianKernel = &draw.Kernel{
		Support: 2,
		At: func(t float64) float64 {
			return math.Exp(-2 * t * t)
		},
	}
	lanczos3Kernel = &draw.Kernel{
		Support: 3,
		At: func(t float64) float64 {
			if t >= 3 {
				return 0
			}
			return sinc(t) * sinc(t/3)
		},
	}
)

// scaler returns the x/image/draw scaler implementing the filter.
func (f Filter) scaler() draw.Scaler {
	switch f {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterBox:
		return boxKernel
	case FilterLinear:
		return draw.BiLinear
	case FilterCubic:
		return draw.CatmullRom
	case FilterGaussian:
		return gaussianKernel
	case FilterLanczos3:
		return lanczos3Kernel
	default:
		return draw.NearestNeighbor
	}
}

// Resampler performs one mip-reduction step: given a source buffer and
// a target size (half the source, floored at 1), it returns the
// downsampled buffer. Implementations must not retain src.
type Resampler interface {
	Downsample(src *Pixmap, width, height int) *Pixmap
}

// kernelResampler is the default Resampler, built on x/image/draw.
type kernelResampler struct {
	scaler draw.Scaler
}

// NewResampler returns the default resampler for the given filter.
func NewResampler(f Filter) Resampler {
	return &kernelResampler{scaler: f.scaler()}
}

func (r *kernelResampler) Downsample(src *Pixmap, width, height int) *Pixmap {
	dst := NewPixmap(width, height)
	view := dst.Image()
	r.scaler.Scale(view, view.Rect, src.Image(), src.Bounds(), draw.Src, nil)
	return dst
}
