package atlas

import "testing"

func TestPaddingWidth(t *testing.T) {
	tests := []struct {
		name    string
		opt     MipOption
		size    int
		maxSide int
		want    int
	}{
		{"no mip", NoMip(), 1024, 512, 0},
		{"no mip explicit", NoMipWithPadding(3), 1024, 512, 3},
		{"mip explicit", MipWithPadding(FilterBox, 5), 1024, 512, 5},
		{"mip explicit zero", MipWithPadding(FilterLanczos3, 0), 1024, 512, 0},

		// Full chain: support << ceil(log2(maxSide)).
		{"mip box 4px entries", Mip(FilterBox), 64, 4, 1 << 2},
		{"mip box 5px entries", Mip(FilterBox), 64, 5, 1 << 3},
		{"mip lanczos3 4px entries", Mip(FilterLanczos3), 64, 4, 3 << 2},
		{"mip depth capped at page", Mip(FilterBox), 16, 16, 1 << 4},
		{"mip 1px entries", Mip(FilterBox), 64, 1, 1},

		// Block chain: support << log2(size/block).
		{"block box", MipWithBlock(FilterBox, 32), 2048, 512, 1 << 6},
		{"block lanczos3", MipWithBlock(FilterLanczos3, 8), 32, 4, 3 << 2},
		{"block equals size", MipWithBlock(FilterBox, 64), 64, 16, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paddingWidth(tt.opt, tt.size, tt.maxSide); got != tt.want {
				t.Errorf("paddingWidth = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMipLevelCount(t *testing.T) {
	tests := []struct {
		name string
		opt  MipOption
		size int
		want int
	}{
		{"no mip", NoMip(), 256, 1},
		{"no mip with padding", NoMipWithPadding(2), 256, 1},
		{"full 256", Mip(FilterBox), 256, 9},   // 256..1
		{"full 1", Mip(FilterBox), 1, 1},       // already 1x1
		{"block 2048/32", MipWithBlock(FilterLanczos3, 32), 2048, 7}, // 2048..32
		{"block equals size", MipWithBlock(FilterBox, 64), 64, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mipLevelCount(tt.opt, tt.size); got != tt.want {
				t.Errorf("mipLevelCount = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestPaddingSurvivesChain verifies the controlling constraint: padding
// halved once per generated level never drops below the filter's
// support radius while the chain is still being generated.
func TestPaddingSurvivesChain(t *testing.T) {
	opts := []MipOption{
		MipWithBlock(FilterBox, 32),
		MipWithBlock(FilterLanczos3, 32),
		MipWithBlock(FilterCubic, 8),
	}
	const size = 2048
	for _, opt := range opts {
		pad := paddingWidth(opt, size, size/4)
		depth := mipLevelCount(opt, size) - 1
		margin := pad >> depth
		if margin < opt.Filter().supportRadius() {
			t.Errorf("%v block %d: margin %d at depth %d below support %d",
				opt.Filter(), opt.BlockSize(), margin, depth, opt.Filter().supportRadius())
		}
	}
}
