package atlas

import "sync"

// generateMipChain builds a page's mip chain. Level 0 is the composed
// page buffer itself; level k+1 is the resampled half of level k.
// Padding pixels participate in resampling exactly like content pixels,
// which is why the padding width was sized to survive every halving.
func generateMipChain(page *Pixmap, levels int, r Resampler) []*Pixmap {
	chain := make([]*Pixmap, levels)
	chain[0] = page
	for k := 1; k < levels; k++ {
		prev := chain[k-1]
		w := max(1, prev.Width()/2)
		h := max(1, prev.Height()/2)
		chain[k] = r.Downsample(prev, w, h)
	}
	return chain
}

// generateMips builds the mip chain of every page. Chains depend only
// on their own page's level-0 buffer, so pages run concurrently.
func generateMips(pages []*Pixmap, levels int, r Resampler) [][]*Pixmap {
	chains := make([][]*Pixmap, len(pages))

	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chains[i] = generateMipChain(page, levels, r)
		}()
	}
	wg.Wait()
	return chains
}
