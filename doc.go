// Package atlas builds texture atlases: it packs independent source
// images onto one or more fixed-size square pages, generates a mip map
// chain for every page, and reports normalized texture coordinates that
// let a renderer sample each original image from the shared page texture
// without bleed from neighboring entries.
//
// # Quick Start
//
//	import "github.com/gogpu/atlas"
//
//	icon := atlas.NewPixmap(64, 64)
//	// ... fill icon ...
//
//	result, err := atlas.CreateAtlas(&atlas.Descriptor[string]{
//	    MaxPageCount: 8,
//	    Size:         1024,
//	    Mip:          atlas.MipWithBlock(atlas.FilterLanczos3, 32),
//	    Entries: []atlas.Entry[string]{
//	        {Key: "icon", Texture: icon, Wrap: atlas.WrapClamp},
//	    },
//	})
//	if err != nil {
//	    // handle
//	}
//
//	tc, _ := result.Texcoords.Get("icon")
//	level0 := result.Pages[tc.Page].MipMaps[0]
//	uv := tc.Float32() // normalized, valid at every mip level
//
// # Mip Maps and Padding
//
// When a page is downsampled, texels near an entry's border blend with
// whatever is adjacent on the page. The generator therefore surrounds
// every entry with a padding border before packing, sized so that the
// border still covers the resampling filter's support radius at the
// deepest mip level, and filled according to the entry's WrapMode
// (clamp, repeat, or mirror addressing into the source). Reported
// texture coordinates never include padding pixels.
//
// # Collaborators
//
// Rectangle placement and resampling are pluggable. The default Packer
// uses the MaxRects best-short-side-fit heuristic from
// github.com/ForeverZer0/rectpack; the default Resampler scales with
// golang.org/x/image/draw kernels. Custom implementations can be
// injected through the Descriptor.
//
// # Concurrency
//
// Generation is a bounded synchronous computation. Entries are
// wrap-extended and page mip chains are generated in parallel
// internally; the returned Atlas is immutable and safe to share.
//
// By default the package produces no log output. Call [SetLogger] to
// observe planner attempts and generation results.
package atlas
