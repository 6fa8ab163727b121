// Package mediancut implements median-cut light probe sampling
// (Debevec 2006) over equirectangular HDR environment maps.
//
// The image is split recursively into regions of roughly equal
// latitude-weighted energy, and each final region becomes a single
// light whose color is that region's share of the total. All region
// energies come from a summed-area table, so each split costs time
// proportional to the region's extent, not its area.
package mediancut

// Options control a sampling run.
type Options struct {
	Iterations int  // number of bisection rounds; up to 2^Iterations lights
	Hemisphere bool // only sample the lower half of the map (rows height/2 and down)
}

// Sample builds the summed-area table for img, partitions it, and
// returns the lights. Same image and options, same lights.
func Sample(img Image, opts Options) ([]Light, error) {
	t, err := NewTable(img, opts.Hemisphere)
	if err != nil {
		return nil, err
	}

	leaves, err := t.Partition(opts.Iterations)
	if err != nil {
		return nil, err
	}

	return t.Finalize(leaves), nil
}
