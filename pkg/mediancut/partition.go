package mediancut

import "fmt"

// MaxIterations bounds the number of rounds; 2^24 regions is already
// far more lights than anyone can render.
const MaxIterations = 24

// Partition runs `iterations` rounds of bisection over the retained
// image and returns the leaf regions, at most 2^iterations of them.
//
// Regions live in a fixed arena. Each round walks the occupied slots
// from the back, writing the children of slot i into slots 2i and
// 2i+1, so no parent is overwritten before it has been split. A region
// whose split is degenerate leaves slot 2i+1 empty and is carried
// forward as-is; the empty slots are squeezed out at the end of each
// round, keeping the order. No region is smaller than a pixel, so the
// arena never needs more than min(2^iterations, 2*pixels) slots.
func (t *Table)Partition(iterations int) ([]Region, error) {
	if iterations < 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("%d iterations, want [0,%d]: %w", iterations, MaxIterations, ErrInvalidInput)
	}

	size := 1 << iterations
	if pixels := 2 * t.Width * t.Rows; pixels < size {
		size = pixels
	}
	arena := make([]Region, size)
	bounds := t.Bounds()
	arena[0] = Region{Rect: bounds, Energy: t.Sum(bounds)}
	n := 1

	for depth:=0; depth<iterations; depth++ {
		for i:=n-1; i>=0; i-- {
			arena[2*i], arena[2*i+1] = t.Bisect(arena[i])
		}

		n = compact(arena[:2*n])
	}

	leaves := make([]Region, n)
	copy(leaves, arena[:n])
	return leaves, nil
}

// compact moves the non-empty regions to the front, in order, and
// returns how many there are.
func compact(regions []Region) int {
	n := 0
	for _, r := range regions {
		if !r.Empty() {
			regions[n] = r
			n++
		}
	}
	return n
}
