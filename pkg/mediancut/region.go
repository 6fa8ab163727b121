package mediancut

import(
	"fmt"
	"math"

	"github.com/abworrall/lightprobe/pkg/emath"
)

// A Rect is a half-open pixel rectangle [SX,EX) x [SY,EY).
type Rect struct {
	SX, SY, EX, EY int
}

func (r Rect)Dx() int      { return r.EX - r.SX }
func (r Rect)Dy() int      { return r.EY - r.SY }
func (r Rect)Empty() bool  { return r.Dx() <= 0 || r.Dy() <= 0 }

func (r Rect)Area() int {
	if r.Empty() { return 0 }
	return r.Dx() * r.Dy()
}

func (r Rect)String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.SX, r.EX, r.SY, r.EY)
}

// A Region is a rectangle plus the weighted energy it contains. The
// energy comes from table queries as regions get split; it is never
// re-summed from pixels.
type Region struct {
	Rect
	Energy emath.Vec3
}

func (r Region)String() string {
	return fmt.Sprintf("Region%s %s", r.Rect, r.Energy)
}

// Axis picks the direction of the sweep when bisecting a region.
type Axis int

const(
	// AlongRows sweeps down the rows; the cut is horizontal, and the
	// first child spans the full width but only the leading rows.
	AlongRows Axis = iota

	// AlongColumns sweeps across the columns; the cut is vertical,
	// and the first child spans the full height.
	AlongColumns
)

func (a Axis)String() string {
	switch a {
	case AlongRows:    return "rows"
	case AlongColumns: return "columns"
	default:           return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Relative slack allowed when checking whether a sweep has reached half
// the region's energy, so an exact half that picked up rounding error
// on the way still counts.
const splitTolerance = 1e-9

// Split finds the smallest leading sub-rectangle of r, along the given
// axis, holding at least half of r's energy (as luminance). The
// boundary row/column is part of the result. If the sweep runs off
// the end, the result is all of r.
//
// Each step is a single table query, so the cost is bounded by r's
// extent along the axis rather than its area.
func (t *Table)Split(r Region, axis Axis) Region {
	target := t.Sum(r.Rect).Luminance() / 2
	threshold := target - splitTolerance*math.Abs(target)

	start, end := r.SY, r.EY
	if axis == AlongColumns {
		start, end = r.SX, r.EX
	}
	if end <= start {
		return r
	}

	child := r.Rect
	energy := emath.Vec3{}
	for u:=start; u<end; u++ {
		if axis == AlongRows {
			child.EY = u + 1
		} else {
			child.EX = u + 1
		}
		energy = t.Sum(child)
		if energy.Luminance() >= threshold {
			break
		}
	}

	return Region{Rect: child, Energy: energy}
}

// ChooseAxis picks the sweep axis that keeps r closest to square in
// solid angle: the pixel height is scaled by the latitude weight at
// the region's vertical midpoint before comparing it to the width.
func (t *Table)ChooseAxis(r Rect) Axis {
	hei := float64(r.Dy())
	if hei * LatitudeWeight(float64(r.SY) + hei/2, t.Height) > float64(r.Dx()) {
		return AlongRows
	}
	return AlongColumns
}

// Bisect splits r into two children along the axis ChooseAxis picks.
// The second child is the rest of r, with its energy from its own table
// query. When the first child swallows all of r, the second comes back
// as the zero Region (empty Rect).
func (t *Table)Bisect(r Region) (Region, Region) {
	axis := t.ChooseAxis(r.Rect)
	first := t.Split(r, axis)

	rest := r.Rect
	if axis == AlongRows {
		rest.SY = first.EY
	} else {
		rest.SX = first.EX
	}
	if rest.Empty() {
		return first, Region{}
	}

	return first, Region{Rect: rest, Energy: t.Sum(rest)}
}
