package mediancut

import "math"

// LatitudeWeight is the solid-angle compensation for row coordinate y
// of an equirectangular map that is `height` pixels tall: zero at the
// poles, one at the equator.
//
// The table builder samples it at pixel centres (y+0.5); the axis
// choice samples it at a region's vertical midpoint. Both go through
// here.
func LatitudeWeight(y float64, height int) float64 {
	return math.Sin(math.Pi * y / float64(height))
}
