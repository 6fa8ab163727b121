package probe

import(
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// An Approximation paints every leaf region with its average radiance,
// so it can be compared by eye against the source map. Rows that
// weren't sampled (hemisphere mode) are black.
type Approximation struct {
	Width, Height int
	Pixels        []hdrcolor.RGB
}

// Implement image.Image
func (a Approximation)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (a Approximation)Bounds() image.Rectangle       { return image.Rect(0, 0, a.Width, a.Height) }
func (a Approximation)At(x, y int) color.Color       { return a.HDRAt(x, y) }

// Implement hdr.Image
func (a Approximation)HDRAt(x, y int) hdrcolor.Color { return a.Pixels[y*a.Width + x] }
func (a Approximation)Size() int                     { return a.Width * a.Height }

// NewApproximation spreads each leaf's energy back over its pixels,
// undoing the latitude weighting, so the weighted energy of any leaf
// is the same in the approximation as in the source.
func NewApproximation(res *Result) Approximation {
	w, h := res.Width, res.Height
	a := Approximation{
		Width:  w,
		Height: h,
		Pixels: make([]hdrcolor.RGB, w*h),
	}

	for _, leaf := range res.Leaves {
		weightedArea := 0.0
		for y:=leaf.SY; y<leaf.EY; y++ {
			weightedArea += mediancut.LatitudeWeight(float64(y) + 0.5, h) * float64(leaf.Dx())
		}
		if weightedArea <= 0 {
			continue
		}

		avg := leaf.Energy.Scale(1.0 / weightedArea)
		for y:=leaf.SY; y<leaf.EY; y++ {
			for x:=leaf.SX; x<leaf.EX; x++ {
				a.Pixels[y*w + x] = hdrcolor.RGB{R: avg[0], G: avg[1], B: avg[2]}
			}
		}
	}

	return a
}
