package dome

import(
	"github.com/abworrall/lightprobe/pkg/emath"
	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// A Normalizer maps a light's pixel position onto normalized angular
// coordinates rx, ry in [0,1]: rx across the map (azimuth), ry down it
// (polar angle).
type Normalizer interface {
	Normalize(l mediancut.Light) (rx, ry float64)
}

// A PixelNormalizer applies an affine transform to the light's
// representative pixel.
type PixelNormalizer struct {
	emath.Aff3
}

// NewPixelNormalizer divides by the map dimensions (rx = x/width,
// ry = y/height). With `centers` set it measures from pixel centres
// instead, i.e. (x+0.5)/width.
func NewPixelNormalizer(width, height int, centers bool) PixelNormalizer {
	m := emath.Identity().Scale(1.0/float64(width), 1.0/float64(height))
	if centers {
		m = m.Translate(0.5, 0.5)
	}
	return PixelNormalizer{m}
}

func (pn PixelNormalizer)Normalize(l mediancut.Light) (float64, float64) {
	return pn.Apply(float64(l.X), float64(l.Y))
}

// A NormalizerFunc lets a plain function act as a Normalizer.
type NormalizerFunc func(l mediancut.Light) (float64, float64)

func (f NormalizerFunc)Normalize(l mediancut.Light) (float64, float64) { return f(l) }
