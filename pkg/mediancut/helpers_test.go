package mediancut

import(
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/abworrall/lightprobe/pkg/emath"
)

const relTol = 1e-6

// uniformImage is a w*h RGB image with every channel set to v.
func uniformImage(t *testing.T, w, h int, v float32) Image {
	t.Helper()
	pix := make([]float32, w*h*3)
	for i := range pix {
		pix[i] = v
	}
	img, err := NewImage(pix, w, h)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

// randomImage is a w*h image with `channels` channels of values in [lo,hi).
func randomImage(t *testing.T, seed int64, w, h, channels int, lo, hi float32) Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pix := make([]float32, w*h*channels)
	for i := range pix {
		pix[i] = lo + rng.Float32()*(hi-lo)
	}
	img, err := NewImage(pix, w, h)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

// bruteSum adds up the weighted energy inside r pixel by pixel, ignoring
// rows outside [rowOffset, height).
func bruteSum(img Image, rowOffset int, r Rect) emath.Vec3 {
	var tot emath.Vec3
	for y := max(r.SY, rowOffset); y < min(r.EY, img.Height); y++ {
		w := LatitudeWeight(float64(y)+0.5, img.Height)
		for x := max(r.SX, 0); x < min(r.EX, img.Width); x++ {
			tot = tot.Add(img.At(x, y).Scale(w))
		}
	}
	return tot
}

func vecClose(a, b emath.Vec3) bool {
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], 1e-9, relTol) {
			return false
		}
	}
	return true
}

func mustTable(t *testing.T, img Image, hemisphere bool) *Table {
	t.Helper()
	tbl, err := NewTable(img, hemisphere)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}
