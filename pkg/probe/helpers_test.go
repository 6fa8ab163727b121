package probe

import(
	"math"
	"testing"

	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// testEnvMap is a dim sky gradient with a bright sun at (sunX,sunY).
func testEnvMap(t *testing.T, w, h, sunX, sunY int) EnvMap {
	t.Helper()
	pix := make([]float32, 0, w*h*3)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			v := float32(0.1 + 0.4*float64(y)/float64(h))
			if x == sunX && y == sunY {
				v = 50
			}
			pix = append(pix, v, v*0.9, v*0.8)
		}
	}
	img, err := mediancut.NewImage(pix, w, h)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return EnvMap{LoadFilename: "/some/where/sky.hdr", Image: img}
}

func relClose(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}
