package mediancut

import(
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// 4x4 black image, no splitting: one black light over everything.
func TestSampleBlackImage(t *testing.T) {
	lights, err := Sample(uniformImage(t, 4, 4, 0), Options{Iterations: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(lights))
	}
	l := lights[0]
	if l.R != 0 || l.G != 0 || l.B != 0 {
		t.Errorf("color = %s, want black", l.Color())
	}
	if l.Rect() != (Rect{0, 0, 4, 4}) {
		t.Errorf("rect = %s, want [0,4)x[0,4)", l.Rect())
	}
	if l.X != 0 || l.Y != 0 {
		t.Errorf("point = (%d,%d), want (0,0)", l.X, l.Y)
	}
}

// 4x2, left half white, right half black, one round.
//
// The 4x2 region is wider than tall, so the cut is vertical. Column 0
// alone holds exactly half of the energy, so the sweep stops there:
// the boundary pixel belongs to the first child.
func TestSampleWhiteLeftHalf(t *testing.T) {
	pix := make([]float32, 4*2*3)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			p := 3 * (y*4 + x)
			pix[p], pix[p+1], pix[p+2] = 1, 1, 1
		}
	}
	img, err := NewImage(pix, 4, 2)
	if err != nil {
		t.Fatal(err)
	}

	lights, err := Sample(img, Options{Iterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(lights))
	}

	left, right := lights[0], lights[1]
	if left.SX != 0 || left.SY != 0 || left.EY != 2 || right.SY != 0 || right.EY != 2 {
		t.Errorf("split not vertical: %s / %s", left.Rect(), right.Rect())
	}
	if left.EX != right.SX || right.EX != 4 {
		t.Errorf("leaves don't meet: %s / %s", left.Rect(), right.Rect())
	}
	if left.EX != 1 {
		t.Errorf("boundary at x=%d, want 1", left.EX)
	}
	if left.R <= 0 || left.G <= 0 || left.B <= 0 {
		t.Errorf("left light color %s, want positive", left.Color())
	}

	// Both white columns are lit by the same rows, so the total is
	// twice a column; 1/8 normalizes by the full pixel count.
	tbl := mustTable(t, img, false)
	want := tbl.Total().Scale(1.0 / 8)
	got := left.Color().Add(right.Color())
	for c := 0; c < 3; c++ {
		if !scalar.EqualWithinRel(got[c], want[c], relTol) {
			t.Errorf("lights sum to %s, want %s", got, want)
		}
	}
}

// All of the energy in the discarded half: every light is black.
func TestSampleHemisphereDiscardsTopHalf(t *testing.T) {
	const w, h = 8, 6
	pix := make([]float32, w*h*3)
	for i := 0; i < w*(h/2)*3; i++ {
		pix[i] = 5
	}
	img, err := NewImage(pix, w, h)
	if err != nil {
		t.Fatal(err)
	}

	lights, err := Sample(img, Options{Iterations: 3, Hemisphere: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(lights) == 0 {
		t.Fatal("no lights")
	}
	for _, l := range lights {
		if l.R != 0 || l.G != 0 || l.B != 0 {
			t.Errorf("%s: want black", l)
		}
		if l.SY < h/2 {
			t.Errorf("%s: region reaches into the discarded half", l)
		}
	}
}

func TestSampleRejectsBadInput(t *testing.T) {
	if _, err := Sample(Image{Pix: make([]float32, 5), Width: 1, Height: 1, Channels: 5}, Options{Iterations: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative iterations: err = %v", err)
	}
	if _, err := Sample(Image{Width: 2, Height: 2, Channels: 3}, Options{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty buffer: err = %v", err)
	}
}

func TestFinalizePointInsideRegion(t *testing.T) {
	img := randomImage(t, 21, 64, 32, 4, 0, 3)
	for _, hemi := range []bool{false, true} {
		lights, err := Sample(img, Options{Iterations: 6, Hemisphere: hemi})
		if err != nil {
			t.Fatal(err)
		}
		for _, l := range lights {
			if l.X < l.SX || l.X >= l.EX || l.Y < l.SY || l.Y >= l.EY {
				t.Errorf("%s: point outside its region", l)
			}
			if l.R < 0 || l.G < 0 || l.B < 0 {
				t.Errorf("%s: negative color", l)
			}
		}
	}
}

// The representative point follows a bright spot.
func TestFinalizeFindsHotSpot(t *testing.T) {
	const w, h = 16, 8
	pix := make([]float32, w*h*3)
	for i := range pix {
		pix[i] = 0.01
	}
	p := 3 * (5*w + 11)
	pix[p], pix[p+1], pix[p+2] = 1000, 1000, 1000

	img, err := NewImage(pix, w, h)
	if err != nil {
		t.Fatal(err)
	}
	lights, err := Sample(img, Options{Iterations: 0})
	if err != nil {
		t.Fatal(err)
	}
	if l := lights[0]; l.X != 11 || l.Y != 5 {
		t.Errorf("point = (%d,%d), want (11,5)", l.X, l.Y)
	}
}

func TestFinalizeNormalizesByImageArea(t *testing.T) {
	img := uniformImage(t, 8, 4, 1)
	tbl := mustTable(t, img, true)
	leaves, err := tbl.Partition(0)
	if err != nil {
		t.Fatal(err)
	}

	l := tbl.Finalize(leaves)[0]
	want := tbl.Total()[0] / 32 // whole image, not the 16 retained pixels
	if !scalar.EqualWithinRel(l.R, want, relTol) {
		t.Errorf("R = %v, want %v", l.R, want)
	}
}
