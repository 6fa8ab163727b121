package emath

import(
	"math"
	"path/filepath"
	"testing"
)

func TestAff3NormalizesPixels(t *testing.T) {
	m := Identity().Scale(1.0/64.0, 1.0/32.0)

	tests := []struct {
		x, y   float64
		wx, wy float64
	}{
		{0, 0, 0, 0},
		{32, 16, 0.5, 0.5},
		{64, 32, 1, 1},
	}
	for _, tt := range tests {
		gx, gy := m.Apply(tt.x, tt.y)
		if math.Abs(gx-tt.wx) > 1e-12 || math.Abs(gy-tt.wy) > 1e-12 {
			t.Errorf("Apply(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, gx, gy, tt.wx, tt.wy)
		}
	}
}

func TestAff3TranslateThenScale(t *testing.T) {
	// Rightmost operations happen first: shift to pixel centers, then scale.
	m := Identity().Scale(0.25, 0.5).Translate(0.5, 0.5)
	x, y := m.Apply(1, 0)
	if x != 0.375 || y != 0.25 {
		t.Errorf("got (%v,%v), want (0.375,0.25)", x, y)
	}
}

func TestVec3Luminance(t *testing.T) {
	white := Vec3{1, 1, 1}
	if got := white.Luminance(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("white luminance = %v, want 1", got)
	}
	if got := (Vec3{0, 0, 0}).Luminance(); got != 0 {
		t.Errorf("black luminance = %v, want 0", got)
	}
	v := Vec3{1, 2, 3}.Add(Vec3{1, 1, 1}).Sub(Vec3{0, 1, 2}).Scale(2)
	if v != (Vec3{4, 4, 4}) {
		t.Errorf("arithmetic got %v", v)
	}
}

func TestVec3FloorAt(t *testing.T) {
	v := Vec3{-1, 0.5, -0.001}
	v.FloorAt(0)
	if v != (Vec3{0, 0.5, 0}) {
		t.Errorf("FloorAt got %v", v)
	}
}

func TestFloatGrid(t *testing.T) {
	fg := NewFloatGrid(3, 2)
	if fg.Dx() != 3 || fg.Dy() != 2 {
		t.Fatalf("dims %dx%d", fg.Dx(), fg.Dy())
	}
	fg.Set(2, 1, 4.5)
	fg.Set(0, 0, 0.5)
	if fg.Get(2, 1) != 4.5 {
		t.Errorf("Get(2,1) = %v", fg.Get(2, 1))
	}
	if fg.Sum() != 5.0 {
		t.Errorf("Sum = %v", fg.Sum())
	}

	if err := fg.ToImg("test grid", filepath.Join(t.TempDir(), "grid.png")); err != nil {
		t.Errorf("ToImg: %v", err)
	}
}
