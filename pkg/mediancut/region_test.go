package mediancut

import(
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func wholeRegion(tbl *Table) Region {
	return Region{Rect: tbl.Bounds(), Energy: tbl.Total()}
}

func TestSplitUniformIsMidpoint(t *testing.T) {
	tbl := mustTable(t, uniformImage(t, 8, 4, 1), false)

	cols := tbl.Split(wholeRegion(tbl), AlongColumns)
	if cols.Rect != (Rect{0, 0, 4, 4}) {
		t.Errorf("column split = %s, want [0,4)x[0,4)", cols.Rect)
	}

	// rows 0..3 have weights symmetric about the equator
	rows := tbl.Split(wholeRegion(tbl), AlongRows)
	if rows.Rect != (Rect{0, 0, 8, 2}) {
		t.Errorf("row split = %s, want [0,8)x[0,2)", rows.Rect)
	}
}

func TestSplitIncludesBoundary(t *testing.T) {
	// One bright column in the middle of a dim strip: the first child
	// has to run up to and include it.
	pix := make([]float32, 5*1*3)
	for x := 0; x < 5; x++ {
		v := float32(0.1)
		if x == 2 {
			v = 10
		}
		pix[3*x], pix[3*x+1], pix[3*x+2] = v, v, v
	}
	img, err := NewImage(pix, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	tbl := mustTable(t, img, false)

	got := tbl.Split(wholeRegion(tbl), AlongColumns)
	if got.Rect != (Rect{0, 0, 3, 1}) {
		t.Errorf("split = %s, want [0,3)x[0,1)", got.Rect)
	}
	if !vecClose(got.Energy, tbl.Sum(got.Rect)) {
		t.Errorf("child energy %s doesn't match its rect", got.Energy)
	}
}

func TestSplitZeroEnergy(t *testing.T) {
	tbl := mustTable(t, uniformImage(t, 6, 4, 0), false)

	for _, axis := range []Axis{AlongRows, AlongColumns} {
		got := tbl.Split(wholeRegion(tbl), axis)
		want := Rect{0, 0, 1, 4}
		if axis == AlongRows {
			want = Rect{0, 0, 6, 1}
		}
		if got.Rect != want {
			t.Errorf("%s: split of black region = %s, want %s", axis, got.Rect, want)
		}
	}
}

func TestSplitDegenerate(t *testing.T) {
	tbl := mustTable(t, uniformImage(t, 4, 4, 1), false)
	strip := Region{Rect: Rect{0, 1, 4, 2}}
	strip.Energy = tbl.Sum(strip.Rect)

	got := tbl.Split(strip, AlongRows)
	if got.Rect != strip.Rect {
		t.Errorf("1-row strip split along rows = %s, want the whole strip", got.Rect)
	}
}

func TestBisectDegenerateHasNoSecondChild(t *testing.T) {
	tbl := mustTable(t, uniformImage(t, 1, 1, 3), false)

	first, second := tbl.Bisect(wholeRegion(tbl))
	if first.Rect != tbl.Bounds() {
		t.Errorf("first child %s, want whole image", first.Rect)
	}
	if !second.Empty() {
		t.Errorf("second child %s, want empty", second)
	}
}

// Every split, at every depth, has to hand all of the parent's energy
// to its two children.
func TestBisectConservesEnergy(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		img := randomImage(t, seed, 48, 24, 3, 0, 50)
		for _, hemi := range []bool{false, true} {
			tbl := mustTable(t, img, hemi)
			checkConservation(t, tbl, wholeRegion(tbl), 7)
		}
	}
}

func checkConservation(t *testing.T, tbl *Table, parent Region, depth int) {
	t.Helper()
	if depth == 0 || parent.Empty() {
		return
	}

	a, b := tbl.Bisect(parent)
	sum := a.Energy.Add(b.Energy)
	for c := 0; c < 3; c++ {
		if !scalar.EqualWithinAbsOrRel(sum[c], parent.Energy[c], 1e-9, relTol) {
			t.Fatalf("split of %s: children sum to %s", parent, sum)
		}
	}
	if a.Area()+b.Area() != parent.Area() {
		t.Fatalf("split of %s: child areas %d + %d", parent, a.Area(), b.Area())
	}

	checkConservation(t, tbl, a, depth-1)
	checkConservation(t, tbl, b, depth-1)
}

func TestChooseAxisCompensatesLatitude(t *testing.T) {
	tbl := &Table{Width: 64, Height: 32, Rows: 32}

	// A 6x8 block is taller than wide at the equator, but near the pole
	// its rows cover so little solid angle that it counts as wide.
	if got := tbl.ChooseAxis(Rect{0, 12, 6, 20}); got != AlongRows {
		t.Errorf("6x8 at equator: %s, want rows", got)
	}
	if got := tbl.ChooseAxis(Rect{0, 0, 6, 8}); got != AlongColumns {
		t.Errorf("6x8 at pole: %s, want columns", got)
	}
}
