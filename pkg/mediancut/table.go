package mediancut

import(
	"fmt"

	"github.com/abworrall/lightprobe/pkg/emath"
)

// A Table is a summed-area table over the latitude-weighted RGB
// energy of an image. Cell (x,y) holds the sum of weight(y')*pixel(x',y')
// over all retained rows y' up to y and all columns x' up to x.
//
// It also carries the image geometry that the bisector and finalizer
// need, so nothing has to close over width/height. Immutable once built.
type Table struct {
	Width     int // of the source image
	Height    int // of the source image, not just the retained rows
	RowOffset int // first retained row; non-zero for a hemisphere table
	Rows      int // number of retained rows

	planes [3]emath.FloatGrid // R, G, B
}

// NewTable builds the table in one pass over the image. With
// `hemisphere` set, only rows from height/2 downwards are retained;
// the rest are left out of the table entirely.
func NewTable(img Image, hemisphere bool) (*Table, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	t := Table{
		Width:  img.Width,
		Height: img.Height,
	}
	if hemisphere {
		t.RowOffset = img.Height / 2
	}
	t.Rows = img.Height - t.RowOffset

	for i := range t.planes {
		t.planes[i] = emath.NewFloatGrid(t.Width, t.Rows)
	}

	for ry:=0; ry<t.Rows; ry++ {
		y := ry + t.RowOffset
		w := LatitudeWeight(float64(y) + 0.5, img.Height)

		run := emath.Vec3{}
		for x:=0; x<t.Width; x++ {
			run = run.Add(img.At(x, y).Scale(w))
			cell := run
			if ry > 0 {
				cell = cell.Add(t.cell(x, ry-1))
			}
			t.setCell(x, ry, cell)
		}
	}

	return &t, nil
}

func (t *Table)String() string {
	return fmt.Sprintf("Table[%dx%d, rows %d-%d, total %s]", t.Width, t.Height,
		t.RowOffset, t.RowOffset+t.Rows-1, t.Total())
}

// Bounds is the rectangle of retained pixels, in image coordinates.
func (t *Table)Bounds() Rect {
	return Rect{SX: 0, SY: t.RowOffset, EX: t.Width, EY: t.Height}
}

// Total is the weighted energy of the whole retained image.
func (t *Table)Total() emath.Vec3 {
	return t.cell(t.Width-1, t.Rows-1)
}

// Sum returns the weighted energy inside r, in O(1). Coordinates are
// absolute image coordinates; see `at` for how out-of-range corners
// are treated.
func (t *Table)Sum(r Rect) emath.Vec3 {
	return t.at(r.EX-1, r.EY-1).
		Sub(t.at(r.SX-1, r.EY-1)).
		Sub(t.at(r.EX-1, r.SY-1)).
		Add(t.at(r.SX-1, r.SY-1))
}

// at reads the table at absolute image coords. Anything above or left
// of the retained area reads as zero; anything at or beyond the last
// row/column clamps to it, since that cell is the running total along
// that axis.
func (t *Table)at(x, y int) emath.Vec3 {
	ry := y - t.RowOffset
	if x < 0 || ry < 0 {
		return emath.Vec3{}
	}
	if x >= t.Width  { x  = t.Width-1 }
	if ry >= t.Rows  { ry = t.Rows-1 }
	return t.cell(x, ry)
}

func (t *Table)cell(x, ry int) emath.Vec3 {
	return emath.Vec3{t.planes[0].Get(x, ry), t.planes[1].Get(x, ry), t.planes[2].Get(x, ry)}
}

func (t *Table)setCell(x, ry int, v emath.Vec3) {
	t.planes[0].Set(x, ry, v[0])
	t.planes[1].Set(x, ry, v[1])
	t.planes[2].Set(x, ry, v[2])
}

// LuminanceGrid returns the weighted luminance of every retained
// pixel, recovered from the table by single-pixel queries. Useful to
// eyeball what the partitioner is actually splitting.
func (t *Table)LuminanceGrid() emath.FloatGrid {
	fg := emath.NewFloatGrid(t.Width, t.Rows)
	for ry:=0; ry<t.Rows; ry++ {
		y := ry + t.RowOffset
		for x:=0; x<t.Width; x++ {
			fg.Set(x, ry, t.Sum(Rect{x, y, x+1, y+1}).Luminance())
		}
	}
	return fg
}
