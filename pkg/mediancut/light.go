package mediancut

import(
	"fmt"

	"github.com/abworrall/lightprobe/pkg/emath"
)

// A Light stands in for one leaf region: a representative pixel, the
// region's energy normalized into a color, and the region itself.
type Light struct {
	X  int     `yaml:"x"`
	Y  int     `yaml:"y"`
	R  float64 `yaml:"r"`
	G  float64 `yaml:"g"`
	B  float64 `yaml:"b"`

	SX int     `yaml:"sx"`
	SY int     `yaml:"sy"`
	EX int     `yaml:"ex"`
	EY int     `yaml:"ey"`
}

func (l Light)Color() emath.Vec3  { return emath.Vec3{l.R, l.G, l.B} }
func (l Light)Rect() Rect         { return Rect{SX: l.SX, SY: l.SY, EX: l.EX, EY: l.EY} }

func (l Light)String() string {
	return fmt.Sprintf("Light@(%d,%d) %s over %s", l.X, l.Y, l.Color(), l.Rect())
}

// Finalize turns leaf regions into lights.
//
// The representative point comes from bisecting the leaf by columns,
// then bisecting *that* result by rows, and taking the far corner of
// what's left. It approximates the energy centroid; the column-first
// order matters, and doing rows first gives worse points.
//
// Colors are the leaf energy divided by the pixel count of the whole
// image (not the leaf's own area).
func (t *Table)Finalize(leaves []Region) []Light {
	norm := 1.0 / float64(t.Width*t.Height)
	lights := make([]Light, 0, len(leaves))

	for _, leaf := range leaves {
		c := t.Split(leaf, AlongColumns)
		r := t.Split(c, AlongRows)
		col := leaf.Energy.Scale(norm)

		lights = append(lights, Light{
			X: r.EX-1, Y: r.EY-1,
			R: col[0], G: col[1], B: col[2],
			SX: leaf.SX, SY: leaf.SY, EX: leaf.EX, EY: leaf.EY,
		})
	}

	return lights
}
