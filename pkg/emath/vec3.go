package emath

import(
	"fmt"
	"golang.org/x/image/math/f64"
)

// A Vec3 is an RGB triple of linear light values (or energy sums of them).
type Vec3 f64.Vec3

// Rec. 709 relative luminance weights; https://en.wikipedia.org/wiki/Relative_luminance
const(
	LumR = 0.2126
	LumG = 0.7152
	LumB = 0.0722
)

func (v Vec3)Add(w Vec3) Vec3        { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v Vec3)Sub(w Vec3) Vec3        { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }
func (v Vec3)Scale(f float64) Vec3   { return Vec3{v[0] * f, v[1] * f, v[2] * f} }
func (v Vec3)Luminance() float64     { return LumR*v[0] + LumG*v[1] + LumB*v[2] }

func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

func (v *Vec3)FloorAt(min float64) {
	if v[0] < min { v[0] = min }
	if v[1] < min { v[1] = min }
	if v[2] < min { v[2] = min }
}
