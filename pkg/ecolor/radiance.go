package ecolor

import(
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/lightprobe/pkg/emath"
)

// A Radiance is a linear, unbounded HDR RGB value, as emitted by a
// light. It implements color.Color and hdrcolor.Color via the embedded
// hdrcolor.RGB.
type Radiance struct {
	hdrcolor.RGB
}

func NewRadiance(v emath.Vec3) Radiance {
	return Radiance{hdrcolor.RGB{R: v[0], G: v[1], B: v[2]}}
}

func (r Radiance)Vec3() emath.Vec3     { return emath.Vec3{r.R, r.G, r.B} }
func (r Radiance)Luminance() float64   { return r.Vec3().Luminance() }

func (r Radiance)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", r.R, r.G, r.B)
}

// Scale multiplies all channels by f
func (r Radiance)Scale(f float64) Radiance {
	return NewRadiance(r.Vec3().Scale(f))
}

// FloorAt clips negative channels (e.g. from float error) up to min.
func (r Radiance)FloorAt(min float64) Radiance {
	v := r.Vec3()
	v.FloorAt(min)
	return NewRadiance(v)
}

// Exposure scales the radiance so its brightest channel is 1.0,
// returning the scaled color and the factor used. Black stays black.
func (r Radiance)Exposure() (Radiance, float64) {
	peak := math.Max(r.R, math.Max(r.G, r.B))
	if peak <= 0 {
		return Radiance{}, 0
	}
	return r.Scale(1.0 / peak), peak
}

// Hex gives the chromaticity of the light as an sRGB hex string (after
// Exposure, so it is the hue rather than the brightness), for engines
// that want colors and intensities separately.
func (r Radiance)Hex() string {
	norm, _ := r.FloorAt(0).Exposure()
	return colorful.LinearRgb(norm.R, norm.G, norm.B).Clamped().Hex()
}
