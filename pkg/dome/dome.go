// Package dome turns median-cut lights into a dome of directional
// lights for a real-time renderer: each light sits on a sphere around
// the scene origin, shines at it, and casts a shadow through an
// orthographic shadow camera.
package dome

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/abworrall/lightprobe/pkg/ecolor"
	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// Params are the renderer-side knobs.
type Params struct {
	Radius       float64 // distance of each light from the origin
	MapRadius    float64 // half-extent of the square shadow camera, across the light axis
	ClipDistance float64 // shadow depth range either side of the origin, along the light axis
	MapSize      int     // shadow map resolution, per side
	Bias         float64 // shadow map depth bias
}

func DefaultParams() Params {
	return Params{
		Radius:       10,
		MapRadius:    5,
		ClipDistance: 5,
		MapSize:      512,
		Bias:         -0.0005,
	}
}

func (p Params)Validate() error {
	switch {
	case p.Radius <= 0:
		return fmt.Errorf("dome radius %v, must be positive", p.Radius)
	case p.MapRadius <= 0:
		return fmt.Errorf("dome mapradius %v, must be positive", p.MapRadius)
	case p.ClipDistance <= 0 || p.ClipDistance > p.Radius:
		return fmt.Errorf("dome clipdistance %v, must be in (0, radius=%v]", p.ClipDistance, p.Radius)
	case p.MapSize <= 0:
		return fmt.Errorf("dome mapsize %d, must be positive", p.MapSize)
	}
	return nil
}

// A Shadow describes the orthographic shadow camera of one light.
type Shadow struct {
	Left, Right float64
	Top, Bottom float64
	Near, Far   float64
	MapSize     int
	Bias        float64
}

// A DirectionalLight is one renderer light, pointing at the origin.
type DirectionalLight struct {
	Position   r3.Vec
	Direction  r3.Vec           // unit vector from the light towards the origin
	Color      ecolor.Radiance  // already scaled by the 2pi solid-angle factor
	Hex        string           // display chromaticity of Color
	CastShadow bool
	Shadow     Shadow

	Source     mediancut.Light
}

func (dl DirectionalLight)String() string {
	return fmt.Sprintf("DirLight@(%6.2f,%6.2f,%6.2f) %s %s", dl.Position.X, dl.Position.Y, dl.Position.Z, dl.Hex, dl.Color)
}

// SolidAngleScale converts a median-cut light color, which is energy per
// pixel of the whole map, into light intensity.
const SolidAngleScale = 2 * math.Pi

// Build places one DirectionalLight per median-cut light. The
// pixel->angle mapping is up to the caller, via `norm`.
func Build(lights []mediancut.Light, norm Normalizer, p Params) ([]DirectionalLight, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ret := make([]DirectionalLight, 0, len(lights))
	for _, l := range lights {
		rx, ry := norm.Normalize(l)
		pos := SphericalPosition(p.Radius, math.Pi*(1-ry), 2*math.Pi*(0.75-rx))
		col := ecolor.NewRadiance(l.Color()).Scale(SolidAngleScale).FloorAt(0)

		ret = append(ret, DirectionalLight{
			Position:   pos,
			Direction:  r3.Unit(r3.Scale(-1, pos)),
			Color:      col,
			Hex:        col.Hex(),
			CastShadow: true,
			Shadow: Shadow{
				Left:    -p.MapRadius,
				Right:   p.MapRadius,
				Top:     p.MapRadius,
				Bottom:  -p.MapRadius,
				Near:    p.Radius - p.ClipDistance,
				Far:     p.Radius + p.ClipDistance,
				MapSize: p.MapSize,
				Bias:    p.Bias,
			},
			Source: l,
		})
	}

	return ret, nil
}

// SphericalPosition is a point at distance `radius` from the origin,
// `phi` radians down from +Y and `theta` radians around Y from +Z.
func SphericalPosition(radius, phi, theta float64) r3.Vec {
	sinPhiRadius := math.Sin(phi) * radius
	return r3.Vec{
		X: sinPhiRadius * math.Sin(theta),
		Y: math.Cos(phi) * radius,
		Z: sinPhiRadius * math.Cos(theta),
	}
}
