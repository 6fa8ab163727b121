package probe

import(
	"fmt"
	"image"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// A palette summarizes the overall tint of a (tonemapped) env map;
// handy for picking ambient and fill colors to go with the lights.

var(
	PaletteMethods = []string{"dominantcolor", "kmeans"}
)

func IsPaletteMethod(name string) bool {
	return slices.Contains(PaletteMethods, name)
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// Palette returns up to k colors from img, darkest first.
func Palette(img image.Image, k int, method string) ([]colorful.Color, error) {
	var cands []weightedColor

	switch method {
	case "dominantcolor":
		cands = dominantCandidates(img, k)
	case "kmeans":
		var err error
		if cands, err = kmeansCandidates(img, k); err != nil {
			log.Printf("palette: kmeans failed (%v), falling back to dominantcolor\n", err)
			cands = dominantCandidates(img, k)
		}
	default:
		return nil, fmt.Errorf("palette method %q not recognized, wanted %v", method, PaletteMethods)
	}

	// Heaviest k, then ordered by brightness
	slices.SortStableFunc(cands, func(a, b weightedColor) int {
		switch {
		case a.Weight > b.Weight: return -1
		case a.Weight < b.Weight: return 1
		}
		return 0
	})
	if len(cands) > k {
		cands = cands[:k]
	}

	palette := make([]colorful.Color, len(cands))
	for i, c := range cands {
		palette[i] = c.Col
	}
	SortPaletteByBrightness(palette)
	return palette, nil
}

func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		switch {
		case yi < yj: return -1
		case yi > yj: return 1
		}
		return 0
	})
}

func dominantCandidates(img image.Image, k int) []weightedColor {
	if k <= 0 {
		return nil
	}

	cands := []weightedColor{}
	for _, c := range dominantcolor.FindWeight(img, k) {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, weightedColor{Col: col.Clamped(), Weight: c.Weight})
	}
	return cands
}

func kmeansCandidates(img image.Image, k int) ([]weightedColor, error) {
	if k <= 0 {
		return nil, nil
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Subsample big maps, kmeans is slow
	maxSamples := 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}

	dataset := clusters.Observations{}
	for y:=b.Min.Y; y<b.Max.Y; y+=step {
		for x:=b.Min.X; x<b.Max.X; x+=step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) < k {
		return nil, fmt.Errorf("only %d samples for %d clusters", len(dataset), k)
	}

	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return nil, err
	}

	cands := []weightedColor{}
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		cands = append(cands, weightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return cands, nil
}
