package probe

import(
	"fmt"
	"log"
	"math"

	"github.com/skypies/util/histogram"
	"gonum.org/v1/gonum/floats"

	"github.com/abworrall/lightprobe/pkg/dome"
	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// A Probe holds the environment maps to be sampled, and the config
// for doing it. Each map is sampled independently.
type Probe struct {
	EnvMaps []EnvMap
	Config
}

// A Result is everything we worked out for one environment map.
type Result struct {
	EnvMap
	Table  *mediancut.Table
	Leaves []mediancut.Region
	Lights []mediancut.Light
	Dome   []dome.DirectionalLight
}

func NewProbe() Probe {
	return Probe{
		EnvMaps: []EnvMap{},
		Config:  NewConfig(),
	}
}

func (p Probe)String() string {
	str := "Probe [\n"
	for _, em := range p.EnvMaps {
		str += fmt.Sprintf("  %s\n", em)
	}
	return str + "]\n"
}

func (p *Probe)AddEnvMap(em EnvMap) {
	p.EnvMaps = append(p.EnvMaps, em)
}

// Run samples every loaded environment map.
func (p *Probe)Run() ([]*Result, error) {
	if len(p.EnvMaps) == 0 {
		return nil, fmt.Errorf("no environment maps loaded")
	}
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}

	results := []*Result{}
	for _, em := range p.EnvMaps {
		res, err := p.Sample(em)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", em.Filename(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Sample runs median-cut over one map, then places the dome lights.
// The partition is kept alongside the lights so the outputs can draw it.
func (p *Probe)Sample(em EnvMap) (*Result, error) {
	opts := p.Options()
	log.Printf("Sampling %s, %d iterations (hemisphere=%v)", em, opts.Iterations, opts.Hemisphere)

	if p.ExifExposure {
		if em.Exposure != nil {
			em = em.Scaled(em.Exposure.Scale())
			log.Printf("%s: scaled to absolute luminance by %s\n", em.Filename(), em.Exposure)
		} else {
			log.Printf("%s: no EXIF exposure, left as-is\n", em.Filename())
		}
	}

	res := Result{EnvMap: em}

	var err error
	if res.Table, err = mediancut.NewTable(em.Image, opts.Hemisphere); err != nil {
		return nil, err
	}
	if p.Verbosity > 0 {
		log.Printf("Built %s", res.Table)
	}

	if res.Leaves, err = res.Table.Partition(opts.Iterations); err != nil {
		return nil, err
	}
	if n := len(res.Leaves); n < 1<<opts.Iterations {
		log.Printf("%s: %d degenerate regions, only %d lights", em.Filename(), (1<<opts.Iterations)-n, n)
	}

	res.Lights = res.Table.Finalize(res.Leaves)

	norm := dome.NewPixelNormalizer(em.Width, em.Height, p.PixelCenters)
	if res.Dome, err = dome.Build(res.Lights, norm, p.Dome); err != nil {
		return nil, err
	}

	if p.Verbosity > 0 {
		log.Printf("Light brightness, in quarter stops above the dimmest: %v", res.StopsHistogram())
	}
	if p.Verbosity > 1 {
		for _, dl := range res.Dome {
			log.Printf("  %s", dl)
		}
	}
	log.Printf("%s", res)

	return &res, nil
}

// Luminances of the lights, in output order.
func (res Result)Luminances() []float64 {
	lums := make([]float64, len(res.Lights))
	for i, l := range res.Lights {
		lums[i] = l.Color().Luminance()
	}
	return lums
}

func (res Result)String() string {
	if len(res.Lights) == 0 {
		return fmt.Sprintf("Result %s: no lights", res.Filename())
	}
	lums := res.Luminances()
	return fmt.Sprintf("Result %s: %d lights, total luminance %.6f, brightest %.6f",
		res.Filename(), len(res.Lights), floats.Sum(lums), floats.Max(lums))
}

// StopsHistogram buckets the lights by how many quarter stops brighter
// they are than the dimmest non-black light. Median-cut lights should
// bunch up; a long tail means a few regions couldn't be split further.
func (res Result)StopsHistogram() histogram.Histogram {
	h := histogram.Histogram{NumBuckets:32, ValMin:0, ValMax:128}

	lums := []float64{}
	for _, lum := range res.Luminances() {
		if lum > 0 {
			lums = append(lums, lum)
		}
	}
	if len(lums) == 0 {
		return h
	}

	dimmest := floats.Min(lums)
	for _, lum := range lums {
		h.Add(histogram.ScalarVal(int(math.Log2(lum/dimmest) * 4)))
	}
	return h
}
