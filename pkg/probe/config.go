package probe

import(
	"fmt"
	"log"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/lightprobe/pkg/dome"
	"github.com/abworrall/lightprobe/pkg/mediancut"
)

/* Example config file ...

verbosity: 1
iterations: 6
hemisphere: true
exifexposure: false
tonemapper: reinhard05
pixelcenters: false
previewwidth: 1024
palettesize: 5
palettemethod: kmeans
approxformat: exr
outputprefix: out/studio
dome:
  radius: 20
  mapradius: 8
  clipdistance: 10
  mapsize: 1024
  bias: -0.0005

*/

type Config struct {
	Verbosity     int

	Iterations    int     // median-cut rounds; up to 2^Iterations lights
	Hemisphere    bool    // only sample the lower half of the map
	ExifExposure  bool    // scale LDR maps to absolute luminance, using their EXIF

	Tonemapper    string  // for the preview images; one of Tonemappers
	PixelCenters  bool    // normalize light positions from pixel centres, not corners
	PreviewWidth  int     // if >0, previews are scaled to this width
	PaletteSize   int     // how many colors to pick out of the tonemapped map; 0 for none
	PaletteMethod string  // one of PaletteMethods
	ApproxFormat  string  // file format of the approximation image: hdr or exr
	OutputPrefix  string  // output files are named <prefix>-<envmap>-<what>.<ext>

	Dome          dome.Params
}

func NewConfig() Config {
	return Config{
		Iterations:    6,
		Tonemapper:    "reinhard05",
		PaletteSize:   5,
		PaletteMethod: "dominantcolor",
		ApproxFormat:  "hdr",
		OutputPrefix:  "lightprobe",
		Dome:          dome.DefaultParams(),
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Validate does sanity checks on the values, so we fail before doing any real work
func (c Config)Validate() error {
	if c.Iterations < 0 || c.Iterations > mediancut.MaxIterations {
		return fmt.Errorf("config iterations %d, want [0,%d]", c.Iterations, mediancut.MaxIterations)
	}
	if !IsTonemapper(c.Tonemapper) {
		return fmt.Errorf("config tonemapper %q not recognized, wanted %s", c.Tonemapper, ListTonemappers())
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("config previewwidth %d, must not be negative", c.PreviewWidth)
	}
	if c.ApproxFormat != "hdr" && c.ApproxFormat != "exr" {
		return fmt.Errorf("config approxformat %q not recognized, wanted hdr or exr", c.ApproxFormat)
	}
	if c.PaletteSize < 0 {
		return fmt.Errorf("config palettesize %d, must not be negative", c.PaletteSize)
	}
	if !IsPaletteMethod(c.PaletteMethod) {
		return fmt.Errorf("config palettemethod %q not recognized, wanted %v", c.PaletteMethod, PaletteMethods)
	}
	return c.Dome.Validate()
}

func (c Config)Options() mediancut.Options {
	return mediancut.Options{Iterations: c.Iterations, Hemisphere: c.Hemisphere}
}
