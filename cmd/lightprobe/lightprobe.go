package main

import(
	"flag"
	"log"

	"github.com/abworrall/lightprobe/pkg/probe"
)

var(
	fVerbosity int
	fIterations int
	fHemisphere bool
	fExifExposure bool
	fTonemapper string
	fPixelCenters bool
	fPreviewWidth int
	fPaletteSize int
	fPaletteMethod string
	fApproxFormat string
	fOutputPrefix string

	fRadius float64
	fMapRadius float64
	fClipDistance float64
	fMapSize int
	fBias float64
)

func init() {
	def := probe.NewConfig()

	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.IntVar(&fIterations, "n", def.Iterations, "median-cut iterations; you get up to 2^n lights")
	flag.BoolVar(&fHemisphere, "hemisphere", false, "only sample the lower half of the map")
	flag.BoolVar(&fExifExposure, "exif", false, "scale LDR maps to absolute luminance using their EXIF exposure")
	flag.StringVar(&fTonemapper, "tonemapper", def.Tonemapper, "how to tonemap the preview: "+probe.ListTonemappers())
	flag.BoolVar(&fPixelCenters, "centers", false, "place lights using pixel centres, not corners")
	flag.IntVar(&fPreviewWidth, "previewwidth", 0, "scale the preview to this width (0 leaves it alone)")
	flag.IntVar(&fPaletteSize, "palette", def.PaletteSize, "how many palette colors to pick from the map (0 for none)")
	flag.StringVar(&fPaletteMethod, "palettemethod", def.PaletteMethod, "how to pick the palette: dominantcolor, kmeans")
	flag.StringVar(&fApproxFormat, "approx", def.ApproxFormat, "format of the approximation image: hdr, exr")
	flag.StringVar(&fOutputPrefix, "o", def.OutputPrefix, "prefix for output filenames")

	flag.Float64Var(&fRadius, "radius", def.Dome.Radius, "distance of the dome lights from the origin")
	flag.Float64Var(&fMapRadius, "mapradius", def.Dome.MapRadius, "half-width of each light's shadow camera")
	flag.Float64Var(&fClipDistance, "clip", def.Dome.ClipDistance, "shadow camera depth either side of the origin")
	flag.IntVar(&fMapSize, "mapsize", def.Dome.MapSize, "shadow map resolution")
	flag.Float64Var(&fBias, "bias", def.Dome.Bias, "shadow map bias")
	flag.Parse()

	log.Printf("lightprobe starting\n")
}

func main() {
	p := probe.NewProbe()
	if err := p.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	// Flags given on the command line win over any config yaml
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":             p.Config.Verbosity = fVerbosity
		case "n":             p.Config.Iterations = fIterations
		case "hemisphere":    p.Config.Hemisphere = fHemisphere
		case "exif":          p.Config.ExifExposure = fExifExposure
		case "tonemapper":    p.Config.Tonemapper = fTonemapper
		case "centers":       p.Config.PixelCenters = fPixelCenters
		case "previewwidth":  p.Config.PreviewWidth = fPreviewWidth
		case "palette":       p.Config.PaletteSize = fPaletteSize
		case "palettemethod": p.Config.PaletteMethod = fPaletteMethod
		case "approx":        p.Config.ApproxFormat = fApproxFormat
		case "o":             p.Config.OutputPrefix = fOutputPrefix
		case "radius":        p.Config.Dome.Radius = fRadius
		case "mapradius":     p.Config.Dome.MapRadius = fMapRadius
		case "clip":          p.Config.Dome.ClipDistance = fClipDistance
		case "mapsize":       p.Config.Dome.MapSize = fMapSize
		case "bias":          p.Config.Dome.Bias = fBias
		}
	})

	if p.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", p.Config.AsYaml())
	}

	results, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		if err := p.Publish(res); err != nil {
			log.Fatal(err)
		}
	}
}
