package probe

import(
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mrjoshuak/go-openexr/exr"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/lightprobe/pkg/dome"
	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// OutputFilename is where one of the outputs for `em` goes.
func (p *Probe)OutputFilename(em EnvMap, what, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", p.OutputPrefix, em.Name(), what, ext)
}

// Publish writes out all the files for one result.
func (p *Probe)Publish(res *Result) error {
	if dir := filepath.Dir(p.OutputPrefix); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("mkdir '%s': %v", dir, err)
		}
	}

	ldr, err := Tonemap(p.Tonemapper, res.EnvMap)
	if err != nil {
		return err
	}
	palette, err := Palette(ldr, p.PaletteSize, p.PaletteMethod)
	if err != nil {
		return err
	}

	filename := p.OutputFilename(res.EnvMap, "lights", "yaml")
	if err := WriteLightsYaml(res, p.Config, palette, filename); err != nil {
		return err
	}
	log.Printf("Wrote %d lights to %s\n", len(res.Lights), filename)

	filename = p.OutputFilename(res.EnvMap, "approx", p.ApproxFormat)
	write := WriteToHDR
	if p.ApproxFormat == "exr" {
		write = WriteToEXR
	}
	if err := write(NewApproximation(res), filename); err != nil {
		return err
	}
	log.Printf("Wrote approximation to %s\n", filename)

	preview := drawPreview(res, ldr, p.Tonemapper, p.PreviewWidth)
	filename = p.OutputFilename(res.EnvMap, "preview", "png")
	if err := WritePNG(preview, filename); err != nil {
		return err
	}
	log.Printf("Wrote preview to %s\n", filename)

	if p.Verbosity > 0 {
		filename = p.OutputFilename(res.EnvMap, "luminance", "png")
		grid := res.Table.LuminanceGrid()
		if err := grid.ToImg(fmt.Sprintf("weighted luminance %s, total %.4g", grid.Stats(), grid.Sum()), filename); err != nil {
			return fmt.Errorf("luminance grid '%s': %v", filename, err)
		}
		log.Printf("Wrote luminance grid to %s\n", filename)
	}

	return nil
}

// A lightsFile is the YAML document written for each env map.
type lightsFile struct {
	Source     string            `yaml:"source"`
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	Iterations int               `yaml:"iterations"`
	Hemisphere bool              `yaml:"hemisphere"`
	Palette    []string          `yaml:"palette,flow"`

	Lights     []mediancut.Light `yaml:"lights"`
	Dome       []domeLightRecord `yaml:"dome"`
}

type domeLightRecord struct {
	Position   [3]float64  `yaml:"position,flow"`
	Direction  [3]float64  `yaml:"direction,flow"`
	Color      [3]float64  `yaml:"color,flow"`
	Hex        string      `yaml:"hex"`
	CastShadow bool        `yaml:"castshadow"`
	Shadow     dome.Shadow `yaml:"shadow"`
}

func newLightsFile(res *Result, cfg Config, palette []colorful.Color) lightsFile {
	lf := lightsFile{
		Source:     res.Filename(),
		Width:      res.Width,
		Height:     res.Height,
		Iterations: cfg.Iterations,
		Hemisphere: cfg.Hemisphere,
		Lights:     res.Lights,
	}
	for _, c := range palette {
		lf.Palette = append(lf.Palette, c.Hex())
	}
	for _, dl := range res.Dome {
		lf.Dome = append(lf.Dome, domeLightRecord{
			Position:   [3]float64{dl.Position.X, dl.Position.Y, dl.Position.Z},
			Direction:  [3]float64{dl.Direction.X, dl.Direction.Y, dl.Direction.Z},
			Color:      [3]float64{dl.Color.R, dl.Color.G, dl.Color.B},
			Hex:        dl.Hex,
			CastShadow: dl.CastShadow,
			Shadow:     dl.Shadow,
		})
	}
	return lf
}

func WriteLightsYaml(res *Result, cfg Config, palette []colorful.Color, filename string) error {
	b, err := yaml.Marshal(newLightsFile(res, cfg, palette))
	if err != nil {
		return fmt.Errorf("lights yaml: %v", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	return nil
}

// WriteToHDR outputs a Radiance HDR image.
func WriteToHDR(img hdr.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("WriteToHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		err := rgbe.Encode(writer, img)
		if err != nil {
			log.Printf("WriteToHDR, encoding RGBE file: %v\n", err)
		}
		return err
	}
}

// WriteToEXR outputs an OpenEXR image (half floats, with an opaque alpha).
func WriteToEXR(img hdr.Image, filename string) error {
	b := img.Bounds()
	out := exr.NewRGBAImage(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y:=b.Min.Y; y<b.Max.Y; y++ {
		for x:=b.Min.X; x<b.Max.X; x++ {
			r, g, bl, _ := img.HDRAt(x, y).HDRRGBA()
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, float32(r), float32(g), float32(bl), 1)
		}
	}

	if err := exr.EncodeFile(filename, out); err != nil {
		return fmt.Errorf("WriteToEXR '%s': %v", filename, err)
	}
	return nil
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

// Preview tonemaps the source map and draws the partition over it:
// region outlines in green, light positions in red. In hemisphere
// mode the unsampled top half is dimmed. If `width` is >0 the result
// is scaled to that width.
func Preview(res *Result, tonemapper string, width int) (image.Image, error) {
	ldr, err := Tonemap(tonemapper, res.EnvMap)
	if err != nil {
		return nil, err
	}
	return drawPreview(res, ldr, tonemapper, width), nil
}

func drawPreview(res *Result, ldr image.Image, tonemapper string, width int) image.Image {
	dc := gg.NewContextForImage(ldr)

	if off := res.Table.RowOffset; off > 0 {
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRectangle(0, 0, float64(res.Width), float64(off))
		dc.Fill()
	}

	dc.SetLineWidth(1)
	dc.SetRGBA(0, 1, 0, 0.8)
	for _, l := range res.Lights {
		r := l.Rect()
		dc.DrawRectangle(float64(r.SX)+0.5, float64(r.SY)+0.5, float64(r.Dx())-1, float64(r.Dy())-1)
		dc.Stroke()
	}

	dc.SetRGB(1, 0, 0)
	for _, l := range res.Lights {
		dc.DrawCircle(float64(l.X)+0.5, float64(l.Y)+0.5, 2)
		dc.Fill()
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("%s: %d lights (%s)", res.Filename(), len(res.Lights), tonemapper), 10, 20)

	img := dc.Image()
	if width <= 0 || width == res.Width {
		return img
	}

	height := int(float64(res.Height) * float64(width) / float64(res.Width) + 0.5)
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
