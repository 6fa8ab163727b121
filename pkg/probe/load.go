package probe

import(
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mrjoshuak/go-openexr/exr"
	"golang.org/x/image/tiff"

	"github.com/abworrall/lightprobe/pkg/mediancut"
)

func (p *Probe)LoadFilesAndDirs(args ...string) (error) {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := os.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := p.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default: // is a file, load it
			if err := p.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %v", arg, err)
			}
		}
	}

	return nil
}

func (p *Probe)loadFile(filename string) error {
	ext := filepath.Ext(filename)

	switch strings.ToLower(ext) {

	case ".hdr", ".pic", ".exr":
		em, err := LoadEnvMap(filename)
		if err != nil {
			return err
		}
		p.AddEnvMap(em)

	case ".tif", ".tiff", ".png", ".jpg", ".jpeg":
		em, err := LoadEnvMap(filename)
		if err != nil {
			return err
		}
		// Scaling waits until Sample, after the config is final
		if e, ok, err := readExposure(filename); err != nil {
			log.Printf("%s: ignoring EXIF, %v\n", em.Filename(), err)
		} else if ok {
			em.Exposure = &e
		}
		p.AddEnvMap(em)

	case ".yaml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as config YAML failed: %v", filename, err)
		}
		p.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)

	default:
		if p.Verbosity > 0 {
			log.Printf("Skipping %s, don't know what it is\n", filename)
		}
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

// LoadEnvMap decodes an equirectangular map, picking the codec from the
// file extension. HDR formats (Radiance, OpenEXR) are read as-is; LDR
// formats are assumed to be sRGB and are linearized.
func LoadEnvMap(filename string) (EnvMap, error) {
	em := EnvMap{LoadFilename: filename}

	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".exr":
		em.Image, err = loadEXR(filename)
	case ".hdr", ".pic":
		em.Image, err = loadRGBE(filename)
	case ".tif", ".tiff":
		em.Image, err = loadLDR(filename, tiff.Decode)
	default:
		em.Image, err = loadLDR(filename, func(r io.Reader) (image.Image, error) {
			img, _, err := image.Decode(r)
			return img, err
		})
	}

	return em, err
}

func loadEXR(filename string) (mediancut.Image, error) {
	img, err := exr.DecodeFile(filename)
	if err != nil {
		return mediancut.Image{}, fmt.Errorf("exr loading '%s': %v", filename, err)
	}

	// Already a flat float RGBA buffer, which is just what we want
	return mediancut.NewImage(img.Pix, img.Rect.Dx(), img.Rect.Dy())
}

func loadRGBE(filename string) (mediancut.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return mediancut.Image{}, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := rgbe.Decode(reader)
	if err != nil {
		return mediancut.Image{}, fmt.Errorf("rgbe loading '%s': %v", filename, err)
	}
	hdrImg, ok := img.(hdr.Image)
	if !ok {
		return mediancut.Image{}, fmt.Errorf("rgbe loading '%s': decoded a %T, not an HDR image", filename, img)
	}

	return FromHDR(hdrImg)
}

func loadLDR(filename string, decode func(io.Reader) (image.Image, error)) (mediancut.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return mediancut.Image{}, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := decode(reader)
	if err != nil {
		return mediancut.Image{}, fmt.Errorf("image loading '%s': %v", filename, err)
	}

	return FromLDR(img)
}

// FromHDR copies an HDR image into a flat RGB buffer.
func FromHDR(img hdr.Image) (mediancut.Image, error) {
	b := img.Bounds()
	pix := make([]float32, 0, b.Dx()*b.Dy()*3)

	for y:=b.Min.Y; y<b.Max.Y; y++ {
		for x:=b.Min.X; x<b.Max.X; x++ {
			r, g, bl, _ := img.HDRAt(x, y).HDRRGBA()
			pix = append(pix, float32(r), float32(g), float32(bl))
		}
	}

	return mediancut.NewImage(pix, b.Dx(), b.Dy())
}

// FromLDR linearizes an sRGB image into a flat RGB buffer, in [0,1].
func FromLDR(img image.Image) (mediancut.Image, error) {
	b := img.Bounds()
	pix := make([]float32, 0, b.Dx()*b.Dy()*3)

	for y:=b.Min.Y; y<b.Max.Y; y++ {
		for x:=b.Min.X; x<b.Max.X; x++ {
			c, _ := colorful.MakeColor(img.At(x, y)) // fully transparent comes out black
			r, g, bl := c.LinearRgb()
			pix = append(pix, float32(r), float32(g), float32(bl))
		}
	}

	return mediancut.NewImage(pix, b.Dx(), b.Dy())
}
