package probe

import(
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/lightprobe/pkg/mediancut"
)

// An EnvMap is an equirectangular environment map loaded from a
// file, held as the flat float buffer that mediancut works on. It
// implements image.Image and hdr.Image, so the tonemappers can read it.
type EnvMap struct {
	LoadFilename string
	Exposure     *Exposure // from the EXIF of LDR maps, if there was any
	mediancut.Image
}

// Implement image.Image
func (em EnvMap)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (em EnvMap)Bounds() image.Rectangle       { return image.Rect(0, 0, em.Width, em.Height) }
func (em EnvMap)At(x, y int) color.Color       { return em.HDRAt(x, y) }

// Implement hdr.Image
func (em EnvMap)HDRAt(x, y int) hdrcolor.Color {
	v := em.Image.At(x, y)
	return hdrcolor.RGB{R: v[0], G: v[1], B: v[2]}
}
func (em EnvMap)Size() int                     { return em.Width * em.Height }

func (em EnvMap)Filename() string {
	return filepath.Base(em.LoadFilename)
}

// Name is the filename without its extension, for naming outputs.
func (em EnvMap)Name() string {
	base := em.Filename()
	return base[:len(base)-len(filepath.Ext(base))]
}

func (em EnvMap)String() string {
	return fmt.Sprintf("%s: %s", em.Filename(), em.Image)
}

// Scaled returns a copy of the map with every channel multiplied by f.
func (em EnvMap)Scaled(f float64) EnvMap {
	pix := make([]float32, len(em.Pix))
	for i, v := range em.Pix {
		pix[i] = float32(float64(v) * f)
	}
	em.Pix = pix
	return em
}
