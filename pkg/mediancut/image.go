package mediancut

import(
	"errors"
	"fmt"

	"github.com/abworrall/lightprobe/pkg/emath"
)

// ErrInvalidInput is returned (wrapped) whenever the image or the
// parameters break the input contract. No partial result comes back
// with it.
var ErrInvalidInput = errors.New("mediancut: invalid input")

// An Image is a flat, row-major buffer of per-channel samples from an
// equirectangular environment map. Only the first three channels of
// each pixel (R, G, B) are read; the horizontal stride is
// Channels*Width.
type Image struct {
	Pix      []float32
	Width    int
	Height   int
	Channels int
}

// NewImage wraps a raw buffer, deriving the channel count from its length.
func NewImage(pix []float32, width, height int) (Image, error) {
	if width <= 0 || height <= 0 {
		return Image{}, fmt.Errorf("image %dx%d: non-positive dimensions: %w", width, height, ErrInvalidInput)
	}
	if len(pix) % (width*height) != 0 {
		return Image{}, fmt.Errorf("image %dx%d: buffer length %d not a multiple of the pixel count: %w",
			width, height, len(pix), ErrInvalidInput)
	}

	img := Image{Pix: pix, Width: width, Height: height, Channels: len(pix) / (width*height)}
	return img, img.Validate()
}

// Validate checks the dimensions and channel count against the buffer.
func (img Image)Validate() error {
	switch {
	case img.Width <= 0 || img.Height <= 0:
		return fmt.Errorf("image %dx%d: non-positive dimensions: %w", img.Width, img.Height, ErrInvalidInput)
	case img.Channels < 3:
		return fmt.Errorf("image %dx%d: %d channels, need at least 3: %w", img.Width, img.Height, img.Channels, ErrInvalidInput)
	case len(img.Pix) != img.Width*img.Height*img.Channels:
		return fmt.Errorf("image %dx%dx%d: buffer length %d: %w",
			img.Width, img.Height, img.Channels, len(img.Pix), ErrInvalidInput)
	}
	return nil
}

// At returns the RGB value of the pixel at (x,y), unweighted.
func (img Image)At(x, y int) emath.Vec3 {
	p := img.Channels * (x + img.Width*y)
	return emath.Vec3{float64(img.Pix[p]), float64(img.Pix[p+1]), float64(img.Pix[p+2])}
}

func (img Image)String() string {
	return fmt.Sprintf("Image[%dx%d, %d channels]", img.Width, img.Height, img.Channels)
}
