package probe

import(
	"image"
	"image/color"
	"testing"
)

// twoToneImage is 3/4 dark blue, 1/4 bright orange.
func twoToneImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y:=0; y<40; y++ {
		for x:=0; x<40; x++ {
			c := color.RGBA{10, 20, 120, 255}
			if x >= 30 {
				c = color.RGBA{250, 160, 20, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPalette(t *testing.T) {
	for _, method := range PaletteMethods {
		palette, err := Palette(twoToneImage(), 2, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if len(palette) == 0 || len(palette) > 2 {
			t.Fatalf("%s: got %d colors, want 1 or 2", method, len(palette))
		}

		// Darkest first
		for i:=1; i<len(palette); i++ {
			r0, g0, b0 := palette[i-1].LinearRgb()
			r1, g1, b1 := palette[i].LinearRgb()
			if 0.2126*r0 + 0.7152*g0 + 0.0722*b0 > 0.2126*r1 + 0.7152*g1 + 0.0722*b1 {
				t.Errorf("%s: palette not sorted by brightness: %s before %s", method, palette[i-1].Hex(), palette[i].Hex())
			}
		}
	}
}

func TestPaletteUnknownMethod(t *testing.T) {
	if _, err := Palette(twoToneImage(), 2, "median"); err == nil {
		t.Errorf("expected an error for an unknown method")
	}
}

func TestPaletteZero(t *testing.T) {
	palette, err := Palette(twoToneImage(), 0, "dominantcolor")
	if err != nil || len(palette) != 0 {
		t.Errorf("k=0: got %v, %v", palette, err)
	}
}
