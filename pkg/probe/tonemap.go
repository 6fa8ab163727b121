package probe

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
)

var(
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

func IsTonemapper(name string) bool {
	for _, n := range Tonemappers {
		if n == name {
			return true
		}
	}
	return false
}

// SetupTonemapper returns the named operator over `img`. Environment
// maps usually have a sun or a few lamps orders of magnitude brighter
// than the rest, so the defaults are nudged to keep the sky readable.
func SetupTonemapper(name string, img hdr.Image) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":
		op := tmo.NewDefaultDrago03(img)
		op.Bias = 0.85
		return op, nil

	case "durand":
		return tmo.NewDefaultDurand(img), nil

	case "icam06":
		op := tmo.NewDefaultICam06(img)
		op.MaxClipping = 0.999
		return op, nil

	case "linear":
		return tmo.NewLinear(img), nil

	case "reinhard05":
		op := tmo.NewDefaultReinhard05(img)
		op.Light = 0.5
		return op, nil
	}

	return nil, fmt.Errorf("ToneMapper %q not recognized, wanted %s", name, ListTonemappers())
}

// Tonemap renders an LDR view of an HDR image.
func Tonemap(name string, img hdr.Image) (image.Image, error) {
	op, err := SetupTonemapper(name, img)
	if err != nil {
		return nil, err
	}
	return op.Perform(), nil
}
