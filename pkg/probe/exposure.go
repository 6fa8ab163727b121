package probe

import(
	"fmt"
	"math"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// An Exposure is how an LDR env map was shot, read from its EXIF. It
// lets us put maps shot at different settings onto a common scale.
type Exposure struct {
	ISO            int64
	FNumber        float64
	ShutterSeconds float64
}

func (e Exposure)String() string {
	return fmt.Sprintf("ISO%d f/%.1f %.5fs (EV100=%.2f)", e.ISO, e.FNumber, e.ShutterSeconds, e.EV100())
}

func (e Exposure)Validate() error {
	if e.ISO <= 0 || e.FNumber <= 0 || e.ShutterSeconds <= 0 {
		return fmt.Errorf("incomplete exposure %+v", e)
	}
	return nil
}

// EV100 is the exposure value normalized to ISO 100;
// https://en.wikipedia.org/wiki/Exposure_value
func (e Exposure)EV100() float64 {
	return math.Log2(e.FNumber*e.FNumber/e.ShutterSeconds) - math.Log2(float64(e.ISO)/100.0)
}

// Scale converts linear pixel values into absolute luminance (cd/m^2),
// using the reflected-light meter equation (K=12.5) and assuming the
// camera metered the scene to middle gray.
func (e Exposure)Scale() float64 {
	const meterK = 12.5
	const middleGray = 0.18
	return math.Pow(2, e.EV100()) * meterK / 100.0 / middleGray
}

// readExposure pulls the exposure triple out of a file's EXIF. Not
// finding any is not an error; ok is false.
func readExposure(filename string) (e Exposure, ok bool, err error) {
	reader, err := os.Open(filename)
	if err != nil {
		return e, false, fmt.Errorf("open+r exif '%s': %v", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return e, false, nil
	}

	if tag,err := ex.Get(exif.ISOSpeedRatings); err != nil {
		return e, false, nil
	} else if val,err := tag.Int64(0); err != nil {
		return e, false, fmt.Errorf("exif ISO '%s': %v", filename, err)
	} else {
		e.ISO = val
	}

	if tag,err := ex.Get(exif.FNumber); err != nil {
		return e, false, nil
	} else if num,denom,err := tag.Rat2(0); err != nil || denom == 0 {
		return e, false, fmt.Errorf("exif FNumber '%s': %d/%d %v", filename, num, denom, err)
	} else {
		e.FNumber = float64(num) / float64(denom)
	}

	if tag,err := ex.Get(exif.ExposureTime); err != nil {
		return e, false, nil
	} else if num,denom,err := tag.Rat2(0); err != nil || denom == 0 {
		return e, false, fmt.Errorf("exif ExposureTime '%s': %d/%d %v", filename, num, denom, err)
	} else {
		e.ShutterSeconds = float64(num) / float64(denom)
	}

	if err := e.Validate(); err != nil {
		return e, false, fmt.Errorf("image '%s' EV: %v", filename, err)
	}

	return e, true, nil
}
