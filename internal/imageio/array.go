package imageio

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Mode selects the pixel layout of an image array.
type Mode string

// Supported modes.
const (
	RGB  Mode = "rgb"  // [h, w, 3] from 8-bit samples, alpha dropped
	RGBA Mode = "rgba" // [h, w, 4] from 16-bit samples
	Luma Mode = "luma" // [h, w, 1] from 16-bit samples
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case RGB, RGBA, Luma:
		return m, nil
	default:
		return "", tensor.ShapeErrorf("image: unknown mode %q (want rgb, rgba or luma)", s)
	}
}

// Channels returns the size of the channel axis.
func (m Mode) Channels() int {
	switch m {
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 1
	}
}

// Array wraps the decoded samples as float32 values of shape
// [height, width, channels]. Samples keep their integer range.
func (img *Image) Array(mode Mode) (*tensor.Array, error) {
	shape := tensor.Shape{img.Height, img.Width, mode.Channels()}
	data := make([]float32, shape.NumElements())

	switch mode {
	case RGB:
		pix := img.RGBA8()
		for p := range img.Width * img.Height {
			data[3*p] = float32(pix[4*p])
			data[3*p+1] = float32(pix[4*p+1])
			data[3*p+2] = float32(pix[4*p+2])
		}
	case RGBA:
		for i, v := range img.RGBA16() {
			data[i] = float32(v)
		}
	case Luma:
		for i, v := range img.Luma16() {
			data[i] = float32(v)
		}
	default:
		return nil, tensor.ShapeErrorf("image: unknown mode %q", mode)
	}
	return tensor.Wrap(data, shape)
}

// DecodeArray decodes data and wraps it in the requested layout.
func DecodeArray(data []byte, mode Mode) (*tensor.Array, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return img.Array(mode)
}
