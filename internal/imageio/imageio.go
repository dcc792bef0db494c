// Package imageio decodes encoded images into the pixel layouts the array
// engine wraps: 8-bit RGBA, 16-bit RGBA and 16-bit luminance.
package imageio

import (
	"bytes"
	"image"

	// Standard decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Image is a decoded image.
type Image struct {
	Width  int
	Height int
	Format string // registered decoder name, e.g. "png"

	src image.Image
}

// Decode decodes png, jpeg, gif, bmp, tiff or webp data. Failures wrap
// tensor.ErrDecode.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.WithMessage(tensor.ErrDecode, "image: empty input")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithMessagef(tensor.ErrDecode, "image: %v", err)
	}

	bounds := img.Bounds()
	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		src:    img,
	}, nil
}

// convert draws the source into dst, whose bounds start at the origin.
func (img *Image) convert(dst draw.Image) {
	draw.Draw(dst, dst.Bounds(), img.src, img.src.Bounds().Min, draw.Src)
}

func (img *Image) rect() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// RGBA8 returns non-premultiplied 8-bit samples, 4 per pixel, row-major.
func (img *Image) RGBA8() []uint8 {
	if nrgba, ok := img.src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) && nrgba.Stride == 4*img.Width {
		return append([]uint8(nil), nrgba.Pix[:4*img.Width*img.Height]...)
	}
	dst := image.NewNRGBA(img.rect())
	img.convert(dst)
	return dst.Pix
}

// RGBA16 returns non-premultiplied 16-bit samples, 4 per pixel, row-major.
func (img *Image) RGBA16() []uint16 {
	dst := image.NewNRGBA64(img.rect())
	img.convert(dst)
	return bigEndian16(dst.Pix)
}

// Luma16 returns 16-bit luminance samples, 1 per pixel, row-major.
func (img *Image) Luma16() []uint16 {
	dst := image.NewGray16(img.rect())
	img.convert(dst)
	return bigEndian16(dst.Pix)
}

// bigEndian16 unpacks the big-endian byte pairs of image's 16-bit formats.
func bigEndian16(pix []uint8) []uint16 {
	out := make([]uint16, len(pix)/2)
	for i := range out {
		out[i] = uint16(pix[2*i])<<8 | uint16(pix[2*i+1])
	}
	return out
}
