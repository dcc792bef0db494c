package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/born-ml/ndarray/internal/tensor"
)

// testImage is a 3x2 opaque image whose pixel (x, y) has
// R = 10*x + y, G = 100 + x, B = 200 + y.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10*x + y), G: uint8(100 + x), B: uint8(200 + y), A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	img, err := Decode(encodePNG(t, testImage()))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, "png", img.Format)

	pix := img.RGBA8()
	require.Len(t, pix, 3*2*4)
	// Pixel (x=2, y=1).
	assert.Equal(t, []uint8{21, 102, 201, 255}, pix[4*(1*3+2):4*(1*3+2)+4])

	wide := img.RGBA16()
	require.Len(t, wide, 3*2*4)
	assert.Equal(t, []uint16{21 * 257, 102 * 257, 201 * 257, 65535}, wide[4*5:4*5+4])
}

func TestDecode_BMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage()))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "bmp", img.Format)

	arr, err := img.Array(RGB)
	require.NoError(t, err)
	want, err := DecodeArray(encodePNG(t, testImage()), RGB)
	require.NoError(t, err)
	assert.True(t, want.Equal(arr))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, tensor.ErrDecode)

	_, err = Decode([]byte("definitely not an image"))
	require.ErrorIs(t, err, tensor.ErrDecode)

	// Truncated PNG.
	data := encodePNG(t, testImage())
	_, err = Decode(data[:len(data)/2])
	require.ErrorIs(t, err, tensor.ErrDecode)
}

func TestArray_Layouts(t *testing.T) {
	data := encodePNG(t, testImage())

	rgb, err := DecodeArray(data, RGB)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 3}, rgb.Shape())
	v, err := rgb.At(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(21), v)
	v, err = rgb.At(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(101), v)

	rgba, err := DecodeArray(data, RGBA)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 4}, rgba.Shape())
	v, err = rgba.At(1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(201*257), v)
	v, err = rgba.At(0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(65535), v)
}

func TestArray_Luma(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix = []uint8{0, 64, 128, 255}

	arr, err := DecodeArray(encodePNG(t, gray), Luma)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 1}, arr.Shape())
	assert.Equal(t, []float32{0, 64 * 257, 128 * 257, 65535}, arr.Buffer())
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"rgb", "rgba", "luma"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}
	_, err := ParseMode("cmyk")
	require.ErrorIs(t, err, tensor.ErrShape)

	assert.Equal(t, 3, RGB.Channels())
	assert.Equal(t, 4, RGBA.Channels())
	assert.Equal(t, 1, Luma.Channels())
}
