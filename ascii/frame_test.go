package ascii_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

func TestLuminanceWeights(t *testing.T) {
	assert.InDelta(t, 254.97, ascii.Luminance(255, 255, 255), 0.01)
	assert.Equal(t, 0.0, ascii.Luminance(0, 0, 0))
	assert.InDelta(t, ascii.RedWeight*255, ascii.Luminance(255, 0, 0), 1e-9)
	assert.InDelta(t, ascii.GreenWeight*255, ascii.Luminance(0, 255, 0), 1e-9)
	assert.InDelta(t, ascii.BlueWeight*255, ascii.Luminance(0, 0, 255), 1e-9)
}

func TestFrameChannelOrders(t *testing.T) {
	cases := []struct {
		order ascii.ChannelOrder
		pix   []uint8
	}{
		{ascii.RGBA, []uint8{10, 20, 30, 255}},
		{ascii.BGRA, []uint8{30, 20, 10, 255}},
		{ascii.ARGB, []uint8{255, 10, 20, 30}},
		{ascii.RGB, []uint8{10, 20, 30}},
		{ascii.BGR, []uint8{30, 20, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.order.String(), func(t *testing.T) {
			f := ascii.Frame{Pix: tc.pix, Width: 1, Height: 1, Order: tc.order}
			require.NoError(t, f.Validate())
			r, g, b := f.RGB(0, 0)
			assert.Equal(t, []uint8{10, 20, 30}, []uint8{r, g, b})
			assert.InDelta(t, ascii.Luminance(10, 20, 30), f.LuminanceAt(0, 0), 1e-9)
		})
	}

	gray := ascii.Frame{Pix: []uint8{7, 200}, Width: 2, Height: 1, Order: ascii.Gray}
	assert.Equal(t, 200.0, gray.LuminanceAt(1, 0))
}

func TestFrameValidate(t *testing.T) {
	cases := []struct {
		name  string
		frame ascii.Frame
		ok    bool
	}{
		{"valid", ascii.Frame{Pix: make([]uint8, 12), Width: 2, Height: 2, Order: ascii.RGB}, true},
		{"padded stride", ascii.Frame{Pix: make([]uint8, 14), Width: 2, Height: 2, Stride: 8, Order: ascii.RGB}, true},
		{"zero width", ascii.Frame{Pix: make([]uint8, 12), Width: 0, Height: 2, Order: ascii.RGB}, false},
		{"negative height", ascii.Frame{Pix: make([]uint8, 12), Width: 2, Height: -1, Order: ascii.RGB}, false},
		{"short buffer", ascii.Frame{Pix: make([]uint8, 11), Width: 2, Height: 2, Order: ascii.RGB}, false},
		{"short stride", ascii.Frame{Pix: make([]uint8, 12), Width: 2, Height: 2, Stride: 4, Order: ascii.RGB}, false},
		{"unknown order", ascii.Frame{Pix: make([]uint8, 12), Width: 2, Height: 2, Order: ascii.ChannelOrder(42)}, false},
		{"nil pixels", ascii.Frame{Width: 1, Height: 1, Order: ascii.Gray}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.frame.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ascii.ErrInvalidFrame)
			}
		})
	}
}

func TestFrameFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	sub := img.SubImage(image.Rect(1, 1, 4, 4))
	f := ascii.FrameFromImage(sub)
	require.NoError(t, f.Validate())
	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 3, f.Height)
	r, g, b := f.RGB(1, 2)
	assert.Equal(t, []uint8{1, 2, 3}, []uint8{r, g, b})

	pal := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Black, color.White})
	pal.SetColorIndex(1, 0, 1)
	f = ascii.FrameFromImage(pal)
	require.NoError(t, f.Validate())
	assert.Equal(t, ascii.RGBA, f.Order)
	assert.Equal(t, 0.0, f.LuminanceAt(0, 0))
	assert.InDelta(t, 254.97, f.LuminanceAt(1, 0), 0.01)

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 99
	f = ascii.FrameFromImage(gray)
	assert.Equal(t, ascii.Gray, f.Order)
	assert.Equal(t, 99.0, f.LuminanceAt(0, 0))
}
