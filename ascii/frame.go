package ascii

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ChannelOrder describes how the channels of one pixel are laid out in Frame.Pix.
type ChannelOrder int

const (
	RGBA ChannelOrder = iota // r, g, b, a
	BGRA                     // b, g, r, a (common camera/bitmap layout)
	ARGB                     // a, r, g, b
	RGB                      // r, g, b
	BGR                      // b, g, r (OpenCV default)
	Gray                     // single luminance channel
)

var channelOrderNames = [...]string{"rgba", "bgra", "argb", "rgb", "bgr", "gray"}

func (o ChannelOrder) String() string {
	if o < 0 || int(o) >= len(channelOrderNames) {
		return fmt.Sprintf("ChannelOrder(%d)", int(o))
	}
	return channelOrderNames[o]
}

// Channels returns the number of bytes per pixel, or 0 for an unknown order.
func (o ChannelOrder) Channels() int {
	switch o {
	case RGBA, BGRA, ARGB:
		return 4
	case RGB, BGR:
		return 3
	case Gray:
		return 1
	}
	return 0
}

// offsets returns the byte offsets of red, green and blue inside a pixel.
func (o ChannelOrder) offsets() (r, g, b int) {
	switch o {
	case BGRA, BGR:
		return 2, 1, 0
	case ARGB:
		return 1, 2, 3
	case Gray:
		return 0, 0, 0
	}
	return 0, 1, 2
}

// Frame is a read-only view of a caller-owned pixel buffer.
type Frame struct {
	Pix    []uint8
	Width  int
	Height int
	// Stride is the number of bytes between vertically adjacent pixels.
	// Zero means Width * Order.Channels().
	Stride int
	Order  ChannelOrder
}

func (f Frame) stride() int {
	if f.Stride == 0 {
		return f.Width * f.Order.Channels()
	}
	return f.Stride
}

// Validate reports whether the frame can be sampled without going out of bounds.
func (f Frame) Validate() error {
	ch := f.Order.Channels()
	if ch == 0 {
		return fmt.Errorf("%w: unknown channel order %d", ErrInvalidFrame, int(f.Order))
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	stride := f.stride()
	if stride < f.Width*ch {
		return fmt.Errorf("%w: stride %d is shorter than a %d pixel %s row", ErrInvalidFrame, stride, f.Width, f.Order)
	}
	need := (f.Height-1)*stride + f.Width*ch
	if len(f.Pix) < need {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidFrame, len(f.Pix), need)
	}
	return nil
}

// RGB returns the red, green and blue samples of the pixel at (x, y).
// Gray frames return the same value for all three.
func (f Frame) RGB(x, y int) (r, g, b uint8) {
	i := y*f.stride() + x*f.Order.Channels()
	ro, gro, bo := f.Order.offsets()
	return f.Pix[i+ro], f.Pix[i+gro], f.Pix[i+bo]
}

// LuminanceAt returns the luminance of the pixel at (x, y).
func (f Frame) LuminanceAt(x, y int) float64 {
	lum, _, _, _ := f.sample(x, y)
	return lum
}

// sample returns the luminance and color of the pixel at (x, y). Gray frames
// use the stored value as luminance.
func (f Frame) sample(x, y int) (lum float64, r, g, b uint8) {
	r, g, b = f.RGB(x, y)
	if f.Order == Gray {
		return float64(r), r, g, b
	}
	return Luminance(r, g, b), r, g, b
}

// FrameFromImage wraps img as a Frame. RGBA, NRGBA and Gray images are used
// in place; other image types are converted into a new RGBA buffer.
// Alpha is ignored.
func FrameFromImage(img image.Image) Frame {
	switch m := img.(type) {
	case *image.RGBA:
		return frameOf(m.Pix, m.Stride, m.Rect, RGBA)
	case *image.NRGBA:
		return frameOf(m.Pix, m.Stride, m.Rect, RGBA)
	case *image.Gray:
		return frameOf(m.Pix, m.Stride, m.Rect, Gray)
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return Frame{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy(), Stride: dst.Stride, Order: RGBA}
}

// frameOf builds a frame over an image buffer. Image Pix slices already
// start at rect.Min.
func frameOf(pix []uint8, stride int, rect image.Rectangle, order ChannelOrder) Frame {
	if rect.Empty() {
		return Frame{Order: order}
	}
	return Frame{
		Pix:    pix,
		Width:  rect.Dx(),
		Height: rect.Dy(),
		Stride: stride,
		Order:  order,
	}
}
