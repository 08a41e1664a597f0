package ascii_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

// inked reports whether any pixel of r differs from bg.
func inked(img *image.RGBA, r image.Rectangle, bg color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				return true
			}
		}
	}
	return false
}

func TestRasterizeDrawsGlyphsInCells(t *testing.T) {
	c := ascii.NewCanvas(2, 1)
	c.Set(0, 0, ascii.Cell{Glyph: '@'})

	cfg := config(16, 1)
	cfg.Scale = 1
	img, err := ascii.Rasterize(context.Background(), c, cfg, ascii.RasterOptions{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())

	black := color.RGBA{A: 0xff}
	assert.True(t, inked(img, image.Rect(0, 0, 16, 16), black))
	assert.False(t, inked(img, image.Rect(16, 0, 32, 16), black))
}

func TestRasterizeClipsOversizedGlyphs(t *testing.T) {
	c := ascii.NewCanvas(3, 3)
	c.Set(1, 1, ascii.Cell{Glyph: '@'})

	cfg := config(8, 3)
	cfg.Scale = 4
	img, err := ascii.Rasterize(context.Background(), c, cfg, ascii.RasterOptions{})
	require.NoError(t, err)

	black := color.RGBA{A: 0xff}
	assert.True(t, inked(img, image.Rect(8, 8, 16, 16), black))
	assert.False(t, inked(img, image.Rect(0, 0, 24, 8), black))
	assert.False(t, inked(img, image.Rect(0, 16, 24, 24), black))
	assert.False(t, inked(img, image.Rect(0, 8, 8, 16), black))
	assert.False(t, inked(img, image.Rect(16, 8, 24, 16), black))
}

func TestRasterizeCellColor(t *testing.T) {
	c := ascii.NewCanvas(1, 1)
	c.Set(0, 0, ascii.Cell{Glyph: '#', Color: color.RGBA{R: 0xff, A: 0xff}})

	cfg := config(20, 1)
	cfg.Scale = 1
	img, err := ascii.Rasterize(context.Background(), c, cfg, ascii.RasterOptions{
		CellColor:  true,
		Background: color.Black,
	})
	require.NoError(t, err)

	var red bool
	for i := 0; i < len(img.Pix); i += 4 {
		assert.Zero(t, img.Pix[i+1])
		assert.Zero(t, img.Pix[i+2])
		red = red || img.Pix[i] > 0
	}
	assert.True(t, red)
}

func TestRasterizeWorkerCountDoesNotChangeOutput(t *testing.T) {
	cfg := config(6, 1)
	c, err := ascii.Render(context.Background(), patternFrame(60, 42), cfg)
	require.NoError(t, err)

	want, err := ascii.Rasterize(context.Background(), c, cfg, ascii.RasterOptions{})
	require.NoError(t, err)

	cfg.Workers = 5
	got, err := ascii.Rasterize(context.Background(), c, cfg, ascii.RasterOptions{})
	require.NoError(t, err)
	assert.Equal(t, want.Pix, got.Pix)
}

func TestRasterizeRejectsInvalidInput(t *testing.T) {
	_, err := ascii.Rasterize(context.Background(), ascii.NewCanvas(1, 1), config(0, 1), ascii.RasterOptions{})
	assert.ErrorIs(t, err, ascii.ErrInvalidConfig)

	_, err = ascii.Rasterize(context.Background(), nil, config(4, 1), ascii.RasterOptions{})
	assert.Error(t, err)
}
