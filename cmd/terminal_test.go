package cmd

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

func TestWriteCanvasPlain(t *testing.T) {
	c := ascii.NewCanvas(2, 2)
	c.Set(0, 0, ascii.Cell{Glyph: '@'})
	c.Set(1, 1, ascii.Cell{Glyph: 'o'})

	var buf bytes.Buffer
	require.NoError(t, writeCanvas(&buf, c, false))
	assert.Equal(t, "@ \n o\n", buf.String())
}

func TestWriteCanvasColorOnlyOnChange(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	c := ascii.NewCanvas(3, 1)
	c.Set(0, 0, ascii.Cell{Glyph: '#', Color: red})
	c.Set(1, 0, ascii.Cell{Glyph: '#', Color: red})
	c.Set(2, 0, ascii.Cell{Glyph: '&', Color: blue})

	var buf bytes.Buffer
	require.NoError(t, writeCanvas(&buf, c, true))
	assert.Equal(t, "\033[38;5;196m##\033[38;5;21m&\n\033[0m", buf.String())
}
