package ascii

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterOptions controls how Rasterize paints glyphs.
type RasterOptions struct {
	// Foreground is the glyph color. Nil means white.
	Foreground color.Color
	// Background fills the image before glyphs are drawn. Nil means black.
	Background color.Color
	// CellColor paints each glyph in the color sampled for its cell
	// instead of Foreground.
	CellColor bool
}

var monoFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// Rasterize draws c into a new image of c.Cols*cfg.TileSize by
// c.Rows*cfg.TileSize pixels. Each glyph is centered in its cell, sized
// cfg.TileSize*cfg.Scale pixels and clipped to the cell, so the canvas rows
// are split across cfg.Workers bands exactly like RenderParallel.
func Rasterize(ctx context.Context, c *Canvas, cfg Config, opts RasterOptions) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("ascii: rasterize: nil canvas")
	}
	fnt, err := monoFont()
	if err != nil {
		return nil, fmt.Errorf("ascii: parse glyph font: %w", err)
	}

	fg, bg := opts.Foreground, opts.Background
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Black
	}

	start := time.Now()
	size := cfg.TileSize
	dst := image.NewRGBA(image.Rect(0, 0, c.Cols*size, c.Rows*size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	points := float64(size) * cfg.Scale
	err = schedule(ctx, Partition(c.Rows, cfg.Workers), func(ctx context.Context, b Band) error {
		// Faces keep glyph buffers and are not safe for concurrent use.
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("glyph face at %.2fpt: %w", points, err)
		}
		defer func() {
			_ = face.Close()
		}()
		return drawRows(ctx, dst, c, face, size, b, fg, opts.CellColor)
	})
	if err != nil {
		logFailure("rasterize", err)
		return nil, err
	}

	Logger().Debug("ascii: rasterized canvas",
		"canvas", fmt.Sprintf("%dx%d", c.Cols, c.Rows),
		"image", fmt.Sprintf("%dx%d", dst.Rect.Dx(), dst.Rect.Dy()),
		"glyph_px", points,
		"elapsed", time.Since(start))
	return dst, nil
}

func drawRows(ctx context.Context, dst *image.RGBA, c *Canvas, face font.Face, size int, b Band, fg color.Color, cellColor bool) error {
	m := face.Metrics()
	cell := fixed.I(size)
	// Baseline that centers the face's ascent+descent inside a cell.
	baseline := (cell-m.Ascent-m.Descent)/2 + m.Ascent
	src := image.NewUniform(fg)
	done := ctx.Done()

	for y := b.Start; y < b.End; y++ {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		for x := range c.Cols {
			cl := c.At(x, y)
			if cl.Glyph == ' ' {
				continue
			}
			advance, ok := face.GlyphAdvance(cl.Glyph)
			if !ok {
				continue
			}
			rect := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
			if cellColor {
				src = image.NewUniform(cl.Color)
			}
			d := font.Drawer{
				Dst:  dst.SubImage(rect).(*image.RGBA),
				Src:  src,
				Face: face,
				Dot:  fixed.Point26_6{X: fixed.I(rect.Min.X) + (cell-advance)/2, Y: fixed.I(rect.Min.Y) + baseline},
			}
			d.DrawString(string(cl.Glyph))
		}
	}
	return nil
}
