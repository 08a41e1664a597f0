package ascii

import (
	"context"
	"image/color"
)

// RenderRegion renders every tile whose anchor row lies in [rowStart, rowEnd)
// into c. Anchors sit on the frame-wide grid (multiples of cfg.TileSize), so
// the result does not depend on where a band starts. Each tile is sampled at
// its top-left pixel only.
//
// c must be sized by cfg.CanvasSize for f. Cells outside the band are not
// touched, which keeps concurrent calls on disjoint bands race free.
// The only error returned is ctx.Err(), checked between tiles.
func RenderRegion(ctx context.Context, f Frame, c *Canvas, cfg Config, rowStart, rowEnd int) error {
	size := cfg.TileSize
	rowStart = max(rowStart, 0)
	rowEnd = min(rowEnd, f.Height)
	if rowStart >= rowEnd {
		return nil
	}

	ramp := RampFor(cfg.Inverted)
	cols, rows := cfg.gridSize(f.Width, f.Height)
	done := ctx.Done()

	first := rowStart
	if r := rowStart % size; r != 0 {
		if rowStart >= rowEnd-(size-r) {
			return nil // next anchor row is past the band
		}
		first = rowStart - r + size
	}
	for y := first; y < rowEnd; {
		row := y / size
		for x := 0; x < f.Width; {
			select {
			case <-done:
				return ctx.Err()
			default:
			}

			lum, r, g, b := f.sample(x, y)
			cx, cy := cfg.Orientation.place(x/size, row, cols, rows)
			c.Set(cx, cy, Cell{
				Glyph: ramp.Glyph(lum),
				Color: color.RGBA{R: r, G: g, B: b, A: 0xff},
			})
			if x > f.Width-size {
				break
			}
			x += size
		}
		if y > rowEnd-size {
			break
		}
		y += size
	}
	return nil
}
