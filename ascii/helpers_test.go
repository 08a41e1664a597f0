package ascii_test

import "github.com/coffeeboi0811/glyphcam/ascii"

// grayFrame builds an RGB frame from rows of gray levels.
func grayFrame(rows ...[]uint8) ascii.Frame {
	h, w := len(rows), len(rows[0])
	pix := make([]uint8, 0, w*h*3)
	for _, row := range rows {
		for _, v := range row {
			pix = append(pix, v, v, v)
		}
	}
	return ascii.Frame{Pix: pix, Width: w, Height: h, Order: ascii.RGB}
}

func uniformFrame(w, h int, v uint8) ascii.Frame {
	pix := make([]uint8, w*h*4)
	for i := range pix {
		pix[i] = v
	}
	return ascii.Frame{Pix: pix, Width: w, Height: h, Order: ascii.RGBA}
}

// patternFrame returns a deterministic, non-uniform BGRA frame.
func patternFrame(w, h int) ascii.Frame {
	pix := make([]uint8, w*h*4)
	for y := range h {
		for x := range w {
			i := (y*w + x) * 4
			pix[i] = uint8(x * 7)
			pix[i+1] = uint8(y * 11)
			pix[i+2] = uint8((x*y + 31*x) % 256)
			pix[i+3] = 0xff
		}
	}
	return ascii.Frame{Pix: pix, Width: w, Height: h, Order: ascii.BGRA}
}

func config(size, workers int) ascii.Config {
	cfg := ascii.DefaultConfig()
	cfg.TileSize = size
	cfg.Workers = workers
	return cfg
}
