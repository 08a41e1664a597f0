package cmd

import "image/color"

// cubeLevels are the channel values of the 6x6x6 ANSI color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ansi256 picks the closest ANSI 256 color for a sampled cell color.
func ansi256(c color.RGBA) int {
	r, g, b := c.R, c.G, c.B

	if r == 0 && g == 0 && b == 0 {
		return 16 // cube black
	}

	// nudge very dark colors up a bit so they don't vanish on a black terminal
	if r < 15 && g < 15 && b < 15 {
		r, g, b = r+10, g+10, b+10
	}

	if spread(r, g, b) <= 10 {
		return grayIndex(r, g, b)
	}

	cube := 16 + 36*quantizeToSix(r) + 6*quantizeToSix(g) + quantizeToSix(b)

	// for near-grays the dedicated grayscale ramp is sometimes the better fit
	if spread(r, g, b) <= 30 {
		gray := grayIndex(r, g, b)
		if colorDistance(r, g, b, gray) < colorDistance(r, g, b, cube) {
			return gray
		}
	}
	return cube
}

// quantizeToSix maps an 8-bit channel to the nearest cube level (0..5).
func quantizeToSix(v uint8) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	case v < 155:
		return 2
	case v < 195:
		return 3
	case v < 235:
		return 4
	}
	return 5
}

// spread is the distance between the strongest and weakest channel.
func spread(r, g, b uint8) uint8 {
	return max(r, g, b) - min(r, g, b)
}

// grayIndex finds the closest step of the 24-step grayscale ramp (232..255).
// Near-white values map to cube white (231).
func grayIndex(r, g, b uint8) int {
	gray := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	switch {
	case gray < 8:
		return 232
	case gray > 246:
		return 231 // brighter than the last ramp step, use cube white
	case gray > 238:
		return 255
	}
	return 232 + int((gray-8)/10+0.5)
}

// colorDistance is a weighted squared distance; green differences weigh the most.
func colorDistance(r, g, b uint8, index int) float64 {
	r2, g2, b2 := ansiRGB(index)
	dr := float64(r) - float64(r2)
	dg := float64(g) - float64(g2)
	db := float64(b) - float64(b2)
	return 2*dr*dr + 4*dg*dg + 3*db*db
}

// ansiRGB returns the RGB value of a cube or grayscale index. The 16 system
// colors depend on the terminal theme and come back as mid-gray.
func ansiRGB(index int) (uint8, uint8, uint8) {
	switch {
	case index >= 232 && index <= 255:
		v := uint8(8 + 10*(index-232))
		return v, v, v
	case index >= 16 && index <= 231:
		index -= 16
		return cubeLevels[index/36], cubeLevels[(index/6)%6], cubeLevels[index%6]
	}
	return 128, 128, 128
}
