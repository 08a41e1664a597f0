package ascii

// Luminance weights. Every ramp threshold is tuned against these values,
// so changing them changes which glyph each gray level gets.
const (
	RedWeight   = 0.2989
	GreenWeight = 0.5870
	BlueWeight  = 0.1140
)

// Luminance returns the perceptual brightness of an 8-bit RGB sample.
// The weights sum to 0.9999, so the result stays inside [0,255].
func Luminance(r, g, b uint8) float64 {
	return RedWeight*float64(r) + GreenWeight*float64(g) + BlueWeight*float64(b)
}
