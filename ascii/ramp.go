package ascii

import "math"

// RampSize is the number of stops in each glyph ramp.
const RampSize = 11

type rampStop struct {
	threshold float64
	glyph     rune
}

// Ramp maps a luminance to a glyph. Stops are ordered by strictly
// decreasing threshold and the last stop has threshold 0, so every value in
// [0,255] matches exactly one stop.
type Ramp struct {
	stops [RampSize]rampStop
}

// above5 reproduces the "g > 5" boundary as a meet-or-exceed threshold.
var above5 = math.Nextafter(5, math.Inf(1))

var (
	// normalRamp renders bright pixels as blanks and dark pixels as '@'.
	normalRamp = Ramp{stops: [RampSize]rampStop{
		{230, ' '},
		{200, '.'},
		{180, ','},
		{160, ':'},
		{130, ';'},
		{100, 'o'},
		{70, '&'},
		{50, '8'},
		{20, '%'},
		{above5, '#'},
		{0, '@'},
	}}

	// invertedRamp renders bright pixels as '@' and dark pixels as blanks.
	invertedRamp = Ramp{stops: [RampSize]rampStop{
		{230, '@'},
		{200, '#'},
		{180, '%'},
		{160, '8'},
		{130, '&'},
		{100, 'o'},
		{70, ';'},
		{50, ':'},
		{20, ','},
		{above5, '.'},
		{0, ' '},
	}}
)

// RampFor returns the inverted ramp when inverted is set, the normal one otherwise.
func RampFor(inverted bool) *Ramp {
	if inverted {
		return &invertedRamp
	}
	return &normalRamp
}

// Lookup returns the glyph for lum from the selected ramp.
func Lookup(lum float64, inverted bool) rune {
	return RampFor(inverted).Glyph(lum)
}

// Index returns the position of the first stop whose threshold lum meets,
// scanning from the brightest stop down. Out of range values are clamped.
func (r *Ramp) Index(lum float64) int {
	lum = clampLuminance(lum)
	for i := range r.stops {
		if lum >= r.stops[i].threshold {
			return i
		}
	}
	return RampSize - 1
}

// Glyph returns the glyph for lum.
func (r *Ramp) Glyph(lum float64) rune {
	return r.stops[r.Index(lum)].glyph
}

// Glyphs lists the ramp glyphs from the brightest stop to the darkest.
func (r *Ramp) Glyphs() []rune {
	out := make([]rune, RampSize)
	for i, s := range r.stops {
		out[i] = s.glyph
	}
	return out
}

// Threshold returns the lower bound of stop i.
func (r *Ramp) Threshold(i int) float64 {
	return r.stops[i].threshold
}

func clampLuminance(lum float64) float64 {
	switch {
	case math.IsNaN(lum), lum < 0:
		return 0
	case lum > 255:
		return 255
	}
	return lum
}
