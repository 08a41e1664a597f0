// Package ascii turns frames into ASCII-art glyph canvases.
//
// A render walks the frame in square tiles, samples the luminance of each
// tile's anchor pixel, maps it to a glyph through a fixed 11-entry ramp and
// stores it in a Canvas. RenderParallel splits the frame rows into bands and
// renders them concurrently; Rasterize draws a finished canvas back into an
// image.
//
// Frames and canvases belong to the caller. Nothing is retained between
// calls.
package ascii
