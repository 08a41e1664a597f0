package ascii

import (
	"fmt"
	"math"
	"strings"
)

// Orientation maps the tile grid of a frame onto the canvas. The values
// follow the EXIF orientation tag minus one, so Upright is the zero value.
type Orientation int

const (
	Upright    Orientation = iota // EXIF 1
	FlipH                         // EXIF 2, mirrored left to right
	Rotate180                     // EXIF 3
	FlipV                         // EXIF 4, mirrored top to bottom
	Transpose                     // EXIF 5, x and y swapped
	Rotate90                      // EXIF 6, rotated 90 degrees clockwise
	Transverse                    // EXIF 7, transposed across the anti-diagonal
	Rotate270                     // EXIF 8, rotated 90 degrees counter-clockwise
)

var orientationNames = [...]string{
	"upright", "flip-h", "rotate180", "flip-v",
	"transpose", "rotate90", "transverse", "rotate270",
}

func (o Orientation) String() string {
	if !o.valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

func (o Orientation) valid() bool {
	return o >= Upright && o <= Rotate270
}

// SwapsAxes reports whether columns of the frame become rows of the canvas.
func (o Orientation) SwapsAxes() bool {
	return o >= Transpose && o <= Rotate270
}

// ParseOrientation parses the names returned by Orientation.String.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Upright, nil
	}
	for i, name := range orientationNames {
		if s == name {
			return Orientation(i), nil
		}
	}
	return Upright, fmt.Errorf("%w: unknown orientation %q", ErrInvalidConfig, s)
}

// OrientationFromEXIF converts an EXIF orientation tag (1..8). Anything
// else is treated as Upright.
func OrientationFromEXIF(tag int) Orientation {
	if tag < 1 || tag > 8 {
		return Upright
	}
	return Orientation(tag - 1)
}

// Config holds the parameters of one render call.
type Config struct {
	// TileSize is the edge length of a tile in frame pixels.
	TileSize int
	// Scale is the glyph size relative to a tile when rasterizing.
	Scale float64
	// Workers is the number of row bands rendered concurrently.
	Workers int
	// Inverted selects the inverted glyph ramp.
	Inverted bool
	// Orientation maps frame tiles onto canvas cells.
	Orientation Orientation
}

// DefaultConfig returns tile size 10, scale 0.8 and 8 workers with the
// normal ramp, so bright pixels render as blanks.
func DefaultConfig() Config {
	return Config{
		TileSize: 10,
		Scale:    0.8,
		Workers:  8,
	}
}

// Validate rejects configs that would make a render undefined. Nothing is
// clamped to a default.
func (c Config) Validate() error {
	if c.TileSize < 1 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be a positive number, got %v", ErrInvalidConfig, c.Scale)
	}
	if !c.Orientation.valid() {
		return fmt.Errorf("%w: unknown orientation %d", ErrInvalidConfig, int(c.Orientation))
	}
	return nil
}

// gridSize returns the number of tile columns and rows covering a w x h frame.
// A partial tile at the right or bottom edge counts when its anchor is inside.
func (c Config) gridSize(w, h int) (cols, rows int) {
	return ceilDiv(w, c.TileSize), ceilDiv(h, c.TileSize)
}

// ceilDiv is ceil(n/d) for d > 0 without overflowing near math.MaxInt.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return 1 + (n-1)/d
}

// CanvasSize returns the canvas dimensions produced for a w x h frame.
func (c Config) CanvasSize(w, h int) (cols, rows int) {
	cols, rows = c.gridSize(w, h)
	if c.Orientation.SwapsAxes() {
		return rows, cols
	}
	return cols, rows
}

// place maps tile (col, row) of a cols x rows grid to a canvas cell.
func (o Orientation) place(col, row, cols, rows int) (x, y int) {
	switch o {
	case FlipH:
		return cols - 1 - col, row
	case Rotate180:
		return cols - 1 - col, rows - 1 - row
	case FlipV:
		return col, rows - 1 - row
	case Transpose:
		return row, col
	case Rotate90:
		return rows - 1 - row, col
	case Transverse:
		return rows - 1 - row, cols - 1 - col
	case Rotate270:
		return row, cols - 1 - col
	}
	return col, row
}
