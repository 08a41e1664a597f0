// Package imgio loads frames from image files and writes exported pictures.
package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png" // registering decoders for image.Decode
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions.
var ErrUnsupportedFormat = errors.New("imgio: unsupported image format")

// Picture is a decoded still image and the orientation its EXIF data asks for.
type Picture struct {
	Image       image.Image
	Format      string
	Orientation ascii.Orientation
}

// Load decodes the image at path.
func Load(path string) (Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Picture{}, err
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image and reads its EXIF orientation. Images without
// EXIF data are Upright.
func Decode(r io.ReadSeeker) (Picture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Picture{}, fmt.Errorf("imgio: decode: %w", err)
	}

	pic := Picture{Image: img, Format: format}
	if _, err := r.Seek(0, io.SeekStart); err == nil {
		pic.Orientation = ascii.OrientationFromEXIF(exifOrient(r))
	}
	return pic, nil
}

// exifOrient returns the EXIF orientation tag, or 1 when there is none.
func exifOrient(r io.Reader) int {
	x, err := exif.Decode(r)
	if err == nil && x != nil {
		orient, err := x.Get(exif.Orientation)
		if err == nil && orient != nil && orient.Count != 0 {
			if i, err := orient.Int(0); err == nil {
				return i
			}
		}
	}
	return 1
}

// Frame is one image of an animation and how long it stays on screen.
type Frame struct {
	Image *image.RGBA
	Delay time.Duration
}

// minDelay is used for GIF frames that declare no delay, like browsers do.
const minDelay = 100 * time.Millisecond

// LoadFrames decodes every frame of an animated GIF, each composited onto
// the full logical screen. Other formats return a single frame.
func LoadFrames(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		pic, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []Frame{{Image: toRGBA(pic.Image), Delay: minDelay}}, nil
	}
	return composite(g), nil
}

func composite(g *gif.GIF) []Frame {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}

	screen := image.NewRGBA(bounds)
	frames := make([]Frame, 0, len(g.Image))
	for i, p := range g.Image {
		var restore *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			copy(restore.Pix, screen.Pix)
		}

		draw.Draw(screen, p.Bounds(), p, p.Bounds().Min, draw.Over)

		out := image.NewRGBA(bounds)
		copy(out.Pix, screen.Pix)
		delay := minDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		frames = append(frames, Frame{Image: out, Delay: delay})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(screen, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			screen = restore
		}
	}
	return frames
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok {
		return m
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Fit shrinks img to at most maxWidth pixels wide, keeping the aspect
// ratio. Images already narrow enough, or maxWidth == 0, are returned as is.
func Fit(img image.Image, maxWidth uint) image.Image {
	if maxWidth == 0 || uint(img.Bounds().Dx()) <= maxWidth {
		return img
	}
	return resize.Resize(maxWidth, 0, img, resize.Lanczos3) // 0 height keeps the aspect ratio
}

// Save encodes img by the extension of path (png, jpg, jpeg, gif, tif,
// tiff, bmp), creating parent directories as needed.
func Save(path string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return imaging.Save(img, path, imaging.JPEGQuality(90))
}

// NumberedPath returns path with "-NNN" inserted before the extension.
func NumberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), n, ext)
}
