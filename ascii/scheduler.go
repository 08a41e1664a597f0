package ascii

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"
)

// Band is a contiguous range of rows [Start, End) handled by one worker.
type Band struct {
	Index int
	Start int
	End   int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.End - b.Start }

// Partition splits rows into workers contiguous bands of rows/workers rows.
// The last band also takes the remainder, so the bands cover every row
// exactly once. When workers exceeds rows the leading bands are empty.
func Partition(rows, workers int) []Band {
	if workers < 1 {
		return nil
	}
	rows = max(rows, 0)
	step := rows / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Index: i, Start: i * step, End: (i + 1) * step}
	}
	bands[workers-1].End = rows
	return bands
}

// RenderParallel renders f into a new canvas using cfg.Workers concurrent
// row bands and returns once every band has finished.
//
// Invalid configs and frames are rejected before any work starts. If a band
// fails the remaining bands are canceled and all band failures are returned
// as one error; no canvas is returned in that case. Canceling ctx aborts the
// render between tiles and returns ctx.Err().
func RenderParallel(ctx context.Context, f Frame, cfg Config) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	cols, rows := cfg.CanvasSize(f.Width, f.Height)
	c := NewCanvas(cols, rows)

	err := schedule(ctx, Partition(f.Height, cfg.Workers), func(ctx context.Context, b Band) error {
		return RenderRegion(ctx, f, c, cfg, b.Start, b.End)
	})
	if err != nil {
		logFailure("render", err)
		return nil, err
	}

	Logger().Debug("ascii: rendered frame",
		"frame", fmt.Sprintf("%dx%d", f.Width, f.Height),
		"canvas", fmt.Sprintf("%dx%d", cols, rows),
		"tile", cfg.TileSize,
		"workers", cfg.Workers,
		"elapsed", time.Since(start))
	return c, nil
}

// Render is RenderParallel.
func Render(ctx context.Context, f Frame, cfg Config) (*Canvas, error) {
	return RenderParallel(ctx, f, cfg)
}

// RenderImage renders img, see FrameFromImage for how it is sampled.
func RenderImage(ctx context.Context, img image.Image, cfg Config) (*Canvas, error) {
	return RenderParallel(ctx, FrameFromImage(img), cfg)
}

// schedule runs work for every band and waits for all of them. A single
// band runs on the calling goroutine.
func schedule(ctx context.Context, bands []Band, work func(context.Context, Band) error) error {
	if len(bands) == 1 {
		return runBand(ctx, bands[0], work)
	}

	g, gctx := errgroup.WithContext(ctx)
	errs := make([]error, len(bands))
	for i, b := range bands {
		if b.Len() == 0 {
			continue
		}
		g.Go(func() error {
			errs[i] = runBand(gctx, b, work)
			return errs[i]
		})
	}
	_ = g.Wait()

	var failed []error
	for _, err := range errs {
		var be *BandError
		if errors.As(err, &be) {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return errors.Join(failed...)
	}
	return ctx.Err()
}

// runBand calls work and converts panics and unexpected errors into a
// *BandError. Context errors are passed through unchanged.
func runBand(ctx context.Context, b Band, work func(context.Context, Band) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &BandError{Band: b, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	err = work(ctx, b)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &BandError{Band: b, Err: err}
}

func logFailure(op string, err error) {
	var be *BandError
	if errors.As(err, &be) {
		Logger().Warn("ascii: "+op+" failed", "err", err)
	}
}
