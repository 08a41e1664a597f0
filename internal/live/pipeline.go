// Package live runs a preview loop where newer frames replace frames that
// are still being rendered.
package live

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/log"
)

// Result is one finished render.
type Result struct {
	// Seq is the position of the frame in the input stream, starting at 0.
	Seq     uint64
	Canvas  *ascii.Canvas
	Err     error
	Elapsed time.Duration
}

// Pipeline renders the latest frame it has been given. A frame that arrives
// while another is rendering cancels that render; only the newest waiting
// frame is rendered next.
type Pipeline struct {
	cfg     ascii.Config
	render  func(context.Context, ascii.Frame, ascii.Config) (*ascii.Canvas, error)
	dropped atomic.Uint64
}

// New returns a pipeline rendering with cfg.
func New(cfg ascii.Config) *Pipeline {
	return &Pipeline{cfg: cfg, render: ascii.RenderParallel}
}

// Dropped returns how many frames were skipped or canceled so far.
func (p *Pipeline) Dropped() uint64 { return p.dropped.Load() }

type job struct {
	seq   uint64
	frame ascii.Frame
}

// Run consumes frames until the channel is closed and every accepted frame
// is finished, or until ctx is done. emit is called from Run's goroutine
// for every render that was not superseded, including failed ones. Frames
// must not be modified after they are sent.
func (p *Pipeline) Run(ctx context.Context, frames <-chan ascii.Frame, emit func(Result)) error {
	if err := p.cfg.Validate(); err != nil {
		return err
	}

	var (
		seq     uint64
		pending *job
		busy    bool
		cancel  context.CancelFunc = func() {}
	)
	done := make(chan Result, 1)

	start := func(j job) {
		busy = true
		var rctx context.Context
		rctx, cancel = context.WithCancel(ctx)
		go func() {
			t := time.Now()
			c, err := p.render(rctx, j.frame, p.cfg)
			done <- Result{Seq: j.seq, Canvas: c, Err: err, Elapsed: time.Since(t)}
		}()
	}
	defer func() { cancel() }()

	for {
		select {
		case <-ctx.Done():
			cancel()
			if busy {
				<-done
			}
			return ctx.Err()

		case f, ok := <-frames:
			if !ok {
				frames = nil
				if !busy {
					return nil
				}
				continue
			}
			j := job{seq: seq, frame: f}
			seq++
			if !busy {
				start(j)
				continue
			}
			if pending != nil {
				p.dropped.Add(1)
			}
			pending = &j
			cancel()

		case r := <-done:
			busy = false
			cancel()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(r.Err, context.Canceled) {
				p.dropped.Add(1)
				ascii.Logger().Log(ctx, log.LevelTrace, "live: frame superseded", "seq", r.Seq)
			} else {
				emit(r)
			}
			if pending != nil {
				start(*pending)
				pending = nil
			} else if frames == nil {
				return nil
			}
		}
	}
}
