package ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("ascii: invalid config")
	// ErrInvalidFrame is wrapped by every Frame validation failure.
	ErrInvalidFrame = errors.New("ascii: invalid frame")
)

// BandError reports a failure inside one worker band.
type BandError struct {
	Band Band
	Err  error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("ascii: band %d [%d,%d) failed: %v", e.Band.Index, e.Band.Start, e.Band.End, e.Err)
}

func (e *BandError) Unwrap() error { return e.Err }
