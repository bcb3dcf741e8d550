package dump

import "errors"

var (
	ErrDepthTooSmall    = errors.New("dump: depth budget must be at least 1")
	ErrTooManyLabels    = errors.New("dump: more labels than values")
	ErrPrototypeFrozen  = errors.New("dump: prototype already overridden")
	ErrNoCaptureLayer   = errors.New("dump: no capture layer to pop")
	ErrCaptureCorrupted = errors.New("dump: capture stack corrupted during render")
)
