package threadx

import "errors"

// Status sentinels. Success is a nil error; every recoverable failure
// surfaced by this layer is one of the values below. Nothing is queued,
// logged, or retried internally.
var (
	// ErrBusy reports a could-not-proceed-right-now condition: trylock on
	// a held mutex, or a blocking lock the calling thread already holds.
	ErrBusy = errors.New("threadx: busy")

	// ErrNoMem reports resource exhaustion, such as the live-thread cap.
	ErrNoMem = errors.New("threadx: out of memory")

	// ErrNotJoinable reports a Join or Detach on a handle that was already
	// consumed, or on an identity-only handle from Current.
	ErrNotJoinable = errors.New("threadx: thread not joinable")

	// ErrThread is the generic failure for operations with no more
	// specific cause.
	ErrThread = errors.New("threadx: thread error")
)
