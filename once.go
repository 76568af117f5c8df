package threadx

import (
	"sync/atomic"

	"github.com/comalice/threadx/internal/waitq"
)

// OnceFlag states: a tri-state machine rather than a boolean, so callers
// racing between the check and the run either win the claim or park until
// the winner finishes.
const (
	onceNotRun int32 = iota
	onceRunning
	onceDone
)

// OnceFlag guards one-time initialization. The zero value is ready to use
// and starts in the not-run state. There is no way to reset a flag or to
// observe whether it has run.
type OnceFlag struct {
	state atomic.Int32
	q     waitq.Queue
}

// CallOnce runs fn exactly once per flag across all racing callers. The
// first caller to claim the flag runs fn to completion; every concurrent
// and subsequent caller blocks until that execution finishes, then returns
// without invoking fn. After the first completion the flag is permanently
// done and CallOnce is a no-op.
//
// If fn panics the flag stays in the running state and waiters stay
// blocked; recovery is not specified.
func CallOnce(flag *OnceFlag, fn func()) {
	if flag.state.Load() == onceDone {
		return
	}

	if flag.state.CompareAndSwap(onceNotRun, onceRunning) {
		fn()
		flag.state.Store(onceDone)
		flag.q.Broadcast()
		return
	}

	for {
		ch := flag.q.Add()
		// The runner may have finished between the claim attempt and the
		// enqueue; its broadcast would then predate our channel.
		if flag.state.Load() == onceDone {
			flag.q.Broadcast() // drain, including our own entry
			return
		}
		<-ch
		if flag.state.Load() == onceDone {
			return
		}
	}
}
