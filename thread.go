package threadx

import (
	"runtime"
	"sync/atomic"

	"github.com/comalice/threadx/internal/gid"
	"github.com/comalice/threadx/internal/registry"
)

// Func is a thread entry point. Its return value becomes the thread's
// exit result, observable through Join. State the entry needs is captured
// by the closure rather than passed through an argument pointer.
type Func func() int

// Thread handle states. A handle from Create starts joinable and is
// consumed by exactly one Join or Detach; a handle from Current for a
// thread this layer did not start is identity-only.
const (
	stateJoinable int32 = iota
	stateJoined
	stateDetached
	stateIdentity
)

// Thread is an opaque handle for a thread of execution.
type Thread struct {
	id     uint64
	state  atomic.Int32
	done   chan struct{}
	result int // written before done closes, read only after
}

// Create starts a new thread of execution running fn, pinned to an OS
// thread for its whole lifetime. On success the caller owns the returned
// handle until it is consumed by Join or Detach. Create fails with
// ErrNoMem when the live-thread cap (SetMaxThreads) is reached and with
// ErrThread for a nil entry.
func Create(fn Func) (*Thread, error) {
	if fn == nil {
		return nil, ErrThread
	}
	if !registry.Reserve() {
		return nil, ErrNoMem
	}

	t := &Thread{done: make(chan struct{})}
	ready := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		t.id = gid.Current()
		registry.Register(t.id, t)
		close(ready)

		// Runs on normal return and on Exit (runtime.Goexit): thread-local
		// destructors fire here, on this thread, before done closes.
		defer func() {
			registry.Finalize(t.id)
			close(t.done)
		}()

		t.result = fn()
	}()

	// The handle is not usable until the new thread has registered itself.
	<-ready
	return t, nil
}

// Join blocks until t terminates and returns its exit result. It consumes
// the handle: a second Join, a Join after Detach, or a Join on an
// identity-only handle fails with ErrNotJoinable. The handle is claimed
// before blocking, so exactly one racing consumer wins.
func (t *Thread) Join() (int, error) {
	if t == nil || !t.state.CompareAndSwap(stateJoinable, stateJoined) {
		return 0, ErrNotJoinable
	}
	<-t.done
	registry.MarkJoined()
	return t.result, nil
}

// Detach declares that t will never be joined; its resources are
// reclaimed automatically when it terminates. Consumes the handle.
func (t *Thread) Detach() error {
	if t == nil || !t.state.CompareAndSwap(stateJoinable, stateDetached) {
		return ErrNotJoinable
	}
	registry.MarkDetached()
	return nil
}

// ID returns the handle's thread identity. Diagnostic only; identity
// comparisons go through Equal.
func (t *Thread) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

// Exit terminates the calling thread immediately, making code available
// to a future Join. Thread-local destructors still run. Exit does not
// return; it panics if the calling thread was not started by Create.
func Exit(code int) {
	h, ok := registry.Lookup(gid.Current())
	if !ok {
		panic("threadx: Exit called from a thread not started by Create")
	}
	t, ok := h.(*Thread)
	if !ok {
		panic("threadx: Exit called from a thread not started by Create")
	}
	t.result = code
	runtime.Goexit()
}

// Current returns a handle identifying the calling thread. For threads
// started by Create it is the same handle Create returned; for any other
// caller it is identity-only and cannot be joined or detached.
func Current() *Thread {
	g := gid.Current()
	if h, ok := registry.Lookup(g); ok {
		if t, ok := h.(*Thread); ok {
			return t
		}
	}
	t := &Thread{id: g}
	t.state.Store(stateIdentity)
	return t
}

// Equal reports whether a and b identify the same thread of execution.
func Equal(a, b *Thread) bool {
	return a != nil && b != nil && a.id == b.id
}

// Yield hints the scheduler to let another ready thread run. Purely
// advisory; no ordering or fairness guarantee.
func Yield() {
	runtime.Gosched()
}

// SetMaxThreads caps the number of concurrently live threads started by
// Create; further creations fail with ErrNoMem until a live thread
// terminates. n <= 0 removes the cap (the default).
func SetMaxThreads(n int) {
	registry.SetMaxThreads(n)
}
