package threadx

import (
	"sync"
	"sync/atomic"

	"github.com/comalice/threadx/internal/gid"
)

// MutexMode declares the caller's intent when creating a mutex. The
// values combine as a bitmask. Every mode currently receives plain
// non-recursive semantics; the mode is recorded, not enforced.
type MutexMode int

const (
	MutexPlain     MutexMode = 0
	MutexRecursive MutexMode = 1
	MutexTimed     MutexMode = 2
	MutexTry       MutexMode = 4
)

// Mutex provides mutual exclusion. It starts unlocked and is owned by at
// most one thread at a time while locked. The zero value is not ready;
// use NewMutex.
type Mutex struct {
	mu    sync.Mutex
	mode  MutexMode
	owner atomic.Uint64 // thread id of the holder, 0 when unlocked
}

// NewMutex constructs an unlocked mutex. The mode selects declared intent
// only; see MutexMode.
func NewMutex(mode MutexMode) (*Mutex, error) {
	return &Mutex{mode: mode}, nil
}

// Mode reports the intent the mutex was created with.
func (m *Mutex) Mode() MutexMode {
	return m.mode
}

// Lock blocks until the calling thread holds exclusive ownership of m.
// A re-lock by the thread that already holds m is detected and reported
// as ErrBusy instead of blocking forever. The detection is a best-effort
// diagnostic, not a correctness guarantee.
func (m *Mutex) Lock() error {
	self := gid.Current()
	if m.owner.Load() == self {
		return ErrBusy
	}
	m.mu.Lock()
	m.owner.Store(self)
	return nil
}

// TryLock attempts to acquire m without blocking, returning ErrBusy
// immediately when it is held by any thread.
func (m *Mutex) TryLock() error {
	if !m.mu.TryLock() {
		return ErrBusy
	}
	m.owner.Store(gid.Current())
	return nil
}

// Unlock releases ownership of m. Calling Unlock on a mutex the calling
// thread does not hold is undefined behavior.
func (m *Mutex) Unlock() error {
	m.owner.Store(0)
	m.mu.Unlock()
	return nil
}

// Destroy releases the mutex's resources. Destroying a mutex any thread
// holds or is waiting on is undefined behavior. The storage itself is
// reclaimed by the garbage collector; Destroy exists for lifecycle
// symmetry with the rest of the layer.
func (m *Mutex) Destroy() {
	m.owner.Store(0)
}
