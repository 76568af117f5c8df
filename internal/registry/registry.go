// Package registry holds the process-wide state behind the public
// primitives: the table of managed threads, each thread's local storage
// slots, and the slot key table with destructors. The public Thread handle
// is stored as an opaque value so this package stays free of the root
// package's types.
//
// Slot storage is auto-created for goroutines this layer did not start;
// such entries are never finalized (there is no teardown hook for them),
// matching the original layer, where the initial thread's destructors
// never fire.
package registry

import "sync"

// Destructor is invoked on the owning thread at thread exit with a slot's
// non-nil value.
type Destructor func(any)

type entry struct {
	handle any            // public *Thread for managed threads, nil otherwise
	slots  map[uint64]any // thread-local values by key id
}

var (
	mu      sync.RWMutex
	threads = map[uint64]*entry{}
	keys    = map[uint64]Destructor{}
	nextKey uint64

	maxThreads int
	created    uint64
	active     int
	joined     uint64
	detached   uint64
)

// Counts is a snapshot of thread lifecycle counters for managed threads.
type Counts struct {
	Created  uint64
	Active   uint64
	Joined   uint64
	Detached uint64
}

// SetMaxThreads caps concurrently live managed threads; n <= 0 removes
// the cap.
func SetMaxThreads(n int) {
	mu.Lock()
	maxThreads = n
	mu.Unlock()
}

// Reserve claims a live-thread slot ahead of a spawn. It reports false
// when the cap is reached; a successful reservation is released by
// Finalize.
func Reserve() bool {
	mu.Lock()
	defer mu.Unlock()
	if maxThreads > 0 && active >= maxThreads {
		return false
	}
	active++
	created++
	return true
}

// Register binds a managed thread's public handle to its id. Called on the
// new thread before its entry function runs.
func Register(id uint64, handle any) {
	mu.Lock()
	e := threads[id]
	if e == nil {
		e = &entry{}
		threads[id] = e
	}
	e.handle = handle
	mu.Unlock()
}

// Lookup returns the public handle registered for id, if any.
func Lookup(id uint64) (any, bool) {
	mu.RLock()
	e := threads[id]
	mu.RUnlock()
	if e == nil || e.handle == nil {
		return nil, false
	}
	return e.handle, true
}

// MarkJoined and MarkDetached record handle consumption for Snapshot.
func MarkJoined() {
	mu.Lock()
	joined++
	mu.Unlock()
}

func MarkDetached() {
	mu.Lock()
	detached++
	mu.Unlock()
}

// NewKey allocates a slot key visible to all threads. The destructor may
// be nil.
func NewKey(d Destructor) uint64 {
	mu.Lock()
	nextKey++
	id := nextKey
	keys[id] = d
	mu.Unlock()
	return id
}

// DeleteKey unregisters a key. Values already stored under it stay in the
// per-thread tables but no destructor will run for them.
func DeleteKey(id uint64) {
	mu.Lock()
	delete(keys, id)
	mu.Unlock()
}

// SetSlot stores v in thread tid's slot for key. Storage for unmanaged
// threads is created on first use.
func SetSlot(tid, key uint64, v any) {
	mu.Lock()
	e := threads[tid]
	if e == nil {
		e = &entry{}
		threads[tid] = e
	}
	if e.slots == nil {
		e.slots = map[uint64]any{}
	}
	e.slots[key] = v
	mu.Unlock()
}

// GetSlot returns thread tid's value for key; nil when unset.
func GetSlot(tid, key uint64) any {
	mu.RLock()
	defer mu.RUnlock()
	e := threads[tid]
	if e == nil || e.slots == nil {
		return nil
	}
	return e.slots[key]
}

// Finalize tears down a managed thread: it removes the thread's entry,
// releases its live-thread slot, and runs the destructor of every live key
// whose value is non-nil. Each value is cleared before its destructor is
// invoked, so a destructor observes the slot as unset and runs exactly
// once per thread. Destructors run outside the registry lock, on the
// exiting thread.
func Finalize(tid uint64) {
	type pending struct {
		v any
		d Destructor
	}
	var run []pending

	mu.Lock()
	e := threads[tid]
	delete(threads, tid)
	active--
	if e != nil {
		for k, v := range e.slots {
			if v == nil {
				continue
			}
			e.slots[k] = nil
			if d := keys[k]; d != nil {
				run = append(run, pending{v, d})
			}
		}
	}
	mu.Unlock()

	for _, p := range run {
		p.d(p.v)
	}
}

// Snapshot returns current lifecycle counters.
func Snapshot() Counts {
	mu.RLock()
	defer mu.RUnlock()
	return Counts{
		Created:  created,
		Active:   uint64(active),
		Joined:   joined,
		Detached: detached,
	}
}
