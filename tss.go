package threadx

import (
	"github.com/comalice/threadx/internal/gid"
	"github.com/comalice/threadx/internal/registry"
)

// Key identifies one thread-local storage slot. The key is shared by all
// threads; each thread reads and writes its own independent value, and an
// unset slot reads as nil.
type Key struct {
	id uint64
}

// NewKey allocates a new slot. dtor, when non-nil, is invoked at thread
// exit on the exiting thread with that thread's non-nil value, exactly
// once per thread. Destructors only fire for threads started by Create;
// other threads have no teardown hook.
func NewKey(dtor func(any)) (*Key, error) {
	return &Key{id: registry.NewKey(registry.Destructor(dtor))}, nil
}

// Set stores v in the calling thread's slot for k. Setting nil reads back
// as unset and suppresses the destructor for this thread.
func (k *Key) Set(v any) error {
	registry.SetSlot(gid.Current(), k.id, v)
	return nil
}

// Get returns the calling thread's value for k, nil when unset.
func (k *Key) Get() any {
	return registry.GetSlot(gid.Current(), k.id)
}

// Delete releases the slot; using k afterwards is undefined behavior.
// Delete does not run destructors for threads still holding a value in
// this slot — the destructor only fires at thread exit, and after Delete
// the key no longer exists to fire.
func (k *Key) Delete() {
	registry.DeleteKey(k.id)
}
