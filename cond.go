package threadx

import "github.com/comalice/threadx/internal/waitq"

// Cond is a wait queue used only while paired with a mutex the caller
// holds during Wait. Wake order among multiple waiters is unspecified.
type Cond struct {
	q waitq.Queue
}

// NewCond constructs a condition variable.
func NewCond() (*Cond, error) {
	return &Cond{}, nil
}

// Wait atomically releases m and suspends the calling thread until a
// Signal or Broadcast wakes it, then reacquires m before returning. The
// caller must hold m.
//
// The waiter is enqueued before m is released, so a signal ordered after
// the release is never lost. Signals sent before the wait begins are not
// queued, and wakes may be spurious relative to the caller's predicate;
// re-check the predicate in a loop around Wait.
func (c *Cond) Wait(m *Mutex) error {
	ch := c.q.Add()
	if err := m.Unlock(); err != nil {
		return err
	}
	<-ch
	return m.Lock()
}

// Signal wakes at least one thread waiting on c, if any.
func (c *Cond) Signal() error {
	c.q.Signal()
	return nil
}

// Broadcast wakes all threads currently waiting on c.
func (c *Cond) Broadcast() error {
	c.q.Broadcast()
	return nil
}

// Destroy releases the condition variable's resources. Destroying while
// any thread waits on c is undefined behavior; storage is reclaimed by
// the garbage collector.
func (c *Cond) Destroy() {}
