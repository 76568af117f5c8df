// Package waitq provides the FIFO wake queue shared by the condition
// variable and one-time initializer layers. Each waiter parks on its own
// channel; Signal closes the oldest, Broadcast closes all. Closing rather
// than sending means a wake can never be lost once the waiter is enqueued,
// even if it has not yet parked.
package waitq

import "sync"

// Queue is a FIFO wake queue. The zero value is ready to use.
type Queue struct {
	mu      sync.Mutex
	waiters []chan struct{}
}

// Add enqueues the caller and returns the channel to park on. The channel
// is closed exactly once, by a later Signal or Broadcast.
func (q *Queue) Add() <-chan struct{} {
	ch := make(chan struct{})
	q.mu.Lock()
	q.waiters = append(q.waiters, ch)
	q.mu.Unlock()
	return ch
}

// Signal wakes the oldest waiter and reports whether one was woken.
func (q *Queue) Signal() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.waiters) == 0 {
		return false
	}
	close(q.waiters[0])
	q.waiters = q.waiters[1:]
	return true
}

// Broadcast wakes every currently enqueued waiter.
func (q *Queue) Broadcast() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, ch := range q.waiters {
		close(ch)
	}
	q.waiters = nil
}

// Len returns the number of enqueued waiters.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiters)
}
