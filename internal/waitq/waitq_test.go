package waitq_test

import (
	"testing"
	"time"

	"github.com/comalice/threadx/internal/waitq"
)

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Test signal on an empty queue reports no waiter.
func TestSignalEmpty(t *testing.T) {
	var q waitq.Queue
	if q.Signal() {
		t.Error("expected Signal on empty queue to report false")
	}
}

// Test signal wakes exactly one waiter, oldest first.
func TestSignalWakesOldest(t *testing.T) {
	var q waitq.Queue
	a := q.Add()
	b := q.Add()

	if !q.Signal() {
		t.Fatal("expected a waiter to be woken")
	}
	if !closed(a) {
		t.Error("expected oldest waiter woken first")
	}
	if closed(b) {
		t.Error("expected second waiter still parked")
	}
	if q.Len() != 1 {
		t.Errorf("expected 1 waiter left, got %d", q.Len())
	}
}

// Test broadcast wakes all waiters and empties the queue.
func TestBroadcastWakesAll(t *testing.T) {
	var q waitq.Queue
	chs := make([]<-chan struct{}, 8)
	for i := range chs {
		chs[i] = q.Add()
	}

	q.Broadcast()

	for i, ch := range chs {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("waiter %d not woken by broadcast", i)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue after broadcast, got %d", q.Len())
	}
}
