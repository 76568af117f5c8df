// Package threadx is a minimal, portable threading primitives layer:
// thread creation and joining, mutual exclusion, condition variables,
// thread-local storage, and one-time initialization behind a uniform API
// that never exposes the host system's native threading interface.
//
// Threads started by Create run pinned to an OS thread
// (runtime.LockOSThread), so every blocking operation in this package
// suspends a real, preemptively scheduled thread of execution. Nothing
// here supports cancellation or timeouts; a blocked thread stays blocked
// until the matching wake condition occurs.
//
// # Status model
//
// Success is a nil error. The recoverable failures form a closed set:
// ErrBusy (contention, including a detected same-thread re-lock), ErrNoMem
// (resource exhaustion), and the remaining sentinels in this package.
// Misuse beyond that set, such as unlocking a mutex the caller does not
// hold or using a destroyed handle, is undefined behavior; the layer
// performs no runtime validation of handle state.
//
// # Ownership
//
// Every handle is produced by its constructor and consumed according to
// its contract: a Thread by exactly one Join or Detach, a Mutex or Cond by
// Destroy once no thread uses it, a Key by Delete. Handles are passed by
// reference only; the underlying resources live in process-wide state
// managed by this package.
package threadx
