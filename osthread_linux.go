//go:build linux

package threadx

import "golang.org/x/sys/unix"

// OSThreadID returns the host thread id of the calling thread. Threads
// started by Create are pinned to an OS thread, so for them the value is
// stable; for any other caller the runtime may migrate the goroutine at
// any time, making the value a hint at best.
func OSThreadID() uint64 {
	return uint64(unix.Gettid())
}
