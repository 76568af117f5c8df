//go:build !linux

package threadx

// OSThreadID returns 0 on platforms without a cheap host thread id.
func OSThreadID() uint64 {
	return 0
}
