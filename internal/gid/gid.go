// Package gid resolves the identity of the calling goroutine.
//
// The runtime prints the goroutine id in the first line of every stack
// trace ("goroutine 18 [running]:"); parsing that header is the only
// portable way to observe it without linking into the runtime. The id is
// stable for the lifetime of the goroutine and never reused while it is
// alive, which is what the thread registry needs for keying.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

var prefix = []byte("goroutine ")

// Current returns the calling goroutine's id, or 0 if the stack header
// could not be parsed (which would indicate a runtime format change).
func Current() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], prefix)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
