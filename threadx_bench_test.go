package threadx

import "testing"

// BenchmarkCreateJoin measures the full lifecycle of a thread with a
// trivial entry function.
func BenchmarkCreateJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		th, err := Create(func() int { return 0 })
		if err != nil {
			b.Fatal(err)
		}
		if _, err := th.Join(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLockUnlock measures an uncontended lock/unlock pair, which is
// dominated by the caller identity lookup.
func BenchmarkLockUnlock(b *testing.B) {
	m, err := NewMutex(MutexPlain)
	if err != nil {
		b.Fatal(err)
	}
	defer m.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Lock(); err != nil {
			b.Fatal(err)
		}
		if err := m.Unlock(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCallOnceDone measures the fast path of an already-completed flag.
func BenchmarkCallOnceDone(b *testing.B) {
	var flag OnceFlag
	CallOnce(&flag, func() {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CallOnce(&flag, func() {})
	}
}

// BenchmarkCurrent measures the caller identity lookup.
func BenchmarkCurrent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if Current() == nil {
			b.Fatal("nil handle")
		}
	}
}

// BenchmarkKeyGet measures a thread-local read on a set slot.
func BenchmarkKeyGet(b *testing.B) {
	k, err := NewKey(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer k.Delete()
	if err := k.Set("v"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if k.Get() == nil {
			b.Fatal("unexpected nil")
		}
	}
}
