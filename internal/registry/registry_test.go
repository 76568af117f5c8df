package registry_test

import (
	"testing"

	"github.com/comalice/threadx/internal/registry"
)

// Test reserve honors the cap and Finalize releases the slot.
func TestReserveCap(t *testing.T) {
	registry.SetMaxThreads(1)
	defer registry.SetMaxThreads(0)

	if !registry.Reserve() {
		t.Fatal("expected first reservation to succeed")
	}
	if registry.Reserve() {
		t.Fatal("expected second reservation to fail at cap 1")
	}
	registry.Finalize(1001)
	if !registry.Reserve() {
		t.Fatal("expected reservation to succeed after Finalize")
	}
	registry.Finalize(1002)
}

// Test registered handles are visible and removed by Finalize.
func TestRegisterLookup(t *testing.T) {
	type handle struct{ name string }
	h := &handle{name: "worker"}

	registry.Reserve()
	registry.Register(2001, h)

	got, ok := registry.Lookup(2001)
	if !ok || got != any(h) {
		t.Fatalf("expected registered handle, got %v (ok=%v)", got, ok)
	}

	registry.Finalize(2001)
	if _, ok := registry.Lookup(2001); ok {
		t.Error("expected handle gone after Finalize")
	}
}

// Test slots are isolated per thread id and unset slots read nil.
func TestSlotIsolation(t *testing.T) {
	k := registry.NewKey(nil)
	defer registry.DeleteKey(k)

	registry.SetSlot(3001, k, "a")
	if v := registry.GetSlot(3001, k); v != "a" {
		t.Errorf("expected %q, got %v", "a", v)
	}
	if v := registry.GetSlot(3002, k); v != nil {
		t.Errorf("expected nil for another thread, got %v", v)
	}
}

// Test Finalize runs a live key's destructor once with the stored value.
func TestFinalizeRunsDestructor(t *testing.T) {
	var got []any
	k := registry.NewKey(func(v any) { got = append(got, v) })
	defer registry.DeleteKey(k)

	registry.Reserve()
	registry.Register(4001, struct{}{})
	registry.SetSlot(4001, k, 42)
	registry.Finalize(4001)

	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected destructor once with 42, got %v", got)
	}
}

// Test a deleted key's destructor does not run at Finalize.
func TestDeletedKeySkipsDestructor(t *testing.T) {
	ran := false
	k := registry.NewKey(func(any) { ran = true })

	registry.Reserve()
	registry.Register(5001, struct{}{})
	registry.SetSlot(5001, k, "v")
	registry.DeleteKey(k)
	registry.Finalize(5001)

	if ran {
		t.Error("expected no destructor after DeleteKey")
	}
}

// Test nil values never reach a destructor.
func TestNilValueSkipsDestructor(t *testing.T) {
	ran := false
	k := registry.NewKey(func(any) { ran = true })
	defer registry.DeleteKey(k)

	registry.Reserve()
	registry.Register(6001, struct{}{})
	registry.SetSlot(6001, k, "v")
	registry.SetSlot(6001, k, nil)
	registry.Finalize(6001)

	if ran {
		t.Error("expected no destructor for nil value")
	}
}
