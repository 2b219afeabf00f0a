package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int]()

	// Test initial state
	if v.Size() != 0 {
		t.Errorf("Initial Size = %d, want 0", v.Size())
	}
	if v.Capacity() != 0 {
		t.Errorf("Initial Capacity = %d, want 0", v.Capacity())
	}
	if v.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", v.Reallocations())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}

	for i := 0; i < 3; i++ {
		v.PushBack(i)
	}

	if v.Reallocations() != 3 {
		t.Errorf("Reallocations after 3 pushes = %d, want 3", v.Reallocations())
	}
	if u := v.Utilization(); u != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", u)
	}

	// Test metrics snapshot
	metrics := v.Metrics()
	if metrics.Size != v.Size() {
		t.Errorf("Metrics.Size = %d, want %d", metrics.Size, v.Size())
	}
	if metrics.Capacity != v.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", metrics.Capacity, v.Capacity())
	}
	if metrics.Reallocations != v.Reallocations() {
		t.Errorf("Metrics.Reallocations = %d, want %d", metrics.Reallocations, v.Reallocations())
	}
	if metrics.Utilization != v.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, v.Utilization())
	}
}

func TestVectorMetricsAfterClear(t *testing.T) {
	v := Of(1, 2, 3, 4)
	if v.Utilization() != 1 {
		t.Errorf("Utilization of full vector = %f, want 1", v.Utilization())
	}

	v.Clear()
	m := v.Metrics()
	if m.Size != 0 {
		t.Errorf("Size after Clear() = %d, want 0", m.Size)
	}
	if m.Capacity != 4 {
		t.Errorf("Capacity after Clear() = %d, want 4", m.Capacity)
	}
	if m.Utilization != 0 {
		t.Errorf("Utilization after Clear() = %f, want 0", m.Utilization)
	}
	if m.Reallocations != 0 {
		t.Errorf("Reallocations after Clear() = %d, want 0", m.Reallocations)
	}
}

func TestVectorMetricsReserve(t *testing.T) {
	v := New[int]()
	v.Reserve(16)
	v.Reserve(8)
	v.Reserve(32)

	if v.Reallocations() != 2 {
		t.Errorf("Reallocations = %d, want 2", v.Reallocations())
	}
	if v.Capacity() != 32 {
		t.Errorf("Capacity = %d, want 32", v.Capacity())
	}
}
