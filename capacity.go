package vector

import "github.com/pavanmanishd/vector/internal/assert"

// CapacityRequest asks for a vector with pre-reserved capacity and no
// elements. It exists so that "n elements" and "room for n elements" read
// differently at the call site.
type CapacityRequest struct {
	capacity int
}

// Reserve returns a CapacityRequest for n elements.
//
//	v := vector.NewReserved[int](vector.Reserve(64))
func Reserve(n int) CapacityRequest {
	assert.Assert(n >= 0, "vector: negative capacity request %d", n)
	return CapacityRequest{capacity: n}
}

// Capacity returns the requested capacity.
func (r CapacityRequest) Capacity() int {
	return r.capacity
}
