package vector

// Reallocations returns the number of times v's storage has been
// reallocated. The count travels with the storage on Move and Swap and
// starts at zero for a Clone.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Usable slots
	Reallocations int     // Storage reallocations so far
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
