package vector

// sentinelSlots is the number of slots allocated past the requested count.
// The extra slot keeps the one-past-the-end position addressable; it never
// holds a live element.
const sentinelSlots = 1

// allocBlock returns a zeroed block with room for n elements plus the
// sentinel slot.
// Returns nil if n <= 0.
func allocBlock[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n+sentinelSlots)
}

// fillBlock sets every element of dst to value.
func fillBlock[T any](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}

// moveBlock transfers the elements of src to the front of dst in order and
// resets the vacated source slots to the zero value.
// Returns the number of elements moved.
func moveBlock[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}
