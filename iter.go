package vector

import "iter"

// Slice returns the live elements [0, Size()) as a slice sharing v's storage.
// Writes through the slice modify v. The slice's capacity is clipped to its
// length, so appending to it never reaches into v's spare slots.
// The slice is invalidated by any operation that reallocates v.
func (v *Vector[T]) Slice() []T {
	return v.buf.Get()[:v.size:v.size]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Slice() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
