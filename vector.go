package vector

import (
	"fmt"

	"github.com/pavanmanishd/vector/internal/assert"
)

// Vector is a resizable contiguous array of T that exclusively owns its
// storage. Not goroutine-safe.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied; use Clone for a deep copy and Move or MoveFrom to transfer it.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int // live elements, [0, size)
	capacity int // usable slots in buf
	reallocs int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector holding n zero values. Capacity equals n.
func WithSize[T any](n int) *Vector[T] {
	var zero T
	return Filled(n, zero)
}

// Filled returns a vector holding n copies of value. Capacity equals n.
func Filled[T any](n int, value T) *Vector[T] {
	assert.Assert(n >= 0, "vector: negative size %d", n)
	v := &Vector[T]{}
	v.buf.MoveFrom(NewBuffer[T](n))
	fillBlock(v.buf.Get()[:n], value)
	v.size, v.capacity = n, n
	return v
}

// Of returns a vector holding items in order. Size and capacity equal
// len(items).
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	v.buf.MoveFrom(NewBuffer[T](len(items)))
	copy(v.buf.Get(), items)
	v.size, v.capacity = len(items), len(items)
	return v
}

// NewReserved returns an empty vector with room for at least r.Capacity()
// elements.
func NewReserved[T any](r CapacityRequest) *Vector[T] {
	v := &Vector[T]{}
	if r.Capacity() > 0 {
		v.grow(r.Capacity())
	}
	return v
}

// WithCapacity is shorthand for NewReserved[T](Reserve(n)).
func WithCapacity[T any](n int) *Vector[T] {
	return NewReserved[T](Reserve(n))
}

// Clone returns a deep copy of v's live elements in fresh storage.
// The clone's capacity equals v.Size(), not v.Capacity().
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.buf.MoveFrom(NewBuffer[T](v.size))
	copy(c.buf.Get(), v.Slice())
	c.size, c.capacity = v.size, v.size
	return c
}

// Move returns a new vector that has taken over v's storage.
// v is left empty and may be reused.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.Swap(v)
	return m
}

// MoveFrom drops v's storage and takes over src's. src is left empty.
// Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.Free()
	v.buf.MoveFrom(&src.buf)
	v.size, v.capacity, v.reallocs = src.size, src.capacity, src.reallocs
	src.size, src.capacity, src.reallocs = 0, 0, 0
}

// Assign replaces v's contents with a deep copy of other's.
// Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
	tmp.buf.Free()
}

// Swap exchanges the storage, size and capacity of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// PushBack appends item.
func (v *Vector[T]) PushBack(item T) {
	if v.size == v.capacity {
		v.grow(v.size + 1)
	}
	*v.buf.At(v.size) = item
	v.size++
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assert.Assert(v.size > 0, "vector: PopBack on empty vector")
	v.size--
	var zero T
	*v.buf.At(v.size) = zero
}

// Insert places value at index pos, shifting the elements at and after pos
// one slot towards the end. pos must be in [0, Size()].
// Returns the index of the inserted element.
func (v *Vector[T]) Insert(pos int, value T) int {
	assert.Assert(pos >= 0 && pos <= v.size, "vector: Insert position %d out of [0, %d]", pos, v.size)
	if v.size == v.capacity {
		v.grow(v.size + 1)
	}
	raw := v.buf.Get()
	copy(raw[pos+1:v.size+1], raw[pos:v.size])
	raw[pos] = value
	v.size++
	return pos
}

// Erase removes the element at index pos, shifting the elements after it
// one slot towards the front. pos must be in [0, Size()).
// Returns pos, which now holds the element that followed the erased one.
func (v *Vector[T]) Erase(pos int) int {
	assert.Assert(pos >= 0 && pos < v.size, "vector: Erase position %d out of [0, %d)", pos, v.size)
	raw := v.buf.Get()
	copy(raw[pos:], raw[pos+1:v.size])
	v.size--
	var zero T
	raw[v.size] = zero
	return pos
}

// Reserve makes room for at least n elements. If n exceeds the current
// capacity the vector is reallocated to exactly n; otherwise nothing happens.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.reallocate(n)
	}
}

// Resize sets the number of live elements to n. Shrinking never
// reallocates. Growing reallocates when n exceeds the capacity and fills
// the new positions with zero values.
func (v *Vector[T]) Resize(n int) {
	assert.Assert(n >= 0, "vector: negative size %d", n)
	if n <= v.size {
		clear(v.buf.Get()[n:v.size])
		v.size = n
		return
	}
	if n > v.capacity {
		v.grow(n)
	}
	clear(v.buf.Get()[v.size:n])
	v.size = n
}

// Clear removes all elements. Capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.buf.Get()[:v.size])
	v.size = 0
}

// Index returns a pointer to the element at i. i must be in [0, Size()).
func (v *Vector[T]) Index(i int) *T {
	assert.Assert(i >= 0 && i < v.size, "vector: index %d out of [0, %d)", i, v.size)
	return v.buf.At(i)
}

// Get returns the element at i. i must be in [0, Size()).
func (v *Vector[T]) Get(i int) T {
	return *v.Index(i)
}

// Set stores value at i. i must be in [0, Size()).
func (v *Vector[T]) Set(i int, value T) {
	*v.Index(i) = value
}

// At returns a pointer to the element at i, or ErrOutOfRange if i is not
// in [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, ErrOutOfRange
	}
	return v.buf.At(i), nil
}

// Front returns a pointer to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	assert.Assert(v.size > 0, "vector: Front on empty vector")
	return v.buf.At(0)
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	assert.Assert(v.size > 0, "vector: Back on empty vector")
	return v.buf.At(v.size - 1)
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements v can hold before reallocating.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether v holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// String formats the live elements like a slice, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// grow reallocates to max(needed, 2*capacity).
func (v *Vector[T]) grow(needed int) {
	v.reallocate(max(needed, 2*v.capacity))
}

// reallocate moves the live elements into a fresh block of newCap slots.
// The new block is fully populated before the old one is dropped.
func (v *Vector[T]) reallocate(newCap int) {
	next := NewBuffer[T](newCap)
	moveBlock(next.Get(), v.buf.Get()[:v.size])
	logRealloc(v.capacity, newCap, v.size)
	v.buf.Swap(next)
	next.Free()
	v.capacity = newCap
	v.reallocs++
}
