package vector

import "github.com/pavanmanishd/vector/internal/assert"

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of values holding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns zero or one contiguous block of T.
// It keeps no size or capacity bookkeeping: callers remember how many
// elements they asked for. The zero value owns nothing and is ready to use.
//
// A Buffer must not be copied. Ownership moves with MoveFrom, Swap or
// Release followed by AdoptBuffer.
type Buffer[T any] struct {
	_   noCopy
	raw []T
}

// NewBuffer returns a Buffer owning a block with room for n elements.
// The block is allocated with one extra sentinel slot past n.
// If n == 0 the returned Buffer owns nothing.
func NewBuffer[T any](n int) *Buffer[T] {
	assert.Assert(n >= 0, "vector: negative buffer size %d", n)
	return &Buffer[T]{raw: allocBlock[T](n)}
}

// AdoptBuffer returns a Buffer taking ownership of raw, typically a block
// previously obtained from Release. The caller must not use raw afterwards
// except through the returned Buffer.
func AdoptBuffer[T any](raw []T) *Buffer[T] {
	return &Buffer[T]{raw: raw}
}

// MoveFrom transfers ownership of src's block to b and leaves src empty.
// Any block b owned before is dropped. Moving a Buffer onto itself is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.raw = src.Release()
}

// Release relinquishes ownership of the block and returns it.
// b is empty afterwards.
func (b *Buffer[T]) Release() []T {
	raw := b.raw
	b.raw = nil
	return raw
}

// At returns a pointer to the element at index i.
// Index validity is the caller's responsibility.
func (b *Buffer[T]) At(i int) *T {
	return &b.raw[i]
}

// Owns reports whether b currently owns a block.
func (b *Buffer[T]) Owns() bool {
	return b.raw != nil
}

// Get returns the owned block without transferring ownership.
func (b *Buffer[T]) Get() []T {
	return b.raw
}

// Swap exchanges the owned blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.raw, other.raw = other.raw, b.raw
}

// Free drops the owned block, if any. Calling Free on an empty Buffer is
// safe and does nothing.
func (b *Buffer[T]) Free() {
	b.raw = nil
}
