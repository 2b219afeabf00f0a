// Package vector implements a resizable contiguous array (dynamic array)
// on top of an explicitly owned storage block.
//
// # Overview
//
// The package has two layers:
//
//   - Buffer owns zero or one contiguous block of elements. It has no notion
//     of size; it only allocates, hands out, swaps and releases its block.
//   - Vector composes one Buffer and tracks how many elements are live (Size)
//     and how many slots are allocated (Capacity).
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	v.Insert(1, 9) // [1 9 2 3]
//	v.Erase(0)     // [9 2 3]
//	v.Resize(5)    // [9 2 3 0 0]
//
//	p, err := v.At(10) // err == vector.ErrOutOfRange
//
// # Construction
//
//	vector.New[T]()                          // empty, no storage
//	vector.WithSize[T](n)                    // n zero values
//	vector.Filled(n, value)                  // n copies of value
//	vector.Of(1, 2, 3)                       // listed elements
//	vector.NewReserved[T](vector.Reserve(n)) // no elements, room for n
//	vector.WithCapacity[T](n)                // same as above
//
// # Growth
//
// When an operation needs more room than the current capacity it allocates
// a new block of max(needed, 2*capacity) slots, moves the live elements
// across in order and drops the old block. Reserve(n) is the exception: it
// grows to exactly n. The new block is populated before the old one is
// released, so a failed allocation leaves the vector untouched.
//
// # Ownership
//
// Neither Buffer nor Vector may be copied by value (go vet reports it).
// Clone makes a deep copy, Move and MoveFrom transfer storage and leave the
// source empty, Swap exchanges two vectors in constant time.
//
// # Checked and Unchecked Access
//
// Index, Get, Set, Front, Back, PopBack, Insert and Erase have
// preconditions. Violations are programming errors and panic with an
// "assertion failed" message; building with the release tag removes the
// checks. At is the checked accessor and returns ErrOutOfRange instead.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. Callers sharing a vector between
// goroutines must provide their own locking.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
