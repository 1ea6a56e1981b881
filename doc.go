// Package vector implements a growable, contiguous, generic array with
// explicit element lifetime management.
//
// # Overview
//
// A Vector[T] owns a RawMemory[T] block of slots and a count of live
// elements. Slots [0, Len()) hold live elements in order; the remaining
// slots hold the zero value of T. The vector constructs, moves, copies and
// destroys elements itself, which makes it useful for:
//
//   - Element types that own resources and need a destructor hook
//   - Element types whose copies or moves can fail
//   - Code that needs exact control over capacity and growth
//   - Observing growth behavior (capacity, bytes in use, utilization)
//
// # Basic Usage
//
//	v := vector.New[int]()  // Empty, no allocation
//	defer v.Release()       // Destroy elements and drop the block
//
//	// Append (amortized O(1), capacity doubles: 0 -> 1 -> 2 -> 4 ...)
//	err := v.PushBack(10)
//
//	// Insert and erase at a position, shifting the tail
//	pos, err := v.Insert(0, 5)
//	pos, err = v.Erase(pos)
//
//	// Indexed access (unchecked) and traversal
//	x := v.Get(0)
//	for i, x := range v.All() { ... }
//
// # Element Types
//
// Element types opt into custom behavior by implementing interfaces on *T:
// Initializer (default construction), Copier (deep copy), Mover (a move
// that can fail), Relocator (a custom move that cannot fail) and Destroyer
// (cleanup). Types implementing none of them are copied and moved by
// assignment.
//
// # Error Safety
//
// Growth never leaves a vector half-built. When the vector reallocates, it
// moves elements into the new block if moving cannot fail and copies them
// otherwise; if a copy or the allocation fails, everything built in the new
// block is destroyed and the vector is exactly as it was. Move-only types
// with a fallible move cannot get this guarantee.
//
// In-place copy assignment (Assign into a vector with enough capacity) is
// the exception: a failure there can leave a prefix of the new contents
// followed by the rest of the old ones.
//
// Allocation failures wrap ErrAllocationFailed. Element errors are
// returned as they are.
//
// # Preconditions
//
// At, Get, Back, PopBack and Erase do not check their preconditions. Build
// with -tags invariants to turn violations into panics while testing. Use
// AtChecked for a checked lookup.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Concurrent use requires external locking.
//
// # Important Notes
//
//   - A Vector or RawMemory must not be copied by value; use Clone, Move or Swap
//   - Pointers from At, Back and EmplaceBack, slices from Data, and running
//     iterators are invalidated by any operation that grows or shifts
//   - Move leaves the source empty with no block
//
// # Metrics and Monitoring
//
// The vector reports its memory use:
//
//	metrics := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", metrics.CapacityBytes)
package vector
