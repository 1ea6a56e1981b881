package vector

import "unsafe"

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawMemory owns a block of slots for exactly Capacity() elements of T.
//
// RawMemory never constructs or destroys elements: which slots hold live
// values is entirely up to its owner. A slot holding no live element
// contains the zero value of T. RawMemory must not be copied; ownership is
// transferred with Swap.
type RawMemory[T any] struct {
	_        noCopy
	buf      []T
	capacity int
}

// NewRawMemory allocates a block for capacity elements of T. A capacity of
// zero allocates nothing. Allocation errors wrap ErrAllocationFailed and
// leave nothing behind.
func NewRawMemory[T any](capacity int) (*RawMemory[T], error) {
	buf, err := allocSlots[T](capacity)
	if err != nil {
		return nil, err
	}
	return &RawMemory[T]{buf: buf, capacity: capacity}, nil
}

// Capacity returns the number of slots in the block.
func (r *RawMemory[T]) Capacity() int {
	return r.capacity
}

// Bytes returns the size of the block in bytes.
func (r *RawMemory[T]) Bytes() int {
	return r.capacity * int(sizeOf[T]())
}

// Slot returns the address of slot i without checking whether it holds a
// live element. i must be in [0, Capacity()); this is only verified in
// builds with the invariants tag.
func (r *RawMemory[T]) Slot(i int) *T {
	assertf(i >= 0 && i < r.capacity, "slot %d out of range [0, %d)", i, r.capacity)
	// Unsafe pointer arithmetic keeps the bounds check off the fast path.
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buf)), uintptr(i)*sizeOf[T]()))
}

// Span returns the slots [from, to) as a slice sharing the block.
func (r *RawMemory[T]) Span(from, to int) []T {
	return r.buf[from:to:to]
}

// Swap exchanges the blocks of r and other. It never fails.
func (r *RawMemory[T]) Swap(other *RawMemory[T]) {
	r.buf, other.buf = other.buf, r.buf
	r.capacity, other.capacity = other.capacity, r.capacity
}

// Release drops the block. It is safe to call more than once.
func (r *RawMemory[T]) Release() {
	r.buf = nil
	r.capacity = 0
}
