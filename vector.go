package vector

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Vector is a growable, contiguous sequence of T built on a RawMemory
// block. Slots [0, Len()) hold live elements in order; the rest of the
// block holds zero values. Not goroutine-safe.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied by value; use Clone, Move or Swap.
type Vector[T any] struct {
	data RawMemory[T]
	size int
	ops  elemOps[T]
}

// New returns an empty vector. It does not allocate a block.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector holding n default-constructed elements, with
// capacity n. If constructing an element fails, the elements already
// constructed are destroyed and the error is returned.
func WithSize[T any](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "size %d", n)
	}
	v := New[T]()
	o := v.elem()
	data, err := NewRawMemory[T](n)
	if err != nil {
		return nil, err
	}
	if err := o.constructRange(data.Span(0, n)); err != nil {
		return nil, err
	}
	v.data.Swap(data)
	v.size = n
	return v, nil
}

// elem returns the capability table of T, resolving it on first use.
func (v *Vector[T]) elem() *elemOps[T] {
	if !v.ops.resolved {
		v.ops = resolveOps[T]()
	}
	return &v.ops
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i. i must be in [0, Len()); the index is
// not checked outside of invariants builds. The pointer is invalidated by
// any operation that grows or shifts the vector.
func (v *Vector[T]) At(i int) *T {
	assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	return v.data.Slot(i)
}

// Get returns element i. Same contract as At.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// AtChecked is like At but returns an error wrapping ErrIndexOutOfRange
// for an invalid index.
func (v *Vector[T]) AtChecked(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.size)
	}
	return v.data.Slot(i), nil
}

// Back returns a pointer to the last element. The vector must not be
// empty.
func (v *Vector[T]) Back() *T {
	assertf(v.size > 0, "Back on empty vector")
	return v.data.Slot(v.size - 1)
}

// Data returns the live elements as a slice sharing the vector's block.
// Its capacity is limited to Len() so appending to it never writes into
// the vector.
func (v *Vector[T]) Data() []T {
	return v.data.Span(0, v.size)
}

// Clone returns an independent copy holding duplicates of every element,
// with capacity equal to Len(). If a copy fails, the copies already made
// are destroyed and the error is returned. Move-only element types return
// ErrNotCopyable.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	o := v.elem()
	if !o.copyable() {
		return nil, ErrNotCopyable
	}
	data, err := NewRawMemory[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := o.copyRange(data.Span(0, v.size), v.data.Span(0, v.size)); err != nil {
		return nil, err
	}
	c := &Vector[T]{ops: *o}
	c.data.Swap(data)
	c.size = v.size
	return c, nil
}

// Move returns a new vector that takes over v's block and elements in
// O(1). v is left empty with no block.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.Swap(v)
	return m
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Assign replaces the contents of v with copies of the elements of rhs.
//
// If rhs does not fit in v's capacity, a full copy is built first and
// swapped in, so a failure leaves v untouched. Otherwise the elements are
// overwritten in place and a failure can leave v with a prefix copied from
// rhs and the rest of its old elements.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	o := v.elem()
	if !o.copyable() {
		return ErrNotCopyable
	}
	if rhs.size > v.Cap() {
		c, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}

	n := min(v.size, rhs.size)
	if o.trivial() {
		copy(v.data.Span(0, n), rhs.data.Span(0, n))
	} else {
		for i := 0; i < n; i++ {
			if err := o.assign(v.data.Slot(i), rhs.data.Slot(i)); err != nil {
				return err
			}
		}
	}
	if rhs.size < v.size {
		o.destroyRange(v.data.Span(rhs.size, v.size))
	} else if rhs.size > v.size {
		if err := o.copyRange(v.data.Span(v.size, rhs.size), rhs.data.Span(v.size, rhs.size)); err != nil {
			return err
		}
	}
	v.size = rhs.size
	return nil
}

// MoveAssign exchanges the contents of v and rhs: v takes over rhs's
// elements and rhs receives v's old ones. It never fails.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	v.Swap(rhs)
}

// Reserve grows the capacity to exactly n if n exceeds the current
// capacity; otherwise it does nothing. Elements are moved into the new
// block when moving them cannot fail and copied otherwise, so a failure
// leaves v unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	data, err := NewRawMemory[T](n)
	if err != nil {
		return err
	}
	return v.adopt(data)
}

// adopt transfers the live elements into data and takes it over as the
// vector's block.
func (v *Vector[T]) adopt(data *RawMemory[T]) error {
	o := v.elem()
	old := v.data.Span(0, v.size)
	if err := o.transfer(data.Span(0, v.size), old); err != nil {
		return err
	}
	o.commit(old)
	v.data.Swap(data)
	data.Release()
	return nil
}

// Resize changes the length to n. Shrinking destroys the trailing
// elements. Growing reserves exactly n slots if needed and
// default-constructs the new elements; if one fails, those already
// constructed are destroyed and the length is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidLength, "size %d", n)
	}
	o := v.elem()
	switch {
	case n < v.size:
		o.destroyRange(v.data.Span(n, v.size))
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := o.constructRange(v.data.Span(v.size, n)); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// Clear destroys all elements and keeps the block.
func (v *Vector[T]) Clear() {
	v.elem().destroyRange(v.data.Span(0, v.size))
	v.size = 0
}

// Release destroys all elements and drops the block. The vector is empty
// and usable afterwards.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// All returns an iterator over index-value pairs, first to last.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, first to last.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}
