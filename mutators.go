package vector

import "github.com/cockroachdb/errors"

// growCap returns the capacity used when a full vector of capacity c needs
// one more slot.
func growCap(c int) int {
	if c == 0 {
		return 1
	}
	return 2 * c
}

// PushBack appends a copy of value. When the vector is full its capacity
// doubles (0 becomes 1) first; if growing fails the vector is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(v.copyOf(&value))
	return err
}

// PushBackMove appends the value at src by moving it. src is left zeroed.
// If growing fails, the value is moved back into src. For element types
// whose move can fail, moving back may fail too: the value is then
// destroyed, src stays zeroed, and that failure is attached to the
// returned error as a secondary error.
func (v *Vector[T]) PushBackMove(src *T) error {
	_, err := v.emplace(v.size, v.moveFrom(src), v.moveBack(src))
	return err
}

// EmplaceBack appends an element constructed in place by construct, which
// receives a pointer to a zeroed slot. It returns a pointer to the new
// element, valid until the vector next grows or shifts.
func (v *Vector[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	if _, err := v.emplace(v.size, construct, nil); err != nil {
		return nil, err
	}
	return v.data.Slot(v.size - 1), nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "PopBack on empty vector")
	v.size--
	v.elem().destroy(v.data.Slot(v.size))
}

// Insert places a copy of value at pos, shifting the elements at and after
// pos one slot toward the tail. pos may be Len(). It returns the index of
// the new element.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.emplace(pos, v.copyOf(&value), nil)
}

// InsertMove is like Insert but moves the value at src, which must not
// point into v. src is left zeroed; if the insertion fails the value is
// moved back into src, with the same caveat as PushBackMove when that
// move fails.
func (v *Vector[T]) InsertMove(pos int, src *T) (int, error) {
	return v.emplace(pos, v.moveFrom(src), v.moveBack(src))
}

// Emplace constructs a new element at pos with construct, shifting the
// elements at and after pos one slot toward the tail, and returns pos.
// construct receives a pointer to a zeroed value.
//
// When the vector is full, a block of twice the capacity is allocated, the
// new element is constructed directly in its final slot, and the existing
// elements are moved or copied around it; any failure leaves the vector
// unchanged. Otherwise the new element is built on the side and the tail
// is shifted in place; only element types whose move can fail may see an
// error there, after which a shifted slot may hold the zero value.
func (v *Vector[T]) Emplace(pos int, construct func(*T) error) (int, error) {
	return v.emplace(pos, construct, nil)
}

// Erase removes the element at pos, shifting the following elements one
// slot toward the head, and returns pos: the index of the element that
// followed the removed one, or Len() if it was the last. pos must be in
// [0, Len()).
//
// An error is only possible for element types whose move can fail. The
// slot whose move failed is left holding the zero value and the length is
// unchanged.
func (v *Vector[T]) Erase(pos int) (int, error) {
	assertf(pos >= 0 && pos < v.size, "erase position %d out of range [0, %d)", pos, v.size)
	o := v.elem()
	if o.trivial() {
		s := v.data.Span(0, v.size)
		copy(s[pos:], s[pos+1:])
		zero(&s[v.size-1])
		v.size--
		return pos, nil
	}
	o.destroy(v.data.Slot(pos))
	for i := pos + 1; i < v.size; i++ {
		if err := o.relocate(v.data.Slot(i-1), v.data.Slot(i)); err != nil {
			return pos, err
		}
	}
	v.size--
	return pos, nil
}

// copyOf returns a constructor that duplicates *src.
func (v *Vector[T]) copyOf(src *T) func(*T) error {
	o := v.elem()
	if !o.copyable() {
		return func(*T) error { return ErrNotCopyable }
	}
	return func(dst *T) error { return o.copyTo(dst, src) }
}

// moveFrom returns a constructor that relocates *src.
func (v *Vector[T]) moveFrom(src *T) func(*T) error {
	o := v.elem()
	return func(dst *T) error { return o.relocate(dst, src) }
}

// moveBack returns an undo for moveFrom(src). If the value cannot be
// moved back it is destroyed.
func (v *Vector[T]) moveBack(src *T) func(*T) error {
	o := v.elem()
	return func(p *T) error {
		if err := o.relocate(src, p); err != nil {
			o.destroy(p)
			return errors.Wrap(err, "moving the value back after a failed insert")
		}
		return nil
	}
}

// emplace constructs an element at pos with construct. undo reverts a
// successful construct when a later step fails; nil means destroy.
func (v *Vector[T]) emplace(pos int, construct func(*T) error, undo func(*T) error) (int, error) {
	assertf(pos >= 0 && pos <= v.size, "position %d out of range [0, %d]", pos, v.size)
	o := v.elem()
	if undo == nil {
		undo = func(p *T) error {
			o.destroy(p)
			return nil
		}
	}

	switch {
	case v.size == v.Cap():
		if err := v.growAndEmplace(pos, construct, undo); err != nil {
			return 0, err
		}

	case pos == v.size:
		slot := v.data.Slot(v.size)
		if err := construct(slot); err != nil {
			zero(slot)
			return 0, err
		}
		v.size++

	default:
		if err := v.shiftAndEmplace(pos, construct, undo); err != nil {
			return 0, err
		}
	}
	return pos, nil
}

// growAndEmplace handles emplace into a full vector: the new element goes
// straight into its final slot of a doubled block and the old elements are
// transferred around it.
func (v *Vector[T]) growAndEmplace(pos int, construct func(*T) error, undo func(*T) error) error {
	o := v.elem()
	data, err := NewRawMemory[T](growCap(v.Cap()))
	if err != nil {
		return err
	}
	slot := data.Slot(pos)
	if err := construct(slot); err != nil {
		zero(slot)
		return err
	}

	prefix, suffix := v.data.Span(0, pos), v.data.Span(pos, v.size)
	newPrefix, newSuffix := data.Span(0, pos), data.Span(pos+1, v.size+1)
	if err := o.transfer(newPrefix, prefix); err != nil {
		return errors.CombineErrors(err, undo(slot))
	}
	if err := o.transfer(newSuffix, suffix); err != nil {
		err = errors.CombineErrors(err, o.undoTransfer(newPrefix, prefix))
		return errors.CombineErrors(err, undo(slot))
	}
	o.commit(v.data.Span(0, v.size))

	v.data.Swap(data)
	data.Release()
	v.size++
	return nil
}

// shiftAndEmplace handles emplace before the end of a vector with spare
// capacity. The new value is built on the side first so that construct
// may read elements of v.
func (v *Vector[T]) shiftAndEmplace(pos int, construct func(*T) error, undo func(*T) error) error {
	o := v.elem()
	var tmp T
	if err := construct(&tmp); err != nil {
		return err
	}

	if o.trivial() {
		s := v.data.Span(0, v.size+1)
		copy(s[pos+1:], s[pos:v.size])
		s[pos] = tmp
		v.size++
		return nil
	}

	last := v.size - 1
	if err := o.relocate(v.data.Slot(v.size), v.data.Slot(last)); err != nil {
		return errors.CombineErrors(err, undo(&tmp))
	}
	v.size++
	for i := last; i > pos; i-- {
		if err := o.relocate(v.data.Slot(i), v.data.Slot(i-1)); err != nil {
			return errors.CombineErrors(err, undo(&tmp))
		}
	}
	if err := o.relocate(v.data.Slot(pos), &tmp); err != nil {
		return errors.CombineErrors(err, undo(&tmp))
	}
	return nil
}
