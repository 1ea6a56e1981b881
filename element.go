package vector

import "github.com/cockroachdb/errors"

// Element types customize how a Vector constructs, copies, moves and
// destroys them by implementing any of the interfaces below on *T. A type
// implementing none of them is treated as a plain Go value: the default
// value is the zero value, copies and moves are assignments, and
// destruction just zeroes the slot.

// Initializer is implemented by element types whose default value is not
// the zero value. Init is called on a zeroed slot.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types that need a deep copy. CopyFrom
// is called on a zeroed receiver and must leave src unchanged.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by element types whose move can fail. MoveFrom is
// called on a zeroed receiver; src stays live afterwards and is destroyed
// by the vector.
//
// When growing storage, a vector copies elements of such types instead of
// moving them, so a failure leaves the original block intact. If the type
// is a Mover but not a Copier, growth has to move and cannot offer that
// guarantee.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Relocator is implemented by element types that need custom code to move
// but whose move never fails. RelocateFrom is called on a zeroed receiver;
// src is considered dead afterwards and is zeroed without being destroyed.
type Relocator[T any] interface {
	RelocateFrom(src *T)
}

// Destroyer is implemented by element types that release resources when
// removed from a vector.
type Destroyer interface {
	Destroy()
}

// elemOps is the capability table of T, resolved once per container.
type elemOps[T any] struct {
	resolved  bool
	initer    bool
	copier    bool
	mover     bool
	relocator bool
	destroyer bool
}

func resolveOps[T any]() elemOps[T] {
	var p any = (*T)(nil)
	o := elemOps[T]{resolved: true}
	_, o.initer = p.(Initializer)
	_, o.copier = p.(Copier[T])
	_, o.mover = p.(Mover[T])
	_, o.relocator = p.(Relocator[T])
	_, o.destroyer = p.(Destroyer)
	return o
}

// trivial reports whether T has no hooks at all, which allows bulk copy
// and clear.
func (o *elemOps[T]) trivial() bool {
	return !o.initer && !o.copier && !o.mover && !o.relocator && !o.destroyer
}

// nothrowRelocate reports whether moving a T can never fail.
func (o *elemOps[T]) nothrowRelocate() bool {
	return o.relocator || !o.mover
}

// copyable reports whether T can be duplicated. Types that customize their
// move without providing a copy are move-only.
func (o *elemOps[T]) copyable() bool {
	return o.copier || (!o.mover && !o.relocator)
}

// construct default-constructs the dead slot dst.
func (o *elemOps[T]) construct(dst *T) error {
	if !o.initer {
		return nil
	}
	if err := any(dst).(Initializer).Init(); err != nil {
		zero(dst)
		return err
	}
	return nil
}

// copyTo constructs a duplicate of src in the dead slot dst.
func (o *elemOps[T]) copyTo(dst, src *T) error {
	if !o.copier {
		*dst = *src
		return nil
	}
	if err := any(dst).(Copier[T]).CopyFrom(src); err != nil {
		zero(dst)
		return err
	}
	return nil
}

// relocate moves the live value at src into the dead slot dst. On success
// src is dead. On failure dst is dead and src is untouched.
func (o *elemOps[T]) relocate(dst, src *T) error {
	switch {
	case o.relocator:
		any(dst).(Relocator[T]).RelocateFrom(src)
		zero(src)
	case o.mover:
		if err := any(dst).(Mover[T]).MoveFrom(src); err != nil {
			zero(dst)
			return err
		}
		o.destroy(src)
	default:
		*dst = *src
		zero(src)
	}
	return nil
}

// assign overwrites the live value at dst with a copy of src. The copy is
// built on the side, so a failed copy leaves dst untouched.
func (o *elemOps[T]) assign(dst, src *T) error {
	if o.trivial() {
		*dst = *src
		return nil
	}
	var tmp T
	if err := o.copyTo(&tmp, src); err != nil {
		return err
	}
	o.destroy(dst)
	if err := o.relocate(dst, &tmp); err != nil {
		o.destroy(&tmp)
		return err
	}
	return nil
}

// destroy ends the lifetime of the live value at p.
func (o *elemOps[T]) destroy(p *T) {
	if o.destroyer {
		any(p).(Destroyer).Destroy()
	}
	zero(p)
}

func (o *elemOps[T]) destroyRange(s []T) {
	if !o.destroyer {
		clear(s)
		return
	}
	for i := range s {
		o.destroy(&s[i])
	}
}

// constructRange default-constructs every slot of dst. If one fails, the
// slots already constructed are destroyed.
func (o *elemOps[T]) constructRange(dst []T) error {
	if !o.initer {
		return nil
	}
	for i := range dst {
		if err := o.construct(&dst[i]); err != nil {
			o.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// copyRange constructs duplicates of src in dst. If one fails, the copies
// already made are destroyed and src is untouched.
func (o *elemOps[T]) copyRange(dst, src []T) error {
	if !o.copier {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := o.copyTo(&dst[i], &src[i]); err != nil {
			o.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// relocateRange moves src into dst element by element, first to last. If a
// move fails, the elements already moved are moved back, so src is intact
// unless moving back fails as well.
func (o *elemOps[T]) relocateRange(dst, src []T) error {
	if o.trivial() {
		copy(dst, src)
		clear(src)
		return nil
	}
	for i := range src {
		if err := o.relocate(&dst[i], &src[i]); err != nil {
			return errors.CombineErrors(err, o.relocateBack(src[:i], dst[:i]))
		}
	}
	return nil
}

// relocateBack moves dst into src. Every element is attempted; failures
// are combined.
func (o *elemOps[T]) relocateBack(src, dst []T) error {
	var err error
	for i := range dst {
		err = errors.CombineErrors(err, o.relocate(&src[i], &dst[i]))
	}
	return err
}

// transfer places the elements of the old block src into the new block dst
// following the growth policy: move when moving cannot fail, otherwise copy
// when T is copyable, otherwise move anyway. On failure src is as it was
// and dst holds nothing. After every transfer into a new block succeeded,
// commit must be called on the old elements.
func (o *elemOps[T]) transfer(dst, src []T) error {
	if o.nothrowRelocate() || !o.copier {
		return o.relocateRange(dst, src)
	}
	return o.copyRange(dst, src)
}

// undoTransfer reverts a successful transfer from src into dst.
func (o *elemOps[T]) undoTransfer(dst, src []T) error {
	if o.nothrowRelocate() || !o.copier {
		return o.relocateBack(src, dst)
	}
	o.destroyRange(dst)
	return nil
}

// commit retires the old elements once a transfer is final. Moved elements
// are already dead; copied ones are destroyed here.
func (o *elemOps[T]) commit(src []T) {
	if o.nothrowRelocate() || !o.copier {
		return
	}
	o.destroyRange(src)
}
