package vector

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// MaxAllocBytes is the largest block, in bytes, a single RawMemory may
// request (1 TiB). Larger requests fail with ErrAllocationFailed instead of
// reaching the runtime.
const MaxAllocBytes uint64 = 1 << 40

// sizeOf returns the size in bytes of one slot of T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlots returns a block of n zeroed slots of T, or nil if n == 0.
func allocSlots[T any](n int) (buf []T, err error) {
	if n == 0 {
		return nil, nil
	}
	size := uint64(sizeOf[T]())
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocationFailed, "negative capacity %d", n)
	}
	if size != 0 && uint64(n) > MaxAllocBytes/size {
		return nil, errors.Wrapf(ErrAllocationFailed,
			"%d elements of %d bytes exceed the %d byte limit", n, size, MaxAllocBytes)
	}

	// makeslice reports impossible lengths as a runtime error panic.
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf = nil
			err = errors.Wrapf(ErrAllocationFailed, "%d elements of %d bytes: %v", n, size, rerr)
		}
	}()
	return make([]T, n), nil
}

// zero resets the slot at p to the zero value of T.
func zero[T any](p *T) {
	var z T
	*p = z
}
