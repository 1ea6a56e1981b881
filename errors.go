package vector

import "github.com/cockroachdb/errors"

var (
	// ErrAllocationFailed is returned when a block for the requested number
	// of elements cannot be obtained. Check with errors.Is; the returned
	// error carries the element count and byte size.
	ErrAllocationFailed = errors.New("vector: allocation failed")

	// ErrNotCopyable is returned by copying operations on a vector whose
	// element type is move-only.
	ErrNotCopyable = errors.New("vector: element type is not copyable")

	// ErrIndexOutOfRange is returned by the checked accessors.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidLength is returned when a negative length is requested.
	ErrInvalidLength = errors.New("vector: invalid length")
)

// assertf panics when cond is false in builds with the invariants tag.
// In regular builds it compiles away, leaving the caller's fast path
// unchecked.
func assertf(cond bool, format string, args ...interface{}) {
	if invariants && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
