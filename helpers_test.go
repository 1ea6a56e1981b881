package vector

import (
	"testing"

	"github.com/cockroachdb/errors"
)

var (
	errInit = errors.New("init failed")
	errCopy = errors.New("copy failed")
	errMove = errors.New("move failed")
)

// counters records element lifecycle calls. failXAt makes the n-th call
// (1-based) of that kind fail; 0 never fails. failMovesFrom makes every
// move from the n-th on fail.
type counters struct {
	inits, copies, moves, relocations, destroys int

	failInitAt, failCopyAt, failMoveAt, failMovesFrom int
}

var stats counters

// moveFails counts a move and reports whether it should fail.
func (c *counters) moveFails() bool {
	c.moves++
	return c.moves == c.failMoveAt || (c.failMovesFrom > 0 && c.moves >= c.failMovesFrom)
}

func resetStats(t *testing.T) {
	t.Helper()
	stats = counters{}
	t.Cleanup(func() { stats = counters{} })
}

// tracked has fallible copies and moves, so growth copies it.
type tracked struct {
	val int
}

func (e *tracked) Init() error {
	stats.inits++
	if stats.inits == stats.failInitAt {
		return errInit
	}
	e.val = -1
	return nil
}

func (e *tracked) CopyFrom(src *tracked) error {
	stats.copies++
	if stats.copies == stats.failCopyAt {
		return errCopy
	}
	e.val = src.val
	return nil
}

func (e *tracked) MoveFrom(src *tracked) error {
	if stats.moveFails() {
		return errMove
	}
	e.val = src.val
	src.val = 0
	return nil
}

func (e *tracked) Destroy() { stats.destroys++ }

// relocated moves without failing, so growth moves it.
type relocated struct {
	val int
}

func (e *relocated) RelocateFrom(src *relocated) {
	stats.relocations++
	e.val = src.val
}

func (e *relocated) CopyFrom(src *relocated) error {
	stats.copies++
	e.val = src.val
	return nil
}

func (e *relocated) Destroy() { stats.destroys++ }

// moveOnly has a fallible move and no copy.
type moveOnly struct {
	val int
}

func (e *moveOnly) MoveFrom(src *moveOnly) error {
	if stats.moveFails() {
		return errMove
	}
	e.val = src.val
	src.val = 0
	return nil
}

func (e *moveOnly) Destroy() { stats.destroys++ }

// ints returns a vector holding vals, built with PushBack.
func ints(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v := New[int]()
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	return v
}

// trackedOf returns a vector of tracked values with capacity exactly
// len(vals).
func trackedOf(t *testing.T, vals ...int) *Vector[tracked] {
	t.Helper()
	v := New[tracked]()
	if err := v.Reserve(len(vals)); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	for _, x := range vals {
		if err := v.PushBack(tracked{val: x}); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	return v
}

func trackedVals(v *Vector[tracked]) []int {
	out := make([]int, 0, v.Len())
	for e := range v.Values() {
		out = append(out, e.val)
	}
	return out
}

// moveOnlyOf returns a vector of moveOnly values with capacity exactly
// len(vals).
func moveOnlyOf(t *testing.T, vals ...int) *Vector[moveOnly] {
	t.Helper()
	v := New[moveOnly]()
	if err := v.Reserve(len(vals)); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	for _, x := range vals {
		e := moveOnly{val: x}
		if err := v.PushBackMove(&e); err != nil {
			t.Fatalf("PushBackMove(%d): %v", x, err)
		}
	}
	return v
}

func moveOnlyVals(v *Vector[moveOnly]) []int {
	out := make([]int, 0, v.Len())
	for e := range v.Values() {
		out = append(out, e.val)
	}
	return out
}
