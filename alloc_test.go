package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocSlots(t *testing.T) {
	buf, err := allocSlots[testStruct](10)
	require.NoError(t, err)
	assert.Len(t, buf, 10)
	assert.Equal(t, 10, cap(buf))
	for i, s := range buf {
		assert.Equal(t, testStruct{}, s, "slot %d not zeroed", i)
	}

	// Test zero size
	empty, err := allocSlots[int](0)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestAllocSlotsLimits(t *testing.T) {
	limit := MaxAllocBytes
	tests := []struct {
		name string
		n    int
	}{
		{"negative", -1},
		{"over limit", int(limit/16) + 1},
		{"overflowing byte size", int(^uint(0) >> 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := allocSlots[testStruct](tt.n)
			require.ErrorIs(t, err, ErrAllocationFailed)
			assert.Nil(t, buf)
		})
	}
}

func TestAllocSlotsZeroSize(t *testing.T) {
	buf, err := allocSlots[struct{}](1 << 20)
	require.NoError(t, err)
	assert.Len(t, buf, 1<<20)
}

func TestZero(t *testing.T) {
	s := testStruct{a: 1, b: 2, c: 3, d: 4}
	zero(&s)
	assert.Equal(t, testStruct{}, s)

	p := new(string)
	*p = "x"
	zero(p)
	assert.Empty(t, *p)
}
