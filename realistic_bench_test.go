package vector

import (
	"fmt"
	"slices"
	"testing"
)

// BenchmarkRealisticUsage compares vector workloads against builtin slices
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append with growth from empty
	b.Run("Append/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Append after Reserve (no reallocation)
	b.Run("ReservedAppend/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			_ = v.Reserve(1000)
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("ReservedAppend/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Struct elements with pointers
	type record struct {
		ID   int64
		Name string
		Tags []string
	}

	b.Run("StructAppend/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New[record]()
			for j := 0; j < 100; j++ {
				_ = v.PushBack(record{ID: int64(j), Name: "r"})
			}
			v.Release()
		}
	})

	b.Run("StructAppend/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []record
			for j := 0; j < 100; j++ {
				s = append(s, record{ID: int64(j), Name: "r"})
			}
			_ = s
		}
	})
}

// BenchmarkShifting measures insert and erase at the front, where every
// element has to move
func BenchmarkShifting(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("InsertFront-%d/Vector", size), func(b *testing.B) {
			v := New[int]()
			_ = v.Reserve(size + 1)
			for j := 0; j < size; j++ {
				_ = v.PushBack(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = v.Insert(0, i)
				_, _ = v.Erase(0)
			}
		})

		b.Run(fmt.Sprintf("InsertFront-%d/Builtin", size), func(b *testing.B) {
			s := make([]int, size, size+1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s = slices.Insert(s, 0, i)
				s = slices.Delete(s, 0, 1)
			}
		})
	}
}

// BenchmarkTrackedGrowth measures the copy fallback used for element types
// whose move can fail
func BenchmarkTrackedGrowth(b *testing.B) {
	b.Run("Copying", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[tracked]()
			for j := 0; j < 256; j++ {
				_ = v.PushBack(tracked{val: j})
			}
		}
		stats = counters{}
	})

	b.Run("Relocating", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[relocated]()
			for j := 0; j < 256; j++ {
				_ = v.PushBack(relocated{val: j})
			}
		}
		stats = counters{}
	})
}
