package arena

import (
	"runtime"
	"testing"
)

// BenchmarkAllocResetCycle measures the per-request pattern the arena is
// built for: a burst of small allocations followed by an O(1) reset.
func BenchmarkAllocResetCycle(b *testing.B) {
	b.Run("Arena", func(b *testing.B) {
		a, err := NewArena(64 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				if _, err := a.Alloc(64, 8); err != nil {
					b.Fatal(err)
				}
			}
			a.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})
}

func BenchmarkAllocTyped(b *testing.B) {
	type record struct {
		ID   int64
		Data [56]byte
	}

	a, err := NewArena(64 * 1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < 50; j++ {
			s, err := Alloc[record](a)
			if err != nil {
				b.Fatal(err)
			}
			s.ID = int64(j)
		}
		a.Reset()
	}
}

func BenchmarkAllocBytes(b *testing.B) {
	a, err := NewArena(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if a.Available() < 256 {
			a.Reset()
		}
		if _, err := a.AllocBytes(256); err != nil {
			b.Fatal(err)
		}
	}
}
