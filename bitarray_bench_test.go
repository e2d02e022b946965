package bitarray

import (
	"testing"

	"github.com/hupe1980/bitarray/testutil"
)

func BenchmarkGet(b *testing.B) {
	ba, _ := New(1 << 20)
	rng := testutil.NewRNG(1)
	keys := make([]int, 4096)
	for i := range keys {
		keys[i] = rng.Intn(ba.Len())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ba.Get(keys[i&4095])
	}
}

func BenchmarkSetTrue(b *testing.B) {
	ba, _ := New(1 << 20)
	rng := testutil.NewRNG(1)
	keys := make([]int, 4096)
	for i := range keys {
		keys[i] = rng.Intn(ba.Len())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ba.SetTrue(keys[i&4095])
	}
}

func BenchmarkSetRangeTrue(b *testing.B) {
	for _, span := range []int{8, 1 << 10, 1 << 16} {
		b.Run(testName(span), func(b *testing.B) {
			ba, _ := New(1 << 20)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = ba.SetRangeTrue(3, 3+span)
			}
		})
	}
}

func BenchmarkSetRangeBitByBit(b *testing.B) {
	for _, span := range []int{8, 1 << 10, 1 << 16} {
		b.Run(testName(span), func(b *testing.B) {
			ba, _ := New(1 << 20)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k := 3; k < 3+span; k++ {
					_ = ba.SetTrue(k)
				}
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	ba, _ := New(1<<20, WithInitialValue(true))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ba.Count()
	}
}

func testName(span int) string {
	switch {
	case span >= 1<<16:
		return "span=64Ki"
	case span >= 1<<10:
		return "span=1Ki"
	default:
		return "span=8"
	}
}
