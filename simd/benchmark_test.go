package simd

import "testing"

func BenchmarkAdd(b *testing.B) {
	x := Iota[float32]()
	y := Set[float32](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Add(x, y)
	}
}

func BenchmarkMakeBinaryOp(b *testing.B) {
	op := MakeBinaryOp(func(x, y float32) float32 { return x + y })
	x := Iota[float32]()
	y := Set[float32](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op(x, y)
	}
}

func BenchmarkDot(b *testing.B) {
	x := Iota[float32]()
	y := Set[float32](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Dot(x, y)
	}
}

func BenchmarkDotFused(b *testing.B) {
	x := Iota[float32]()
	y := Set[float32](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DotFused(x, y)
	}
}

func BenchmarkReduceFuncDot(b *testing.B) {
	x := Iota[float32]()
	y := Set[float32](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ReduceFunc(func(accum float32, j int, v ...Vec[float32]) float32 {
			return accum + v[0].Get(j)*v[1].Get(j)
		}, x, y)
	}
}
