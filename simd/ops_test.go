package simd

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	a := Iota[float32]()
	b := Set[float32](10)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		want := a.Get(i) + b.Get(i)
		if result.Get(i) != want {
			t.Errorf("Add: lane %d: got %v, want %v", i, result.Get(i), want)
		}
	}
}

func TestSub(t *testing.T) {
	a := Set[int64](10)
	b := Iota[int64]()
	result := Sub(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		want := a.Get(i) - b.Get(i)
		if result.Get(i) != want {
			t.Errorf("Sub: lane %d: got %v, want %v", i, result.Get(i), want)
		}
	}
}

func TestMul(t *testing.T) {
	a := Iota[int32]()
	b := Set[int32](3)
	result := Mul(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		want := a.Get(i) * b.Get(i)
		if result.Get(i) != want {
			t.Errorf("Mul: lane %d: got %v, want %v", i, result.Get(i), want)
		}
	}
}

func TestDiv(t *testing.T) {
	a := Set[float64](10)
	b := Set[float64](4)
	result := Div(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Get(i) != 2.5 {
			t.Errorf("Div: lane %d: got %v, want 2.5", i, result.Get(i))
		}
	}
}

// Float division by a zero lane follows IEEE-754: it produces an infinity
// or NaN that propagates as a normal value, never a fault.
func TestDivFloatByZero(t *testing.T) {
	a := Load([]float32{1, -1, 0})
	b := Zero[float32]()
	result := Div(a, b)

	if !math.IsInf(float64(result.Get(0)), 1) {
		t.Errorf("Div: 1/0: got %v, want +Inf", result.Get(0))
	}
	if !math.IsInf(float64(result.Get(1)), -1) {
		t.Errorf("Div: -1/0: got %v, want -Inf", result.Get(1))
	}
	if !math.IsNaN(float64(result.Get(2))) {
		t.Errorf("Div: 0/0: got %v, want NaN", result.Get(2))
	}
}

// Integer division by a zero lane is a fatal runtime fault of the scalar
// type, passed through rather than masked.
func TestDivIntByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div: integer division by zero lane did not panic")
		}
	}()
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{0, 1, 1, 2})
	Div(a, b)
}

func TestMinMax(t *testing.T) {
	a := Load([]int16{-3, 5, 0, 7})
	b := Load([]int16{2, 4, 0, -9})

	minV := Min(a, b)
	maxV := Max(a, b)
	for i := 0; i < a.NumLanes(); i++ {
		wantMin, wantMax := a.Get(i), b.Get(i)
		if wantMax < wantMin {
			wantMin, wantMax = wantMax, wantMin
		}
		if minV.Get(i) != wantMin {
			t.Errorf("Min: lane %d: got %v, want %v", i, minV.Get(i), wantMin)
		}
		if maxV.Get(i) != wantMax {
			t.Errorf("Max: lane %d: got %v, want %v", i, maxV.Get(i), wantMax)
		}
	}
}

func TestNeg(t *testing.T) {
	v := Iota[float64]()
	result := Neg(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Get(i) != -v.Get(i) {
			t.Errorf("Neg: lane %d: got %v, want %v", i, result.Get(i), -v.Get(i))
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Set[float64](2)
	b := Iota[float64]()
	c := Set[float64](1)
	result := MulAdd(a, b, c)

	for i := 0; i < result.NumLanes(); i++ {
		want := math.FMA(2, float64(i), 1)
		if result.Get(i) != want {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, result.Get(i), want)
		}
	}
}

func TestOpsArePure(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{5, 6, 7, 8})
	before := a.Data()

	Add(a, b)
	Mul(a, b)
	Sub(b, a)

	for i, want := range before {
		if a.Get(i) != want {
			t.Errorf("operand mutated: lane %d became %v, want %v", i, a.Get(i), want)
		}
	}
}

// Concrete reference values for the default 128-bit width.
func TestAddMul128Float32(t *testing.T) {
	if WidthBits != 128 {
		t.Skipf("reference values assume 128-bit width, build has %d", WidthBits)
	}

	a := Load([]float32{1, 2, 3, 4})
	b := Load([]float32{5, 6, 7, 8})

	wantAdd := []float32{6, 8, 10, 12}
	wantMul := []float32{5, 12, 21, 32}

	add := Add(a, b)
	mul := Mul(a, b)
	for i := range wantAdd {
		if add.Get(i) != wantAdd[i] {
			t.Errorf("Add: lane %d: got %v, want %v", i, add.Get(i), wantAdd[i])
		}
		if mul.Get(i) != wantMul[i] {
			t.Errorf("Mul: lane %d: got %v, want %v", i, mul.Get(i), wantMul[i])
		}
	}
}
