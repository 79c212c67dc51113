// Copyright 2025 not-a-simd-lib Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// Reductions fold vectors down to a single scalar. The accumulation order
// for every reduction in this file is ascending lane index starting from
// the zero value of T. That order is a documented guarantee, not an
// implementation detail: floating-point addition is not associative, so a
// fixed order is what makes float results reproducible across the fused and
// composed formulations of the same reduction.

// ReduceSum sums all lanes, left to right.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, lane := range v.lanes() {
		sum += lane
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	lanes := v.lanes()
	min := lanes[0]
	for _, lane := range lanes[1:] {
		if lane < min {
			min = lane
		}
	}
	return min
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	lanes := v.lanes()
	max := lanes[0]
	for _, lane := range lanes[1:] {
		if lane > max {
			max = lane
		}
	}
	return max
}

// ReduceFunc folds one or more vectors to a scalar through f. The
// accumulator starts at the zero value of T; for each lane index i in
// ascending order it becomes f(accum, i, vecs...). The callback receives
// the full set of input vectors rather than single lanes and indexes into
// whichever ones it needs, so one callback can combine several vectors with
// arbitrary per-lane logic:
//
//	dot := simd.ReduceFunc(func(accum float32, i int, v ...simd.Vec[float32]) float32 {
//		return accum + v[0].Get(i)*v[1].Get(i)
//	}, a, b)
//
// The reduction is single-pass and non-restartable; intermediate
// accumulator states are not observable outside f.
func ReduceFunc[T Lanes](f func(accum T, i int, vecs ...Vec[T]) T, vecs ...Vec[T]) T {
	var accum T
	n := MaxLanes[T]()
	for i := 0; i < n; i++ {
		accum = f(accum, i, vecs...)
	}
	return accum
}

// ReduceExpr folds to a scalar through an inline step expression. The step
// closure captures the vectors it reads directly instead of receiving them
// as arguments; it is otherwise identical to ReduceFunc and produces the
// same final accumulator for the same per-step computation:
//
//	dot := simd.ReduceExpr(func(accum float32, i int) float32 {
//		return accum + a.Get(i)*b.Get(i)
//	})
func ReduceExpr[T Lanes](step func(accum T, i int) T) T {
	var accum T
	n := MaxLanes[T]()
	for i := 0; i < n; i++ {
		accum = step(accum, i)
	}
	return accum
}

// Dot returns the dot product of a and b as ReduceSum(Mul(a, b)).
func Dot[T Lanes](a, b Vec[T]) T {
	return ReduceSum(Mul(a, b))
}

// DotFused computes the dot product in a single pass without materializing
// the intermediate product vector. Each product is rounded before it is
// added (no FMA) and lanes accumulate in ascending order, so DotFused
// agrees with Dot exactly for integer lanes and bit-for-bit for float lanes
// given identical inputs.
func DotFused[T Lanes](a, b Vec[T]) T {
	av, bv := a.lanes(), b.lanes()
	var accum T
	for i := range av {
		accum += av[i] * bv[i]
	}
	return accum
}
