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

//go:generate go run ../cmd/vecgen -ops add,sub,mul,div -types float32,float64,int32,int64 -pkg simd -output z_ops_named.go

import "math"

// This file provides the builtin elementwise operations. All of them are
// pure functions of their inputs, computed lane by lane in ascending index
// order, and all of them go through the same apply mechanism that
// MakeBinaryOp exposes for caller-defined operations.

// apply computes result[i] = scalar(a[i], b[i]) for every lane.
func apply[T Lanes](a, b Vec[T], scalar func(x, y T) T) Vec[T] {
	av, bv := a.lanes(), b.lanes()
	result := make([]T, len(av))
	for i := range result {
		result[i] = scalar(av[i], bv[i])
	}
	return Vec[T]{data: result}
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T { return x + y })
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T { return x - y })
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T { return x * y })
}

// Div performs lane-wise division with the scalar type's own semantics:
// float division by a zero lane yields ±Inf or NaN per IEEE-754 and
// propagates as a normal value, integer division by a zero lane panics with
// the runtime's divide error. Neither case is masked here.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T { return x / y })
}

// Min performs lane-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max performs lane-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return apply(a, b, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	lanes := v.lanes()
	result := make([]T, len(lanes))
	for i := range result {
		result[i] = -lanes[i]
	}
	return Vec[T]{data: result}
}

// MulAdd performs fused multiply-add per lane: a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	av, bv, cv := a.lanes(), b.lanes(), c.lanes()
	result := make([]T, len(av))
	var zero T
	switch any(zero).(type) {
	case float32:
		for i := range result {
			result[i] = T(math.FMA(float64(av[i]), float64(bv[i]), float64(cv[i])))
		}
	case float64:
		aData := any(av).([]float64)
		bData := any(bv).([]float64)
		cData := any(cv).([]float64)
		rData := any(result).([]float64)
		for i := range result {
			rData[i] = math.FMA(aData[i], bData[i], cData[i])
		}
	default:
		for i := range result {
			result[i] = av[i]*bv[i] + cv[i]
		}
	}
	return Vec[T]{data: result}
}

// Equal performs lane-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	av, bv := a.lanes(), b.lanes()
	bits := make([]bool, len(av))
	for i := range bits {
		bits[i] = av[i] == bv[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs lane-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	av, bv := a.lanes(), b.lanes()
	bits := make([]bool, len(av))
	for i := range bits {
		bits[i] = av[i] != bv[i]
	}
	return Mask[T]{bits: bits}
}
