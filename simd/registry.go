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

import "sync"

// BinaryOp is an elementwise operation over two vectors of the same lane
// type, produced by MakeBinaryOp or RegisterBinaryOp.
type BinaryOp[T Lanes] func(a, b Vec[T]) Vec[T]

// MakeBinaryOp generalizes a scalar operator to a vector operation.
// The returned operation computes result[i] = scalar(a[i], b[i]) for every
// lane index in ascending order. It is a pure function of its two inputs.
//
//	xor := simd.MakeBinaryOp(func(x, y uint32) uint32 { return x ^ y })
//	c := xor(a, b)
func MakeBinaryOp[T Lanes](scalar func(x, y T) T) BinaryOp[T] {
	return func(a, b Vec[T]) Vec[T] {
		return apply(a, b, scalar)
	}
}

// opKey identifies a registered operation. Operations registered under the
// same name for different lane types never collide.
type opKey struct {
	name string
	lane string
}

var (
	opsMu sync.RWMutex
	ops   = map[opKey]any{}
)

// RegisterBinaryOp builds a vector operation from scalar, records it under
// name for lane type T, and returns it. Registration is idempotent: the
// first registration for a given (name, lane type) pair wins, and
// registering the same pair again returns the originally recorded operation
// regardless of the scalar operator passed.
func RegisterBinaryOp[T Lanes](name string, scalar func(x, y T) T) BinaryOp[T] {
	key := opKey{name: name, lane: laneTypeName[T]()}
	opsMu.Lock()
	defer opsMu.Unlock()
	if existing, ok := ops[key]; ok {
		return existing.(BinaryOp[T])
	}
	op := MakeBinaryOp(scalar)
	ops[key] = op
	return op
}

// LookupBinaryOp returns the operation recorded under name for lane type T.
// The builtin names "add", "sub", "mul", and "div" resolve for every lane
// type without prior registration; anything else must have been registered
// with RegisterBinaryOp first.
func LookupBinaryOp[T Lanes](name string) (BinaryOp[T], bool) {
	key := opKey{name: name, lane: laneTypeName[T]()}
	opsMu.RLock()
	existing, ok := ops[key]
	opsMu.RUnlock()
	if ok {
		return existing.(BinaryOp[T]), true
	}
	switch name {
	case "add":
		return Add[T], true
	case "sub":
		return Sub[T], true
	case "mul":
		return Mul[T], true
	case "div":
		return Div[T], true
	}
	return nil, false
}
