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

import (
	"fmt"
	"unsafe"
)

// WidthBytes is WidthBits expressed in bytes.
const WidthBytes = WidthBits / 8

// MaxLanes returns the number of lanes of type T in a vector of WidthBits.
//
// For example, with the default 128-bit width:
//   - float32: 128/32 = 4 lanes
//   - float64: 128/64 = 2 lanes
//   - int8: 128/8 = 16 lanes
//
// Lane counts are fixed before any vector value exists. A lane type whose
// size in bits does not evenly divide WidthBits, or that does not fit into
// WidthBits at all, has no well-formed vector type: MaxLanes panics rather
// than truncating to a partial lane.
func MaxLanes[T Lanes]() int {
	var dummy T
	bits := 8 * int(unsafe.Sizeof(dummy))
	if bits > WidthBits || WidthBits%bits != 0 {
		panic(fmt.Sprintf("simd: %d-bit lane type %T does not evenly divide the %d-bit vector width", bits, dummy, WidthBits))
	}
	return WidthBits / bits
}

// laneTypeName returns a unique name for lane type T, used as part of the
// key in the named-operation registry. Distinct defined types with the same
// underlying type get distinct names.
func laneTypeName[T Lanes]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
