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

//go:build !simdw256 && !simdw512

package simd

// WidthBits is the total bit-width of every vector in this build.
//
// 128 bits is the default, matching a single SSE/NEON register. Select a
// wider emulated register once per build with -tags simdw256 or
// -tags simdw512; there is no runtime override and no per-type override.
const WidthBits = 128
