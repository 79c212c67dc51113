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

// Command vecinfo prints the vector width this build emulates, the lane
// count it gives each lane type, and the SIMD features the host CPU
// actually has. The feature report is purely informational: the simd
// package never consults it, the emulated width is fixed at build time.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/Paulo-D2000/not-a-simd-lib/simd"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Emulated vector width: %d bits (%d bytes)\n", simd.WidthBits, simd.WidthBytes)
	fmt.Println("Lanes per vector:")
	fmt.Printf("  float32: %d\n", simd.MaxLanes[float32]())
	fmt.Printf("  float64: %d\n", simd.MaxLanes[float64]())
	fmt.Printf("  int8:    %d\n", simd.MaxLanes[int8]())
	fmt.Printf("  int16:   %d\n", simd.MaxLanes[int16]())
	fmt.Printf("  int32:   %d\n", simd.MaxLanes[int32]())
	fmt.Printf("  int64:   %d\n", simd.MaxLanes[int64]())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Printf("No SIMD feature report for %s\n", runtime.GOARCH)
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 (informational only) ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline, 128-bit)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v (floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 (informational only) ===")
	fmt.Printf("  HasSSE2:    %v (128-bit baseline)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v (256-bit float)\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v (256-bit integer)\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v (512-bit foundation)\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v (fused multiply-add)\n", cpu.X86.HasFMA)
}
