// Copyright 2025 go-warp Authors
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

// Package main prints the configuration the warp packages were compiled for,
// which primitives take a native path on it, and the host CPU features the
// host-side reductions can use.
package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-warp/warp"
	"github.com/ajroetker/go-warp/warp/contrib/math"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Warp target: %s\n", warp.CurrentTarget())
	fmt.Printf("  NativeHalf:      %v\n", warp.NativeHalf)
	fmt.Printf("  NativeBFloat16:  %v\n", warp.NativeBFloat16)
	fmt.Printf("  NativeMinMaxNaN: %v\n", warp.NativeMinMaxNaN)
	fmt.Printf("  SyncShuffle:     %v\n", warp.SyncShuffle)
	fmt.Println()

	printNative()
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	fmt.Println()
	info := vek32.Info()
	fmt.Printf("vek32 acceleration: %v\n", info.Acceleration)
	fmt.Printf("vek32 CPU features: %s\n", strings.Join(info.CPUFeatures, " "))
}

// printNative lists the primitives that run a format's own instruction.
func printNative() {
	fmt.Println("=== native primitives ===")
	for _, d := range math.Descriptors() {
		if d.Algorithm != math.AlgorithmNative {
			continue
		}
		state := "emulated"
		if math.UsesNative(d) {
			state = "native"
		}
		fmt.Printf("  %-24s %s\n", d, state)
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
}
