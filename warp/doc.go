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

// Package warp provides the per-lane building blocks used by data-parallel
// kernel bodies: reduced-precision element types, special-value
// classification, operator emulation for formats without native support,
// lane-group (warp) data exchange and indexing helpers.
//
// # Element formats
//
// Every function is generic over [Floats]:
//
//   - float32, float64
//   - [Half]: IEEE binary16 (S | EEEEE | MMMMMMMMMM)
//   - [BFloat16]: brain float (S | EEEEEEEE | MMMMMMM)
//   - [Float8E4M3FN], [Float8E4M3FNUZ], [Float8E5M2], [Float8E5M2FNUZ]:
//     8-bit micro-floats with non-IEEE Inf/NaN encodings
//
// Each format has its own NaN/Inf boundary constants, see [Format.Info].
//
// # Build-time targets
//
// The accelerator generation, the toolchain level and 8-bit support are
// compile-time constants selected with build tags:
//
//	go build                           # sm80, modern toolchain, float8 on
//	go build -tags warp_sm70           # no native bf16, no NaN-propagating min/max
//	go build -tags warp_sm53           # native half only
//	go build -tags warp_sm50           # everything emulated
//	go build -tags warp_legacy_toolchain
//	go build -tags warp_nofloat8       # micro-float types leave the Floats constraint
//
// Implementations branch on these constants, so the compiler drops the unused
// path. Nothing is probed at runtime.
//
// # Lane groups
//
// A [Lanes] value holds one register for each of the 32 lanes of a group.
// Shuffles permute it the way the hardware exchanges registers in lock step.
package warp
