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

package warp

import "fmt"

// Arch is an accelerator generation, encoded as compute capability * 100.
type Arch int

const (
	ArchSM50 Arch = 500 // no half arithmetic
	ArchSM53 Arch = 530 // native half arithmetic and math
	ArchSM70 Arch = 700
	ArchSM80 Arch = 800 // native bf16, NaN-propagating min/max
)

func (a Arch) String() string {
	return fmt.Sprintf("sm_%d", int(a)/10)
}

// Capabilities derived from the build configuration. They are constants so
// the path that is not taken is compiled out.
const (
	// NativeHalf selects hardware half operators and math over the
	// widen-compute-narrow emulation.
	NativeHalf = TargetArch >= ArchSM53

	// NativeBFloat16 selects hardware bf16 operators.
	NativeBFloat16 = TargetArch >= ArchSM80

	// NativeMinMaxNaN selects the NaN-propagating min/max instruction for
	// half and bf16. It needs both the hardware and a toolchain that
	// exposes it.
	NativeMinMaxNaN = TargetArch >= ArchSM80 && ToolchainVersion >= 11000

	// SyncShuffle selects the mask-qualified shuffle intrinsics. Older
	// toolchains only have the unmasked forms.
	SyncShuffle = ToolchainVersion >= 9000
)

// Target describes the configuration this package was compiled for.
type Target struct {
	Arch      Arch
	Toolchain int
	Float8    bool
}

func (t Target) String() string {
	return fmt.Sprintf("%s toolchain=%d.%d float8=%v",
		t.Arch, t.Toolchain/1000, t.Toolchain%1000/10, t.Float8)
}

// CurrentTarget returns the compiled configuration.
func CurrentTarget() Target {
	return Target{Arch: TargetArch, Toolchain: ToolchainVersion, Float8: Float8Enabled}
}
