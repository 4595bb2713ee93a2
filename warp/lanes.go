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

import "math/bits"

const (
	// WarpSize is the number of lanes executing in lock step.
	WarpSize = 32

	// FullMask has every lane participating.
	FullMask uint32 = 0xFFFFFFFF
)

// Lanes holds one register per lane of a lane group: element i is lane i's
// copy of the value. Shuffles read the whole group at once, which is exactly
// the lock-step exchange the hardware performs; there is nothing to wait on.
type Lanes[T any] [WarpSize]T

// Broadcast returns a group in which every lane holds value.
func Broadcast[T any](value T) Lanes[T] {
	var v Lanes[T]
	for i := range v {
		v[i] = value
	}
	return v
}

// LaneIDs returns a group in which lane i holds i.
func LaneIDs() Lanes[int] {
	var v Lanes[int]
	for i := range v {
		v[i] = i
	}
	return v
}

// Lane returns lane i's value.
func (v Lanes[T]) Lane(i int) T {
	return v[i]
}

// LaneMaskLT returns the mask of lanes below lane.
func LaneMaskLT(lane int) uint32 {
	return uint32(1)<<uint(lane) - 1
}

// LaneMaskGT returns the mask of lanes above lane.
func LaneMaskGT(lane int) uint32 {
	return ^(uint32(1)<<uint(lane+1) - 1)
}

// Shfl returns, for every lane, the value held by srcLane.
func Shfl[T any](v Lanes[T], srcLane int) Lanes[T] {
	return ShflSync(FullMask, v, srcLane, WarpSize)
}

// ShflXor returns, for every lane, the value of lane ^ laneMask.
func ShflXor[T any](v Lanes[T], laneMask int) Lanes[T] {
	return ShflXorSync(FullMask, v, laneMask, WarpSize)
}

// ShflUp returns, for every lane, the value of lane - delta.
func ShflUp[T any](v Lanes[T], delta int) Lanes[T] {
	return ShflUpSync(FullMask, v, delta, WarpSize)
}

// ShflDown returns, for every lane, the value of lane + delta.
func ShflDown[T any](v Lanes[T], delta int) Lanes[T] {
	return ShflDownSync(FullMask, v, delta, WarpSize)
}

// ShflSync broadcasts within each segment of width lanes: lane i reads lane
// (i &^ (width-1)) + srcLane%width.
//
// Lanes outside mask keep their own value. Reading from a lane outside mask
// is undefined on hardware; here it yields that lane's register.
func ShflSync[T any](mask uint32, v Lanes[T], srcLane, width int) Lanes[T] {
	checkWidth(width)
	return shuffle(mask, v, func(lane int) int {
		return lane&^(width-1) + srcLane&(width-1)
	})
}

// ShflXorSync exchanges with lane ^ laneMask. Only the low five bits of
// laneMask are used. A lane whose partner lies in a later segment of width
// lanes keeps its own value.
func ShflXorSync[T any](mask uint32, v Lanes[T], laneMask, width int) Lanes[T] {
	checkWidth(width)
	laneMask &= WarpSize - 1
	return shuffle(mask, v, func(lane int) int {
		src := lane ^ laneMask
		if src >= (lane/width+1)*width {
			return lane
		}
		return src
	})
}

// ShflUpSync reads lane - delta. Lanes whose source falls before the start of
// their segment keep their own value, as do all lanes when delta is negative.
func ShflUpSync[T any](mask uint32, v Lanes[T], delta, width int) Lanes[T] {
	checkWidth(width)
	return shuffle(mask, v, func(lane int) int {
		if delta < 0 || lane&(width-1) < delta {
			return lane
		}
		return lane - delta
	})
}

// ShflDownSync reads lane + delta. Lanes whose source falls past the end of
// their segment keep their own value, as do all lanes when delta is negative.
func ShflDownSync[T any](mask uint32, v Lanes[T], delta, width int) Lanes[T] {
	checkWidth(width)
	return shuffle(mask, v, func(lane int) int {
		if delta < 0 || delta >= width || lane&(width-1)+delta >= width {
			return lane
		}
		return lane + delta
	})
}

func shuffle[T any](mask uint32, v Lanes[T], src func(lane int) int) Lanes[T] {
	if !SyncShuffle {
		// Legacy shuffles have no participation mask.
		mask = FullMask
	}
	var out Lanes[T]
	for lane := range out {
		if mask&(1<<uint(lane)) == 0 {
			out[lane] = v[lane]
			continue
		}
		out[lane] = v[src(lane)]
	}
	return out
}

func checkWidth(width int) {
	if width < 1 || width > WarpSize || bits.OnesCount(uint(width)) != 1 {
		panic("warp: shuffle width must be a power of two in [1, 32]")
	}
}

// Ballot returns the mask of participating lanes whose predicate is set.
func Ballot(mask uint32, pred Lanes[bool]) uint32 {
	var out uint32
	for lane, p := range pred {
		if p && mask&(1<<uint(lane)) != 0 {
			out |= 1 << uint(lane)
		}
	}
	return out
}
