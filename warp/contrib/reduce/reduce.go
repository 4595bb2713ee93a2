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

// Package reduce provides lane-group reductions built from warp shuffles.
//
// Every reduction is a butterfly: log2(width) rounds of ShflXor, after which
// every lane of a segment holds the segment's result. The combining order is
// fixed, so results are reproducible for a given width.
package reduce

import (
	"github.com/ajroetker/go-warp/warp"
	wmath "github.com/ajroetker/go-warp/warp/contrib/math"
	"github.com/viterin/vek/vek32"
)

// Sum returns the sum of all lanes, broadcast to every lane.
func Sum[T warp.Floats](v warp.Lanes[T]) warp.Lanes[T] {
	return SumWidth(v, warp.WarpSize)
}

// SumWidth sums independently within each segment of width lanes. Width must
// be a power of two no larger than warp.WarpSize.
func SumWidth[T warp.Floats](v warp.Lanes[T], width int) warp.Lanes[T] {
	return butterfly(v, width, add[T])
}

// Max returns the largest lane value, broadcast to every lane. A NaN in any
// lane makes the result the canonical NaN.
func Max[T warp.Floats](v warp.Lanes[T]) warp.Lanes[T] {
	return butterfly(v, warp.WarpSize, wmath.Max[T])
}

// Min returns the smallest lane value, broadcast to every lane, with the same
// NaN rule as Max.
func Min[T warp.Floats](v warp.Lanes[T]) warp.Lanes[T] {
	return butterfly(v, warp.WarpSize, wmath.Min[T])
}

// InclusiveScan returns, in lane i, the sum of lanes 0 through i.
func InclusiveScan[T warp.Floats](v warp.Lanes[T]) warp.Lanes[T] {
	for delta := 1; delta < warp.WarpSize; delta *= 2 {
		up := warp.ShflUp(v, delta)
		for lane := range v {
			if lane >= delta {
				v[lane] = add(up[lane], v[lane])
			}
		}
	}
	return v
}

func butterfly[T any](v warp.Lanes[T], width int, combine func(a, b T) T) warp.Lanes[T] {
	for m := width / 2; m > 0; m /= 2 {
		other := warp.ShflXorSync(warp.FullMask, v, m, width)
		for lane := range v {
			v[lane] = combine(v[lane], other[lane])
		}
	}
	return v
}

func add[T warp.Floats](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(av + any(b).(float32)).(T)
	case float64:
		return any(av + any(b).(float64)).(T)
	default:
		return warp.Apply2(a, b, func(x, y float32) float32 { return x + y })
	}
}

// SumSlice reduces xs the way a single lane group does: lane i accumulates
// elements i, i+32, i+64, ... and the lanes are then combined with Sum.
// float32 input is summed with vek32 instead.
func SumSlice[T warp.Floats](xs []T) T {
	if f, ok := any(xs).([]float32); ok {
		return any(vek32.Sum(f)).(T)
	}
	var acc warp.Lanes[T]
	for i, x := range xs {
		lane := i % warp.WarpSize
		if i < warp.WarpSize {
			acc[lane] = x
			continue
		}
		acc[lane] = add(acc[lane], x)
	}
	return Sum(acc).Lane(0)
}
