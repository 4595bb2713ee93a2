package warp

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MaxThreadsPerBlock is the block size elementwise kernels launch with.
const MaxThreadsPerBlock = 256

// Dim3 holds 3D grid or block dimensions. Unused dimensions are 1.
type Dim3 struct {
	X, Y, Z int
}

// Size returns the number of elements covered by d.
func (d Dim3) Size() int {
	return d.X * d.Y * d.Z
}

// ThreadID identifies a lane within a launch: the block it belongs to, its
// position in that block, and the launch dimensions.
type ThreadID struct {
	BlockIdx  Dim3
	ThreadIdx Dim3
	BlockDim  Dim3
	GridDim   Dim3
}

// Global returns the flattened index along X: blockDim.x*blockIdx.x + threadIdx.x.
func (t ThreadID) Global() int {
	return t.BlockDim.X*t.BlockIdx.X + t.ThreadIdx.X
}

// ElementwiseIndex returns the lane's element index and whether it is below n.
// It is the first statement of every elementwise kernel body:
//
//	id, ok := warp.ElementwiseIndex(tid, n)
//	if !ok {
//		return
//	}
func ElementwiseIndex(t ThreadID, n int) (int, bool) {
	id := t.Global()
	return id, id < n
}

// CeilDiv returns ⌈a/b⌉ for a >= 0 and b > 0. The sum a+b-1 is formed in
// 128-bit unsigned arithmetic, so b may be the maximum of its type.
// Like integer division, it panics when b is zero.
func CeilDiv[T, U constraints.Integer](a T, b U) T {
	ua, ub := uint64(a), uint64(b)
	if ub == 0 {
		panic("warp: CeilDiv by zero")
	}
	lo, carry := bits.Add64(ua, ub-1, 0)
	q, _ := bits.Div64(carry, lo, ub)
	return T(q)
}

// GridFor returns the 1D launch shape that covers n elements with blocks of
// threadsPerBlock lanes.
func GridFor(n, threadsPerBlock int) (grid, block Dim3) {
	blocks := CeilDiv(n, threadsPerBlock)
	if blocks == 0 {
		blocks = 1
	}
	return Dim3{X: blocks, Y: 1, Z: 1}, Dim3{X: threadsPerBlock, Y: 1, Z: 1}
}
