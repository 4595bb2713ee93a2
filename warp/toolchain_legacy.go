//go:build warp_legacy_toolchain

package warp

// ToolchainVersion is the toolchain level, encoded as major*1000 + minor*10.
// Legacy toolchains predate the mask-qualified shuffles and the
// NaN-propagating min/max intrinsics.
const ToolchainVersion = 8000
