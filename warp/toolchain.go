//go:build !warp_legacy_toolchain

package warp

// ToolchainVersion is the toolchain level, encoded as major*1000 + minor*10.
const ToolchainVersion = 12000
