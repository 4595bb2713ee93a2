//go:build warp_sm53

package warp

// TargetArch is the accelerator generation this build targets.
const TargetArch = ArchSM53
