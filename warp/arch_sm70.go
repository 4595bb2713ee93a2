//go:build warp_sm70

package warp

// TargetArch is the accelerator generation this build targets.
const TargetArch = ArchSM70
