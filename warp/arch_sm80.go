//go:build !warp_sm50 && !warp_sm53 && !warp_sm70

package warp

// TargetArch is the accelerator generation this build targets.
const TargetArch = ArchSM80
