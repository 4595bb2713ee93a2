//go:build warp_sm50

package warp

// TargetArch is the accelerator generation this build targets.
const TargetArch = ArchSM50
