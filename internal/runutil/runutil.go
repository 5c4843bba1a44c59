// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads maps the --threads value to a worker count: 0 means all
// CPUs, anything else is used as-is.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ChannelBuffer sizes the writer channel for a worker count.
func ChannelBuffer(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}
