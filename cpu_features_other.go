//go:build !amd64 && !arm64

package mmt4d

// CPUInfo returns a string describing the SIMD extensions detected on this
// host, for logs and bug reports.
func CPUInfo() string {
	return "No SIMD extensions detected"
}
