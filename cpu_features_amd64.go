//go:build amd64

package mmt4d

import "golang.org/x/sys/cpu"

// cpuFeatures tracks the instruction set extensions the arch registry cares
// about on x86-64.
type cpuFeatures struct {
	HasSSE4    bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool
}

// hostFeatures is probed once at startup and read-only afterwards, so the
// registries can consult it from any goroutine without locking.
var hostFeatures cpuFeatures

func init() {
	hostFeatures = cpuFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
	}
}

// CPUInfo returns a string describing the SIMD extensions detected on this
// host, for logs and bug reports.
func CPUInfo() string {
	features := []string{}
	if hostFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if hostFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if hostFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if hostFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if len(features) == 0 {
		return "No SIMD extensions detected"
	}
	result := "CPU features: "
	for i, f := range features {
		if i > 0 {
			result += ", "
		}
		result += f
	}
	return result
}
