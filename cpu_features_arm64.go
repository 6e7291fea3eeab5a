//go:build arm64

package mmt4d

import "golang.org/x/sys/cpu"

// cpuFeatures tracks the SIMD capabilities the arch registry cares about on
// ARM64. HasASIMD corresponds to NEON; FPHP and ASIMDHP together indicate
// half-precision arithmetic support.
type cpuFeatures struct {
	HasNEON bool
	HasFP16 bool
}

// hostFeatures is probed once at startup and read-only afterwards, so the
// registries can consult it from any goroutine without locking.
var hostFeatures cpuFeatures

func init() {
	hostFeatures = cpuFeatures{
		HasNEON: cpu.ARM64.HasASIMD,
		HasFP16: cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP,
	}
}

// CPUInfo returns a string describing the SIMD extensions detected on this
// host, for logs and bug reports.
func CPUInfo() string {
	features := []string{}
	if hostFeatures.HasNEON {
		features = append(features, "NEON")
	}
	if hostFeatures.HasFP16 {
		features = append(features, "FP16")
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
