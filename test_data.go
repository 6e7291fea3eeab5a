package mmt4d

// GenerateFloat32 generates deterministic float32 test data in [0, 1) using
// a linear congruential generator, so tests reproduce across runs and
// architectures.
func GenerateFloat32(size int, seed uint64) []float32 {
	data := make([]float32, size)
	rng := seed
	for i := range data {
		rng = rng*1103515245 + 12345 // LCG parameters from Numerical Recipes
		data[i] = float32(uint32(rng)) / float32(1<<32)
	}
	return data
}

// GenerateFloat32Range generates deterministic float32 data in [min, max).
func GenerateFloat32Range(size int, seed uint64, min, max float32) []float32 {
	data := GenerateFloat32(size, seed)
	scale := max - min
	for i := range data {
		data[i] = data[i]*scale + min
	}
	return data
}

// GenerateInt8 generates deterministic int8 test data over the full int8
// range using the same LCG.
func GenerateInt8(size int, seed uint64) []int8 {
	data := make([]int8, size)
	rng := seed
	for i := range data {
		rng = rng*1103515245 + 12345
		data[i] = int8(rng >> 16)
	}
	return data
}
