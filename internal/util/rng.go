package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// SampleN picks up to n distinct elements of items with a partial
// Fisher-Yates shuffle. items is not modified.
func SampleN[T any](rng *rand.Rand, items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	pool := append([]T(nil), items...)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// DeriveSeed returns the seed of batch run number run. Distinct runs of one
// batch always get distinct seeds, whichever worker executes them.
func DeriveSeed(base int64, run int) int64 {
	return base + int64(run)
}
