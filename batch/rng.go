// SPDX-License-Identifier: MIT

package batch

import "math/rand"

// DeriveSeed mixes a base seed and a job index into an independent seed
// (SplitMix64 finalizer). Equal inputs always yield equal outputs.
//
// Complexity: O(1).
func DeriveSeed(base int64, job uint64) int64 {
	var x uint64
	x = uint64(base) ^ (job + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// jobRand returns the deterministic source of job i.
// math/rand.Rand is not goroutine-safe; every job gets its own.
func jobRand(base int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(base, uint64(i))))
}
