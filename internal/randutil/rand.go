// Package randutil centralises deterministic RNG construction so that
// every call site derives reproducible sequences from a single int64
// seed.
package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two 64-bit seeds; both are derived with splitmix64 steps so
// that nearby input seeds still produce unrelated streams.
func New(seed int64) *rand.Rand {
	s := uint64(seed)
	a := splitmix64(&s)
	b := splitmix64(&s)
	return rand.New(rand.NewPCG(a, b))
}

func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
