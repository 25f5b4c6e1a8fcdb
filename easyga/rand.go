package easyga

// Rand is the source of randomness used for seeding, selection draws,
// crossover points and mutation flips. *math/rand.Rand satisfies it. Two
// runs with the same seeded source and the same strategy produce identical
// generation sequences.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}
