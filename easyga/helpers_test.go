package easyga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays predetermined values and falls back to zero when the
// script runs out, which makes Bernoulli draws deterministic (0.0 < p for
// any p > 0) and Intn always pick the first option.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// onesFitness counts one bits.
func onesFitness(g Genotype) (float64, error) {
	return float64(g.Ones()), nil
}

// valueFitness reads the genotype as a big-endian unsigned integer.
func valueFitness(g Genotype) (float64, error) {
	v := 0
	for _, bit := range g {
		v <<= 1
		if bit {
			v++
		}
	}
	return float64(v), nil
}

// bits builds a genotype from 0/1 literals.
func bits(vals ...int) Genotype {
	g := make(Genotype, len(vals))
	for i, v := range vals {
		g[i] = v != 0
	}
	return g
}

// defaultStrategy is the roulette + single-point + light mutation baseline
// used where the test only needs some working strategy.
func defaultStrategy() *BuiltinStrategy {
	return &BuiltinStrategy{
		Selection:       SelectionRoulette,
		CrossoverMethod: CrossoverSinglePoint,
		MutationRate:    0.01,
	}
}

// setGenotypes overwrites the engine's population with fixed genotypes.
func setGenotypes(t *testing.T, ga *GeneticAlgorithm, genotypes ...Genotype) {
	t.Helper()
	require.Len(t, genotypes, ga.pop.Size(), "setGenotypes must cover the whole population")
	for i, g := range genotypes {
		require.NoError(t, ga.pop.members[i].SetGenotype(g))
	}
}
