package easyga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglePointSplice(t *testing.T) {
	rng := &scriptedRand{}
	ga, err := New(4, 3, onesFitness, defaultStrategy(), rng)
	require.NoError(t, err)

	p1 := bits(1, 1, 0)
	p2 := bits(0, 0, 1)
	pairs := []ParentPair{{A: p1, B: p2}, {A: p1, B: p2}}

	// Intn(2) = 0 forces the cut point k = 1 for both pairs.
	rng.ints = []int{0, 0}
	offspring, err := ga.SinglePointCrossover(pairs)
	require.NoError(t, err)
	require.Len(t, offspring, 4)

	assert.True(t, offspring[0].Equal(bits(1, 0, 1)), "first child takes p1[0:1] + p2[1:3]")
	assert.True(t, offspring[1].Equal(bits(0, 1, 0)), "second child is the complementary splice")
}

func TestSinglePointBitConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ga, err := New(8, 16, onesFitness, defaultStrategy(), rng)
	require.NoError(t, err)

	pairs := make([]ParentPair, 4)
	for i := range pairs {
		pairs[i] = ParentPair{A: RandomGenotype(16, rng), B: RandomGenotype(16, rng)}
	}

	offspring, err := ga.SinglePointCrossover(pairs)
	require.NoError(t, err)
	require.Len(t, offspring, 8)

	// At each locus the two children together carry exactly the two parent
	// bits, only reassigned between them.
	for i, pair := range pairs {
		c1, c2 := offspring[2*i], offspring[2*i+1]
		for j := 0; j < 16; j++ {
			assert.Equal(t, pair.A[j] && pair.B[j], c1[j] && c2[j], "pair %d locus %d", i, j)
			assert.Equal(t, pair.A[j] || pair.B[j], c1[j] || c2[j], "pair %d locus %d", i, j)
		}
	}
}

func TestSinglePointPairCountMismatch(t *testing.T) {
	ga, err := New(8, 4, onesFitness, defaultStrategy(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	pairs := []ParentPair{
		{A: bits(1, 0, 1, 0), B: bits(0, 1, 0, 1)},
		{A: bits(1, 1, 0, 0), B: bits(0, 0, 1, 1)},
		{A: bits(1, 1, 1, 1), B: bits(0, 0, 0, 0)},
	}
	_, err = ga.SinglePointCrossover(pairs)
	assert.ErrorIs(t, err, ErrPairCount)
}

func TestSinglePointParentLengthMismatch(t *testing.T) {
	ga, err := New(2, 4, onesFitness, defaultStrategy(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	pairs := []ParentPair{{A: bits(1, 0, 1, 0), B: bits(0, 1)}}
	_, err = ga.SinglePointCrossover(pairs)
	assert.ErrorIs(t, err, ErrGenomeLength)
}

func TestSinglePointNeedsTwoBits(t *testing.T) {
	// With a 1-bit genome the valid cut point set {1..L-1} is empty.
	ga, err := New(2, 1, onesFitness, defaultStrategy(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	pairs := []ParentPair{{A: bits(1), B: bits(0)}}
	_, err = ga.SinglePointCrossover(pairs)
	assert.ErrorIs(t, err, ErrGenomeLength)
}

func TestUniformCrossoverInheritsFromParents(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ga, err := New(6, 8, onesFitness, defaultStrategy(), rng)
	require.NoError(t, err)

	pairs := make([]ParentPair, 6)
	for i := range pairs {
		pairs[i] = ParentPair{A: RandomGenotype(8, rng), B: RandomGenotype(8, rng)}
	}

	offspring, err := ga.UniformCrossover(pairs)
	require.NoError(t, err)
	require.Len(t, offspring, 6)

	for i, child := range offspring {
		require.Len(t, child, 8)
		for j := range child {
			fromParent := child[j] == pairs[i].A[j] || child[j] == pairs[i].B[j]
			assert.True(t, fromParent, "child %d locus %d carries a bit from neither parent", i, j)
		}
	}
}

func TestUniformCrossoverPairCountMismatch(t *testing.T) {
	ga, err := New(6, 4, onesFitness, defaultStrategy(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	pairs := []ParentPair{{A: bits(1, 0, 1, 0), B: bits(0, 1, 0, 1)}}
	_, err = ga.UniformCrossover(pairs)
	assert.ErrorIs(t, err, ErrPairCount)
}
