package easyga

import (
	"math/big"
	"strings"
)

// Genotype is a fixed-length bitstring encoding a candidate solution. The
// length is fixed at construction and must never drift across crossover or
// mutation.
type Genotype []bool

// NewGenotype returns an all-zero genotype of the given length.
func NewGenotype(length int) Genotype {
	return make(Genotype, length)
}

// RandomGenotype returns a genotype of the given length with each bit drawn
// independently with probability 0.5.
func RandomGenotype(length int, rng Rand) Genotype {
	g := make(Genotype, length)
	for i := range g {
		g[i] = rng.Float64() < 0.5
	}
	return g
}

// Clone returns an independent copy of the genotype.
func (g Genotype) Clone() Genotype {
	c := make(Genotype, len(g))
	copy(c, g)
	return c
}

// Ones returns the number of one bits.
func (g Genotype) Ones() int {
	n := 0
	for _, bit := range g {
		if bit {
			n++
		}
	}
	return n
}

// String renders the genotype as a binary string, most significant bit first.
func (g Genotype) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, bit := range g {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Hex renders the genotype as a big-endian hexadecimal string, e.g. "0x1a".
func (g Genotype) Hex() string {
	v := new(big.Int)
	for i, bit := range g {
		if bit {
			v.SetBit(v, len(g)-1-i, 1)
		}
	}
	return "0x" + v.Text(16)
}

// Equal reports whether two genotypes have the same length and bits.
func (g Genotype) Equal(other Genotype) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}
