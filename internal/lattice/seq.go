// Package lattice builds binary genotype-phenotype maps over 2D lattice
// protein models: it enumerates the sequence space between a wildtype and a
// fully divergent mutant, scores each genotype's folding thermodynamics
// against a set of candidate conformations (or an external fold oracle), and
// exposes the derived phenotypes.
package lattice

import (
	"math/rand"
)

// AminoAcids is the residue alphabet used for random sequence draws.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// Mutation is the (wildtype, mutant) character pair at one site.
type Mutation struct {
	Wildtype string `json:"wildtype"`
	Mutant   string `json:"mutant"`
}

// HammingDistance counts the sites at which two equal-length sequences differ.
// Sites past the end of the shorter sequence aren't counted.
func HammingDistance(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	dist := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			dist++
		}
	}
	return dist
}

// RandomSequence draws a uniformly random amino acid sequence of the requested length.
func RandomSequence(length int, rng *rand.Rand) string {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = AminoAcids[rng.Intn(len(AminoAcids))]
	}
	return string(seq)
}

// SiteMutations builds the per-site mutation pairs between a wildtype and a
// mutant that differs from it at every site.
func SiteMutations(wildtype, mutant string) ([]Mutation, error) {
	if err := checkDivergent(wildtype, mutant); err != nil {
		return nil, err
	}

	muts := make([]Mutation, len(wildtype))
	for i := range muts {
		muts[i] = Mutation{
			Wildtype: string(wildtype[i]),
			Mutant:   string(mutant[i]),
		}
	}
	return muts, nil
}

// checkDivergent errors unless wildtype and mutant have the same length and
// differ at every site.
func checkDivergent(wildtype, mutant string) error {
	if len(wildtype) != len(mutant) {
		return ErrLengthMismatch
	}
	if HammingDistance(wildtype, mutant) != len(wildtype) {
		return ErrNotFullyDivergent
	}
	return nil
}
