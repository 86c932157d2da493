package lattice

import (
	"math/rand"
)

// SearchConformationSpace randomly samples sequences until it finds two that
// fold with native energy below threshold and differ at every site. The two
// sequences anchor a fully divergent binary sequence space. Sampling is
// bounded by maxIter draws; exhausting the budget returns a
// SearchExhaustedError, and the caller decides whether to retry with a looser
// threshold or a larger budget.
//
// Rejection sampling is the only option here: the fold landscape has no
// closed-form inverse to pull qualifying sequences from directly.
func SearchConformationSpace(oracle FoldOracle, temperature, threshold float64, maxIter int, rng *rand.Rand) (string, string, error) {
	length := oracle.Length()

	first := ""
	for i := 0; i < maxIter; i++ {
		seq := RandomSequence(length, rng)
		out, err := oracle.Fold(seq, temperature)
		if err != nil {
			return "", "", err
		}

		if out.NativeEnergy >= threshold {
			continue
		}

		if first == "" {
			first = seq
		} else if HammingDistance(first, seq) == length {
			return first, seq, nil
		}
	}

	return "", "", &SearchExhaustedError{MaxIter: maxIter}
}

// SearchFitnessLandscape randomly samples sequences until it finds two with
// fitness above threshold that differ at every site. Same shape as
// SearchConformationSpace with the acceptance test flipped: fitness is
// maximized where fold energy is minimized.
func SearchFitnessLandscape(oracle FitnessOracle, threshold float64, maxIter int, rng *rand.Rand) (string, string, error) {
	length := oracle.Length()

	first := ""
	for i := 0; i < maxIter; i++ {
		seq := RandomSequence(length, rng)
		fit, err := oracle.Fitness(seq)
		if err != nil {
			return "", "", err
		}

		if fit <= threshold {
			continue
		}

		if first == "" {
			first = seq
		} else if HammingDistance(first, seq) == length {
			return first, seq, nil
		}
	}

	return "", "", &SearchExhaustedError{MaxIter: maxIter}
}
