package lattice

// EnumerateBinarySpace builds every sequence between a wildtype and a mutant
// that differs from it at all sites. Genotype i is built from the L-bit binary
// representation of i: site j takes the mutant's character when bit j (most
// significant first) is 1, the wildtype's otherwise. The result is ordered by
// ascending binary index, "0...0" through "1...1", and downstream indexing
// (thermodynamic records, persisted snapshots) relies on that order.
func EnumerateBinarySpace(wildtype, mutant string) ([]string, error) {
	if err := checkDivergent(wildtype, mutant); err != nil {
		return nil, err
	}

	length := len(wildtype)
	space := make([]string, 0, 1<<uint(length))
	seq := make([]byte, length)
	for i := 0; i < 1<<uint(length); i++ {
		for j := 0; j < length; j++ {
			if i>>(uint(length-1-j))&1 == 1 {
				seq[j] = mutant[j]
			} else {
				seq[j] = wildtype[j]
			}
		}
		space = append(space, string(seq))
	}

	return space, nil
}
