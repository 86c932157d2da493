package lattice

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a map's phenotypes.
type Summary struct {
	Phenotype PhenotypeType

	N      int
	Folded int

	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Summarize computes distribution statistics over the map's selected
// phenotype.
func Summarize(m *Map) Summary {
	phenotypes := m.Phenotypes()
	if len(phenotypes) == 0 {
		return Summary{Phenotype: m.PhenotypeType()}
	}

	sorted := make([]float64, len(phenotypes))
	copy(sorted, phenotypes)
	sort.Float64s(sorted)

	folded := 0
	for _, f := range m.Folded() {
		if f {
			folded++
		}
	}

	return Summary{
		Phenotype: m.PhenotypeType(),
		N:         len(phenotypes),
		Folded:    folded,
		Mean:      stat.Mean(phenotypes, nil),
		StdDev:    stat.StdDev(phenotypes, nil),
		Min:       floats.Min(sorted),
		Median:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:       floats.Max(sorted),
	}
}

// Write logs the summary as a two column table.
func (s Summary) Write(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "phenotype\t%s\n", s.Phenotype)
	fmt.Fprintf(w, "genotypes\t%d\n", s.N)
	fmt.Fprintf(w, "folded\t%d\n", s.Folded)
	fmt.Fprintf(w, "mean\t%.4f\n", s.Mean)
	fmt.Fprintf(w, "stddev\t%.4f\n", s.StdDev)
	fmt.Fprintf(w, "min\t%.4f\n", s.Min)
	fmt.Fprintf(w, "median\t%.4f\n", s.Median)
	fmt.Fprintf(w, "max\t%.4f\n", s.Max)
	w.Flush()
}
