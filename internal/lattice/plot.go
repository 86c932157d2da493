package lattice

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotHistogram writes a histogram of the map's selected phenotype to
// filename. The output format follows the file extension (.png, .svg, .pdf).
func PlotHistogram(m *Map, bins int, filename string) error {
	if bins < 1 {
		bins = 16
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s across %d genotypes", m.PhenotypeType(), m.Len())
	p.X.Label.Text = string(m.PhenotypeType())
	p.Y.Label.Text = "genotype count"

	hist, err := plotter.NewHist(plotter.Values(m.Phenotypes()), bins)
	if err != nil {
		return fmt.Errorf("failed to bin phenotypes: %w", err)
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
