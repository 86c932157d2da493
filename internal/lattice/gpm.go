package lattice

import (
	"math/rand"
)

// PhenotypeType selects which derived quantity a map reports as its
// phenotype. It's a closed set; anything else fails to parse.
type PhenotypeType string

const (
	// PhenotypeNativeEnergy reports each genotype's native state energy.
	PhenotypeNativeEnergy PhenotypeType = "nativeEs"

	// PhenotypeStability reports each genotype's folding stability.
	PhenotypeStability PhenotypeType = "stabilities"

	// PhenotypeFracFolded reports each genotype's fraction folded.
	PhenotypeFracFolded PhenotypeType = "fracfolded"
)

// ParsePhenotypeType validates a phenotype selector against the closed set
// of recognized types.
func ParsePhenotypeType(s string) (PhenotypeType, error) {
	switch t := PhenotypeType(s); t {
	case PhenotypeNativeEnergy, PhenotypeStability, PhenotypeFracFolded:
		return t, nil
	}
	return "", &InvalidPhenotypeError{Type: s}
}

// Map is a binary genotype-phenotype map over a lattice protein model. It
// owns the enumerated genotypes, their per-site mutation pairs, and the
// thermodynamic records, all indexed in lockstep. Genotypes are fixed at
// construction; records are written only by the explicit scoring passes,
// Fold and SetPartitionConfs, each of which replaces the record slice as a
// unit after the pass completes.
type Map struct {
	wildtype  string
	mutations []Mutation
	genotypes []string

	engine    Engine
	phenotype PhenotypeType

	targetConf     string
	partitionConfs []string

	records []Record
}

// NewMap enumerates the binary sequence space between a wildtype and a fully
// divergent mutant. The map starts unscored: call Fold or SetPartitionConfs
// to populate the thermodynamic records.
func NewMap(wildtype, mutant string, engine Engine, phenotype PhenotypeType) (*Map, error) {
	if phenotype == "" {
		phenotype = PhenotypeStability
	}
	if _, err := ParsePhenotypeType(string(phenotype)); err != nil {
		return nil, err
	}

	mutations, err := SiteMutations(wildtype, mutant)
	if err != nil {
		return nil, err
	}

	genotypes, err := EnumerateBinarySpace(wildtype, mutant)
	if err != nil {
		return nil, err
	}

	return &Map{
		wildtype:  wildtype,
		mutations: mutations,
		genotypes: genotypes,
		engine:    engine,
		phenotype: phenotype,
	}, nil
}

// FromLength searches the fold landscape for two sequences of the requested
// length that fold below threshold and differ at every site, builds the map
// between them, and scores it through the oracle.
func FromLength(length int, oracle FoldOracle, engine Engine, phenotype PhenotypeType, threshold float64, maxIter int, rng *rand.Rand) (*Map, error) {
	if oracle.Length() != length {
		return nil, ErrLengthMismatch
	}

	wildtype, mutant, err := SearchConformationSpace(oracle, engine.Temperature, threshold, maxIter, rng)
	if err != nil {
		return nil, err
	}

	m, err := NewMap(wildtype, mutant, engine, phenotype)
	if err != nil {
		return nil, err
	}

	if err := m.Fold(oracle); err != nil {
		return nil, err
	}
	return m, nil
}

// Fold scores every genotype through the fold oracle and replaces the map's
// records. A set target conformation is re-applied over the oracle's native
// states.
func (m *Map) Fold(oracle FoldOracle) error {
	records, err := m.engine.FoldAll(m.genotypes, oracle)
	if err != nil {
		return err
	}

	if m.targetConf != "" {
		if err := m.retarget(records); err != nil {
			return err
		}
	}

	m.records = records
	return nil
}

// SetPartitionConfs fixes the conformations summed in every genotype's
// partition function and re-scores the whole map against them. This is the
// explicit-conformation scoring mode: defining the list defines the free
// energy landscape.
func (m *Map) SetPartitionConfs(confs []string) error {
	records, err := m.engine.Partition(m.genotypes, confs, m.targetConf)
	if err != nil {
		return err
	}

	m.partitionConfs = confs
	m.records = records
	return nil
}

// SetTargetConf forces every genotype's native state to one conformation and
// rescores the native energies against it. Partition sums and folded flags
// keep their values from the last scoring pass.
func (m *Map) SetTargetConf(conf string) error {
	m.targetConf = conf
	if m.records == nil {
		return nil // applied by the next scoring pass
	}
	return m.retarget(m.records)
}

// retarget rewrites the native conformation and energy of every record
// against the target conformation.
func (m *Map) retarget(records []Record) error {
	if m.engine.Energy == nil {
		return ErrNoScoringSource
	}

	for i := range records {
		records[i].NativeConf = m.targetConf
		records[i].NativeEnergy = m.engine.Energy(m.genotypes[i], m.targetConf, m.engine.Interactions)
	}
	return nil
}

// SetPhenotypeType switches which derived quantity Phenotypes reports.
func (m *Map) SetPhenotypeType(s string) error {
	t, err := ParsePhenotypeType(s)
	if err != nil {
		return err
	}
	m.phenotype = t
	return nil
}

// PhenotypeType is the selector currently backing Phenotypes.
func (m *Map) PhenotypeType() PhenotypeType {
	return m.phenotype
}

// Phenotypes reports the selected derived quantity for every genotype, in
// genotype order.
func (m *Map) Phenotypes() []float64 {
	switch m.phenotype {
	case PhenotypeNativeEnergy:
		return m.NativeEnergies()
	case PhenotypeFracFolded:
		return m.FracFolded()
	default:
		return m.Stabilities()
	}
}

// Len is the number of genotypes in the map, always 2^L.
func (m *Map) Len() int {
	return len(m.genotypes)
}

// Wildtype is the sequence every 0 bit selects from.
func (m *Map) Wildtype() string {
	return m.wildtype
}

// Mutant is the sequence every 1 bit selects from; it's the last genotype.
func (m *Map) Mutant() string {
	return m.genotypes[len(m.genotypes)-1]
}

// Mutations are the per-site (wildtype, mutant) character pairs.
func (m *Map) Mutations() []Mutation {
	return m.mutations
}

// Genotypes is the enumerated sequence space in binary index order.
func (m *Map) Genotypes() []string {
	return m.genotypes
}

// Temperature of the map's engine.
func (m *Map) Temperature() float64 {
	return m.engine.Temperature
}

// TargetConf is the forced native conformation, or "" when the native state
// is found by minimization.
func (m *Map) TargetConf() string {
	return m.targetConf
}

// NativeEnergies of every genotype, in genotype order.
func (m *Map) NativeEnergies() []float64 {
	energies := make([]float64, len(m.records))
	for i, rec := range m.records {
		energies[i] = rec.NativeEnergy
	}
	return energies
}

// PartitionSums of every genotype, in genotype order.
func (m *Map) PartitionSums() []float64 {
	sums := make([]float64, len(m.records))
	for i, rec := range m.records {
		sums[i] = rec.PartitionSum
	}
	return sums
}

// Confs are the native conformations of every genotype, in genotype order.
func (m *Map) Confs() []string {
	confs := make([]string, len(m.records))
	for i, rec := range m.records {
		confs[i] = rec.NativeConf
	}
	return confs
}

// Folded flags of every genotype, in genotype order.
func (m *Map) Folded() []bool {
	folded := make([]bool, len(m.records))
	for i, rec := range m.records {
		folded[i] = rec.Folded
	}
	return folded
}

// Stabilities of every genotype, derived from the stored records.
func (m *Map) Stabilities() []float64 {
	stabilities := make([]float64, len(m.records))
	for i, rec := range m.records {
		stabilities[i] = m.engine.Stability(rec)
	}
	return stabilities
}

// FracFolded of every genotype, derived from the stored records.
func (m *Map) FracFolded() []float64 {
	fracs := make([]float64, len(m.records))
	for i, rec := range m.records {
		fracs[i] = m.engine.FracFolded(rec)
	}
	return fracs
}
