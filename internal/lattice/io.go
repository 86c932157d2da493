package lattice

import (
	"encoding/json"
	"fmt"
	"os"
)

// snapshot is the persisted form of a map. Every list is in genotype order.
type snapshot struct {
	Wildtype      string     `json:"wildtype"`
	Genotypes     []string   `json:"genotypes"`
	NativeEs      []float64  `json:"nativeEs"`
	PartitionSum  []float64  `json:"partition_sum"`
	Confs         []string   `json:"confs"`
	Folded        []bool     `json:"folded"`
	PhenotypeType string     `json:"phenotype_type"`
	Temperature   float64    `json:"temperature"`
	Mutations     []Mutation `json:"mutations"`
}

// requiredFields, in the order they're checked when loading a snapshot.
var requiredFields = []string{
	"wildtype",
	"genotypes",
	"nativeEs",
	"partition_sum",
	"confs",
	"folded",
	"phenotype_type",
	"temperature",
	"mutations",
}

// WriteJSON writes the map's snapshot to the filename requested and returns
// the serialized bytes.
func (m *Map) WriteJSON(filename string) ([]byte, error) {
	snap := snapshot{
		Wildtype:      m.wildtype,
		Genotypes:     m.genotypes,
		NativeEs:      m.NativeEnergies(),
		PartitionSum:  m.PartitionSums(),
		Confs:         m.Confs(),
		Folded:        m.Folded(),
		PhenotypeType: string(m.phenotype),
		Temperature:   m.engine.Temperature,
		Mutations:     m.mutations,
	}

	output, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize map: %w", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return output, fmt.Errorf("failed to write map: %w", err)
	}

	return output, nil
}

// ReadJSON restores a map from a snapshot file. Every required field must be
// present; the first absent one is reported in a MissingFieldError. The
// engine supplies the energy function, interaction table, and worker count
// for later re-scoring, but its temperature is replaced by the snapshot's.
func ReadJSON(filename string, engine Engine) (*Map, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(contents, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, &MissingFieldError{Field: field}
		}
	}

	var snap snapshot
	if err := json.Unmarshal(contents, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	phenotype, err := ParsePhenotypeType(snap.PhenotypeType)
	if err != nil {
		return nil, err
	}

	n := len(snap.Genotypes)
	for field, length := range map[string]int{
		"nativeEs":      len(snap.NativeEs),
		"partition_sum": len(snap.PartitionSum),
		"confs":         len(snap.Confs),
		"folded":        len(snap.Folded),
	} {
		if length != n {
			return nil, fmt.Errorf("%q has %d entries for %d genotypes", field, length, n)
		}
	}
	if len(snap.Mutations) != len(snap.Wildtype) {
		return nil, fmt.Errorf("\"mutations\" has %d sites for a length %d wildtype", len(snap.Mutations), len(snap.Wildtype))
	}

	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			NativeEnergy: snap.NativeEs[i],
			NativeConf:   snap.Confs[i],
			PartitionSum: snap.PartitionSum[i],
			Folded:       snap.Folded[i],
		}
	}

	engine.Temperature = snap.Temperature

	return &Map{
		wildtype:  snap.Wildtype,
		mutations: snap.Mutations,
		genotypes: snap.Genotypes,
		engine:    engine,
		phenotype: phenotype,
		records:   records,
	}, nil
}
