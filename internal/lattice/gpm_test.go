package lattice

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func Test_newMap(t *testing.T) {
	m, err := NewMap("AK", "GR", Engine{Temperature: 1.0}, "")
	if err != nil {
		t.Fatal(err)
	}

	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if m.Wildtype() != "AK" {
		t.Errorf("Wildtype() = %s, want AK", m.Wildtype())
	}
	if m.Mutant() != "GR" {
		t.Errorf("Mutant() = %s, want GR", m.Mutant())
	}
	if m.PhenotypeType() != PhenotypeStability {
		t.Errorf("default phenotype type = %s, want %s", m.PhenotypeType(), PhenotypeStability)
	}
	if !reflect.DeepEqual(m.Genotypes(), []string{"AK", "AR", "GK", "GR"}) {
		t.Errorf("Genotypes() = %v", m.Genotypes())
	}
}

func Test_newMap_errors(t *testing.T) {
	if _, err := NewMap("AK", "GRE", Engine{}, ""); err != ErrLengthMismatch {
		t.Errorf("unequal lengths returned %v, want ErrLengthMismatch", err)
	}

	if _, err := NewMap("AK", "AR", Engine{}, ""); err != ErrNotFullyDivergent {
		t.Errorf("shared site returned %v, want ErrNotFullyDivergent", err)
	}

	var invalid *InvalidPhenotypeError
	if _, err := NewMap("AK", "GR", Engine{}, "fitness"); !errors.As(err, &invalid) {
		t.Errorf("bad phenotype type returned %v, want InvalidPhenotypeError", err)
	}
}

func Test_parsePhenotypeType(t *testing.T) {
	for _, valid := range []string{"nativeEs", "stabilities", "fracfolded"} {
		if _, err := ParsePhenotypeType(valid); err != nil {
			t.Errorf("ParsePhenotypeType(%q) = %v", valid, err)
		}
	}

	var invalid *InvalidPhenotypeError
	if _, err := ParsePhenotypeType("energies"); !errors.As(err, &invalid) {
		t.Fatalf("ParsePhenotypeType(energies) = %v, want InvalidPhenotypeError", err)
	}
	if invalid.Type != "energies" {
		t.Errorf("error reports type %q, want energies", invalid.Type)
	}
}

func Test_setPartitionConfs(t *testing.T) {
	engine := Engine{
		Temperature: 1.0,
		Energy:      tableEnergy,
		Interactions: InteractionEnergies{
			"U": 0.0,
			"C": -2.0,
		},
	}

	m, err := NewMap("AK", "GR", engine, PhenotypeNativeEnergy)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetPartitionConfs([]string{"U", "C"}); err != nil {
		t.Fatal(err)
	}

	for i, e := range m.NativeEnergies() {
		if e != -2.0 {
			t.Errorf("genotype %d native energy = %f, want -2.0", i, e)
		}
	}
	for i, conf := range m.Confs() {
		if conf != "C" {
			t.Errorf("genotype %d native conformation = %q, want C", i, conf)
		}
	}
	for i, f := range m.Folded() {
		if !f {
			t.Errorf("genotype %d should fold", i)
		}
	}
}

func Test_phenotypeDispatch(t *testing.T) {
	engine := Engine{
		Temperature: 1.0,
		Energy:      tableEnergy,
		Interactions: InteractionEnergies{
			"U": 0.0,
			"C": -2.0,
		},
	}

	m, err := NewMap("AK", "GR", engine, PhenotypeStability)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetPartitionConfs([]string{"U", "C"}); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(m.Phenotypes(), m.Stabilities()) {
		t.Error("stabilities selector should dispatch to Stabilities")
	}

	if err := m.SetPhenotypeType("fracfolded"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m.Phenotypes(), m.FracFolded()) {
		t.Error("fracfolded selector should dispatch to FracFolded")
	}

	if err := m.SetPhenotypeType("nativeEs"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m.Phenotypes(), m.NativeEnergies()) {
		t.Error("nativeEs selector should dispatch to NativeEnergies")
	}

	if err := m.SetPhenotypeType("free-energy"); err == nil {
		t.Error("unknown selector should not be accepted")
	}
}

func Test_fold(t *testing.T) {
	oracle := stubOracle{
		length: 2,
		fold: func(seq string, temperature float64) (FoldResult, error) {
			return FoldResult{
				NativeEnergy: -5.0,
				NativeConf:   "UR",
				PartitionSum: 1 + math.Exp(5.0),
				Folded:       true,
			}, nil
		},
	}

	m, err := NewMap("AK", "GR", Engine{Temperature: 1.0}, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Fold(oracle); err != nil {
		t.Fatal(err)
	}

	if len(m.NativeEnergies()) != 4 {
		t.Fatalf("got %d native energies, want 4", len(m.NativeEnergies()))
	}
	for _, conf := range m.Confs() {
		if conf != "UR" {
			t.Errorf("native conformation = %q, want UR", conf)
		}
	}
}

func Test_setTargetConf(t *testing.T) {
	engine := Engine{
		Temperature: 1.0,
		Energy:      tableEnergy,
		Interactions: InteractionEnergies{
			"C1": -3.0,
			"C2": -1.0,
		},
	}

	m, err := NewMap("AK", "GR", engine, PhenotypeNativeEnergy)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetPartitionConfs([]string{"C1", "C2"}); err != nil {
		t.Fatal(err)
	}

	if err := m.SetTargetConf("C2"); err != nil {
		t.Fatal(err)
	}

	for i, conf := range m.Confs() {
		if conf != "C2" {
			t.Errorf("genotype %d native conformation = %q, want the target C2", i, conf)
		}
		if m.NativeEnergies()[i] != -1.0 {
			t.Errorf("genotype %d native energy = %f, want the target's -1.0", i, m.NativeEnergies()[i])
		}
	}

	// partition sums keep their values from the scoring pass
	wantZ := math.Exp(3.0) + math.Exp(1.0)
	for i, z := range m.PartitionSums() {
		if !approx(z, wantZ) {
			t.Errorf("genotype %d partition sum = %f, want %f", i, z, wantZ)
		}
	}
}

func Test_setTargetConf_unscored(t *testing.T) {
	engine := Engine{
		Temperature: 1.0,
		Energy:      tableEnergy,
		Interactions: InteractionEnergies{
			"C1": -3.0,
			"C2": -1.0,
		},
	}

	m, err := NewMap("AK", "GR", engine, "")
	if err != nil {
		t.Fatal(err)
	}

	// setting the target before any scoring defers it to the next pass
	if err := m.SetTargetConf("C2"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPartitionConfs([]string{"C1", "C2"}); err != nil {
		t.Fatal(err)
	}

	for _, conf := range m.Confs() {
		if conf != "C2" {
			t.Errorf("native conformation = %q, want the target C2", conf)
		}
	}
}

func Test_setTargetConf_noEnergy(t *testing.T) {
	oracle := stubOracle{
		length: 2,
		fold: func(seq string, temperature float64) (FoldResult, error) {
			return FoldResult{NativeEnergy: -5.0, NativeConf: "UR", PartitionSum: 2, Folded: true}, nil
		},
	}

	m, err := NewMap("AK", "GR", Engine{Temperature: 1.0}, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fold(oracle); err != nil {
		t.Fatal(err)
	}

	if err := m.SetTargetConf("UR"); err != ErrNoScoringSource {
		t.Errorf("retargeting without an energy function returned %v, want ErrNoScoringSource", err)
	}
}

func Test_fromLength(t *testing.T) {
	oracle := stubOracle{
		length: 3,
		fold: func(seq string, temperature float64) (FoldResult, error) {
			return FoldResult{
				NativeEnergy: -8.0,
				NativeConf:   "URD",
				PartitionSum: 1 + math.Exp(8.0),
				Folded:       true,
			}, nil
		},
	}

	rng := rand.New(rand.NewSource(11))
	m, err := FromLength(3, oracle, Engine{Temperature: 1.0}, "", -1.0, 10000, rng)
	if err != nil {
		t.Fatal(err)
	}

	if m.Len() != 8 {
		t.Errorf("Len() = %d, want 2^3", m.Len())
	}
	if HammingDistance(m.Wildtype(), m.Mutant()) != 3 {
		t.Errorf("wildtype %s and mutant %s should differ at every site", m.Wildtype(), m.Mutant())
	}
	if len(m.Folded()) != 8 {
		t.Errorf("map should come back scored, got %d records", len(m.Folded()))
	}
}
