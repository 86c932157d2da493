package lattice

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// InteractionEnergies maps contact-pair identifiers to their energies. The
// engine never inspects the keys, it only hands the table to the energy
// function.
type InteractionEnergies map[string]float64

// EnergyFunc scores one sequence folded into one conformation. It must be
// pure and deterministic given its inputs.
type EnergyFunc func(seq, conf string, table InteractionEnergies) float64

// FoldResult is what a fold oracle reports for one sequence.
type FoldResult struct {
	NativeEnergy float64
	NativeConf   string
	PartitionSum float64
	Folded       bool
}

// FoldOracle folds a sequence at a temperature and reports its thermodynamic
// outcome. Implementations must be reentrant: FoldAll calls Fold concurrently
// for different sequences.
type FoldOracle interface {
	Fold(seq string, temperature float64) (FoldResult, error)
	Length() int
}

// FitnessOracle assigns a scalar fitness to a sequence.
type FitnessOracle interface {
	Fitness(seq string) (float64, error)
	Length() int
}

// Record is the stored thermodynamic outcome for one genotype. Records are
// written only by a full scoring pass, never updated piecemeal.
type Record struct {
	NativeEnergy float64
	NativeConf   string
	PartitionSum float64
	Folded       bool
}

// Engine scores genotypes against conformations, either through a fold
// oracle or by summing a partition function over an explicit conformation
// list with Energy.
type Engine struct {
	// temperature of the system (ratio to kT)
	Temperature float64

	// Energy scores a (sequence, conformation) pair. required for the
	// explicit-conformation mode
	Energy EnergyFunc

	// contact energies passed through to Energy
	Interactions InteractionEnergies

	// number of concurrent scoring workers. defaults to GOMAXPROCS
	Workers int
}

// FoldAll scores every genotype through the fold oracle. Genotypes are
// independent, so they're fanned out across workers; each worker writes only
// its own indexes of the record slice.
func (e *Engine) FoldAll(genotypes []string, oracle FoldOracle) ([]Record, error) {
	if oracle == nil {
		return nil, ErrNoScoringSource
	}

	records := make([]Record, len(genotypes))
	errs := make([]error, len(genotypes))

	indexes := make(chan int, len(genotypes))
	for i := range genotypes {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	for w := 0; w < e.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				out, err := oracle.Fold(genotypes[i], e.Temperature)
				if err != nil {
					errs[i] = err
					continue
				}
				records[i] = Record{
					NativeEnergy: out.NativeEnergy,
					NativeConf:   out.NativeConf,
					PartitionSum: out.PartitionSum,
					Folded:       out.Folded,
				}
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to fold %s: %w", genotypes[i], err)
		}
	}

	return records, nil
}

// Partition scores every genotype against an explicit conformation list. The
// partition sum is the Boltzmann-weighted sum over every conformation in the
// list; the native state is the conformation of minimum energy. A genotype
// with a tied minimum is not folded: a unique ground state is required. The
// unfolded reference state is not injected, callers wanting one include a
// baseline conformation in confs.
//
// A non-empty targetConf forces every genotype's native conformation to it
// and rescores the native energy against it directly. The partition sum still
// runs over the full list.
func (e *Engine) Partition(genotypes, confs []string, targetConf string) ([]Record, error) {
	if len(confs) == 0 {
		return nil, ErrNoScoringSource
	}
	if e.Energy == nil {
		return nil, ErrNoScoringSource
	}

	records := make([]Record, len(genotypes))

	indexes := make(chan int, len(genotypes))
	for i := range genotypes {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	for w := 0; w < e.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			terms := make([]float64, len(confs))
			for i := range indexes {
				records[i] = e.partitionOne(genotypes[i], confs, targetConf, terms)
			}
		}()
	}
	wg.Wait()

	return records, nil
}

// partitionOne scores a single genotype. terms is scratch space for the
// Boltzmann weights, reused across calls within one worker.
func (e *Engine) partitionOne(genotype string, confs []string, targetConf string, terms []float64) Record {
	var (
		minEnergy float64
		minConf   string
		folded    bool
	)

	// the minimum-energy scan seeds from the first conformation so an
	// all-positive-energy list still yields a real native state
	for k, conf := range confs {
		fe := e.Energy(genotype, conf, e.Interactions)
		terms[k] = math.Exp(-fe / e.Temperature)

		if k == 0 || fe < minEnergy {
			minEnergy = fe
			minConf = conf
			folded = true
		} else if fe == minEnergy {
			folded = false
		}
	}

	rec := Record{
		NativeEnergy: minEnergy,
		NativeConf:   minConf,
		PartitionSum: floats.Sum(terms),
		Folded:       folded,
	}

	if targetConf != "" {
		rec.NativeConf = targetConf
		rec.NativeEnergy = e.Energy(genotype, targetConf, e.Interactions)
	}

	return rec
}

// Stability is the folding free energy of a record's native state against
// the rest of its partition function:
//
//	dG = E + T * ln(Z - exp(-E/T))
//
// The subtraction removes the native state's own Boltzmann weight from Z
// before the log. When Z <= exp(-E/T) the log has no value and the result is
// NaN; guarding against that degenerate partition sum is the caller's job.
func (e *Engine) Stability(rec Record) float64 {
	return rec.NativeEnergy + e.Temperature*math.Log(
		rec.PartitionSum-math.Exp(-rec.NativeEnergy/e.Temperature))
}

// FracFolded is the two-state equilibrium probability that a record's
// sequence occupies its native state: 1 / (1 + exp(dG/T)).
func (e *Engine) FracFolded(rec Record) float64 {
	return 1 / (1 + math.Exp(e.Stability(rec)/e.Temperature))
}

func (e *Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}
