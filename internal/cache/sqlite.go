// Package cache is a sqlite-backed store of fold oracle results. Folding a
// sequence is the slow step of building a map, and the outcome only depends
// on (sequence, temperature), so results are safe to reuse across runs.
package cache

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/alycialee/latticegpm/internal/lattice"

	_ "modernc.org/sqlite"
)

// Store holds fold results keyed by sequence and temperature.
type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewStore points a store at a sqlite file. Init must be called before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the sqlite file and creates the fold table. Calling Init on an
// open store is a no-op.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS folds (
			seq TEXT NOT NULL,
			temperature REAL NOT NULL,
			native_energy REAL NOT NULL,
			native_conf TEXT NOT NULL,
			partition_sum REAL NOT NULL,
			folded INTEGER NOT NULL,
			PRIMARY KEY (seq, temperature)
		)
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close releases the sqlite handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get looks up a stored fold result. The second return is false on a miss.
func (s *Store) Get(seq string, temperature float64) (lattice.FoldResult, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return lattice.FoldResult{}, false, err
	}

	var out lattice.FoldResult
	err = db.QueryRow(
		`SELECT native_energy, native_conf, partition_sum, folded FROM folds WHERE seq = ? AND temperature = ?`,
		seq, temperature,
	).Scan(&out.NativeEnergy, &out.NativeConf, &out.PartitionSum, &out.Folded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lattice.FoldResult{}, false, nil
		}
		return lattice.FoldResult{}, false, err
	}
	return out, true, nil
}

// Put stores a fold result, replacing any prior result for the same
// sequence and temperature.
func (s *Store) Put(seq string, temperature float64, out lattice.FoldResult) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO folds (seq, temperature, native_energy, native_conf, partition_sum, folded)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(seq, temperature) DO UPDATE SET
			native_energy = excluded.native_energy,
			native_conf = excluded.native_conf,
			partition_sum = excluded.partition_sum,
			folded = excluded.folded
	`, seq, temperature, out.NativeEnergy, out.NativeConf, out.PartitionSum, out.Folded)
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

// Oracle is a write-through caching wrapper around a fold oracle. Misses
// fall through to the wrapped oracle and the result is stored for next time.
// It stays reentrant as long as the wrapped oracle is.
type Oracle struct {
	store  *Store
	oracle lattice.FoldOracle
}

// Wrap a fold oracle with the store.
func Wrap(store *Store, oracle lattice.FoldOracle) *Oracle {
	return &Oracle{store: store, oracle: oracle}
}

// Fold checks the store before delegating to the wrapped oracle.
func (o *Oracle) Fold(seq string, temperature float64) (lattice.FoldResult, error) {
	if out, ok, err := o.store.Get(seq, temperature); err != nil {
		return lattice.FoldResult{}, err
	} else if ok {
		return out, nil
	}

	out, err := o.oracle.Fold(seq, temperature)
	if err != nil {
		return lattice.FoldResult{}, err
	}

	if err := o.store.Put(seq, temperature, out); err != nil {
		return lattice.FoldResult{}, err
	}
	return out, nil
}

// Length of the wrapped oracle's sequences.
func (o *Oracle) Length() int {
	return o.oracle.Length()
}
