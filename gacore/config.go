package gacore

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Config holds the GA's required, validated configuration plus the
// strategy functions chosen for this run.
type Config struct {
	PopulationSize int
	MaxIterations  int
	MutationRate   float64
	CrossoverRate  float64
	CacheCapacity  int

	Crossover CrossoverFunc
	Selection SelectionFunc
	Survivor  SurvivorFunc
}

// DefaultConfig returns a Config with a default cache capacity of 500 and
// the default strategy set (one-point crossover, 2-way tournament parent
// selection, elitist survivor selection). Callers still must set
// PopulationSize, MaxIterations, MutationRate and CrossoverRate.
func DefaultConfig() Config {
	return Config{
		CacheCapacity: 500,
		Crossover:     OnePointCrossover,
		Selection:     TournamentSelect,
		Survivor:      ElitistSurvivor,
	}
}

// Validate checks every field against its documented bounds, returning
// ErrConfigOutOfRange wrapped with the offending field on the first
// violation found.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return fmt.Errorf("%w: PopulationSize must be positive, got %d", ErrConfigOutOfRange, c.PopulationSize)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations must be positive, got %d", ErrConfigOutOfRange, c.MaxIterations)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("%w: MutationRate must be in [0,1], got %v", ErrConfigOutOfRange, c.MutationRate)
	case c.CrossoverRate < 0 || c.CrossoverRate > 1:
		return fmt.Errorf("%w: CrossoverRate must be in [0,1], got %v", ErrConfigOutOfRange, c.CrossoverRate)
	case c.CacheCapacity <= 0:
		return fmt.Errorf("%w: CacheCapacity must be positive, got %d", ErrConfigOutOfRange, c.CacheCapacity)
	case c.Crossover == nil || c.Selection == nil || c.Survivor == nil:
		return fmt.Errorf("%w: Crossover, Selection and Survivor strategies are required", ErrConfigOutOfRange)
	}
	return nil
}

// NewSeed draws a non-deterministic int64 seed from OS entropy, for driver
// start when the caller has no reproducibility requirement. Reproducible
// replay instead supplies its own seed directly to New.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("gacore: reading seed entropy: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
