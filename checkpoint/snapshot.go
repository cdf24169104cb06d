// Package checkpoint provides a deterministic, hash-addressed snapshot of a
// GA run for replay and audit. It does not affect the GA's correctness — it
// exists so tests and the CLI can assert determinism (two runs with the
// same seed produce the same digest) and so a run can be persisted and
// replayed.
package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/sabrinesaouli/saga/gacore"
)

// Snapshot is a point-in-time, JSON-serialisable view of a GA run.
type Snapshot struct {
	Generation        int    `json:"generation"`
	BestFitness       int    `json:"best_fitness"`
	BestFitnessByGen  []int  `json:"best_fitness_by_gen"`
	PopulationDigest  string `json:"population_digest"`
	RNGDraws          int64  `json:"rng_draws"`
}

// NewSnapshot builds a Snapshot from the current generation index, the live
// population (must already be sorted ascending by fitness), the best-so-far
// history and the RNG draw count.
func NewSnapshot(generation int, population []*gacore.Solution, bestFitnessByGen []int, rngDraws int64) Snapshot {
	best := 0
	if len(population) > 0 {
		best = population[0].Fitness
	}
	history := make([]int, len(bestFitnessByGen))
	copy(history, bestFitnessByGen)
	return Snapshot{
		Generation:       generation,
		BestFitness:      best,
		BestFitnessByGen: history,
		PopulationDigest: populationDigest(population),
		RNGDraws:         rngDraws,
	}
}

// populationDigest hashes every Solution's bit pattern and fitness, in
// population order, into one hex-encoded SHA-256 digest. Because the
// Population is sorted ascending by fitness as an invariant, two runs that
// reach byte-identical populations always produce the same digest, which
// lets determinism under a fixed seed be checked without comparing whole
// populations directly.
func populationDigest(population []*gacore.Solution) string {
	h := sha256.New()
	for _, sol := range population {
		h.Write(sol.Bits)
		var fitnessBytes [8]byte
		fitness := sol.Fitness
		for i := 0; i < 8; i++ {
			fitnessBytes[i] = byte(fitness >> (8 * i))
		}
		h.Write(fitnessBytes[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
