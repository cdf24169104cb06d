// Command saga runs the polarity-seeding genetic algorithm over a DIMACS
// CNF file and prints the best assignment found as signed DIMACS literals.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sabrinesaouli/saga/checkpoint"
	"github.com/sabrinesaouli/saga/dimacs"
	"github.com/sabrinesaouli/saga/gacore"
)

func main() {
	var (
		populationSize = flag.Int("population", 100, "population size")
		maxIterations  = flag.Int("iterations", 1000, "max generations")
		mutationRate   = flag.Float64("mutation-rate", 0.01, "per-variable mutation probability")
		crossoverRate  = flag.Float64("crossover-rate", 0.8, "crossover probability")
		cacheCapacity  = flag.Int("cache-capacity", 500, "fitness cache capacity")
		seed           = flag.Int64("seed", 0, "RNG seed; 0 draws from OS entropy")
		timeout        = flag.Duration("timeout", 0, "wall-clock deadline; 0 disables it")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: saga [flags] <dimacs-file>")
		os.Exit(2)
	}

	if err := run(runArgs{
		path:           flag.Arg(0),
		populationSize: *populationSize,
		maxIterations:  *maxIterations,
		mutationRate:   *mutationRate,
		crossoverRate:  *crossoverRate,
		cacheCapacity:  *cacheCapacity,
		seed:           *seed,
		timeout:        *timeout,
	}); err != nil {
		log.Fatalf("saga: %v", err)
	}
}

type runArgs struct {
	path           string
	populationSize int
	maxIterations  int
	mutationRate   float64
	crossoverRate  float64
	cacheCapacity  int
	seed           int64
	timeout        time.Duration
}

func run(args runArgs) error {
	f, err := os.Open(args.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", args.path, err)
	}
	defer f.Close()

	parsed, err := dimacs.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args.path, err)
	}
	for _, w := range parsed.Warnings {
		log.Printf("saga: warning: %s", w)
	}

	seed := args.seed
	if seed == 0 {
		seed, err = gacore.NewSeed()
		if err != nil {
			return err
		}
	}

	cfg := gacore.DefaultConfig()
	cfg.PopulationSize = args.populationSize
	cfg.MaxIterations = args.maxIterations
	cfg.MutationRate = args.mutationRate
	cfg.CrossoverRate = args.crossoverRate
	cfg.CacheCapacity = args.cacheCapacity

	ga, err := gacore.New(parsed.Formula, parsed.Source, cfg, seed)
	if err != nil {
		return fmt.Errorf("configuring GA: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if args.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, args.timeout)
		defer cancelTimeout()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			log.Println("saga: received shutdown signal, stopping after current generation")
			cancel()
		}
	}()

	best, interrupted, err := ga.Run(ctx)
	if err != nil {
		return fmt.Errorf("running GA: %w", err)
	}
	if interrupted {
		log.Println("saga: run interrupted before convergence")
	}

	store := checkpoint.NewMemoryStore()
	snap := checkpoint.NewSnapshot(args.maxIterations, ga.Population().Solutions, nil, ga.DrawCount())
	if err := store.Put(context.Background(), args.path, snap); err != nil {
		log.Printf("saga: checkpoint not saved: %v", err)
	}

	gacore.PolarityHandoff(parsed.Source, best)

	fmt.Printf("fitness=%d\n", best.Fitness)
	fmt.Println(best.String())
	return nil
}
