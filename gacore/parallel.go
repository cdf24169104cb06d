package gacore

import (
	"runtime"
	"sync"
)

// ParallelEvaluate scores sols across a bounded worker pool sized to
// runtime.GOMAXPROCS(0): a channel-fed job queue drained by a fixed number
// of workers, no unbounded goroutine fan-out. Clause counting always
// terminates, so no timeout context is needed.
//
// FitnessCache writes are already safe for concurrent use (golang-lru/v2's
// Cache is internally mutex-guarded), so no extra locking is needed here;
// this entry point exists as an opt-in for callers who want evaluation
// parallelism, never called by Run itself so determinism (two runs with the
// same seed produce the same Population) is never accidentally broken.
func ParallelEvaluate(e *FitnessEvaluator, sols []*Solution) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(sols) {
		workers = len(sols)
	}
	if workers <= 1 {
		e.EvaluateAll(sols)
		return
	}

	jobs := make(chan int, len(sols))
	for i := range sols {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				sols[idx].Fitness = e.Evaluate(sols[idx])
			}
		}()
	}
	wg.Wait()
}
