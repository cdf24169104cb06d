package gacore

import "testing"

func TestFitnessCacheGetPutRoundTrip(t *testing.T) {
	cache, err := NewFitnessCache(10)
	if err != nil {
		t.Fatalf("NewFitnessCache() error = %v", err)
	}
	sol := NewSolution(3, 5)
	sol.Set(1, 1)

	if _, ok := cache.Get(sol); ok {
		t.Fatalf("Get() hit before any Put()")
	}
	cache.Put(sol, 2)
	got, ok := cache.Get(sol)
	if !ok || got != 2 {
		t.Fatalf("Get() = (%d, %v), want (2, true)", got, ok)
	}

	// After mutating the original, its new bit pattern was never Put and
	// must miss.
	sol.Set(2, 1)
	got, ok = cache.Get(sol)
	if ok {
		t.Errorf("Get() hit for a bit pattern never Put(); stale key collision resolution broken")
	}
}

func TestFitnessCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewFitnessCache(1)
	if err != nil {
		t.Fatalf("NewFitnessCache() error = %v", err)
	}
	a := NewSolution(1, 1)
	a.Set(1, 0)
	b := NewSolution(1, 1)
	b.Set(1, 1)

	cache.Put(a, 0)
	cache.Put(b, 1)

	if _, ok := cache.Get(a); ok {
		t.Errorf("Get(a) hit after capacity-1 cache evicted it for b")
	}
	if got, ok := cache.Get(b); !ok || got != 1 {
		t.Errorf("Get(b) = (%d, %v), want (1, true)", got, ok)
	}
}

func TestNewFitnessCacheRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := NewFitnessCache(0); err == nil {
		t.Errorf("NewFitnessCache(0) error = nil, want ErrConfigOutOfRange")
	}
}
