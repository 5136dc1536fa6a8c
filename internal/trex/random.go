package trex

import "math/rand"

// Random is the source of every random decision the generator makes.
// Inject a scripted implementation to make a run fully deterministic.
type Random interface {
	// Uniform returns a value uniformly distributed in [lo, hi).
	Uniform(lo, hi float64) float64
	// Choice returns an index uniformly distributed in [0, n).
	Choice(n int) int
}

// seededRandom adapts math/rand to Random.
type seededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed. Equal seeds give equal runs.
func NewRandom(seed int64) Random {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

func (r *seededRandom) Choice(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.Intn(n)
}
