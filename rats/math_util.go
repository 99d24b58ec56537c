package rats

import (
	"math"
	"math/rand"
	"time"
)

// newRand returns a generator seeded with seed, or with the clock when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// triangular samples the triangular distribution on [low, high] with the given mode.
func triangular(rng *rand.Rand, low, high, mode float64) float64 {
	if high == low {
		return low
	}
	u := rng.Float64()
	c := (mode - low) / (high - low)
	if u > c {
		u = 1.0 - u
		c = 1.0 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// uniform returns a float in [a, b).
func uniform(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}

// intBetween returns an int in the closed interval spanned by a and b,
// in either order. Callers keep both within [0, WeightLimit], so b-a+1
// cannot overflow.
func intBetween(rng *rand.Rand, a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + rng.Intn(b-a+1)
}

// roundInt rounds half to even.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}
