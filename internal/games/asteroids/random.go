package asteroids

import (
	"math"
	"math/rand"
)

// jitter returns a uniform value in [-|v|, |v|].
func jitter(rng *rand.Rand, v float64) float64 {
	v = math.Abs(v)
	return (rng.Float64()*2 - 1) * v
}

// absJitter returns a uniform value in [0, |v|].
func absJitter(rng *rand.Rand, v float64) float64 {
	return rng.Float64() * math.Abs(v)
}

// randSign returns -1 or +1 with equal probability.
func randSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
