package common

import (
	"math"
	"math/rand"
)

// RandRange returns a value in [lo, hi).
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil || hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
