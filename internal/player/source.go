package player

import (
	"math/rand"
	"sync"
)

const (
	DefaultSize = 14
	DefaultMin  = 15
	DefaultMax  = 95
)

// RandomSource returns size random integers in [min, max). A nil rng uses a
// time-seeded generator. The returned Source is safe for concurrent use.
func RandomSource(rng *rand.Rand, size, min, max int) Source {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if max <= min {
		max = min + 1
	}
	var mu sync.Mutex
	return func() []float64 {
		mu.Lock()
		defer mu.Unlock()
		out := make([]float64, size)
		for i := range out {
			out[i] = float64(min + rng.Intn(max-min))
		}
		return out
	}
}

// FixedSource always returns a copy of values.
func FixedSource(values []float64) Source {
	v := append([]float64(nil), values...)
	return func() []float64 {
		return append([]float64(nil), v...)
	}
}

// SequenceSource cycles through inputs, one per call.
func SequenceSource(inputs ...[]float64) Source {
	var mu sync.Mutex
	next := 0
	return func() []float64 {
		mu.Lock()
		defer mu.Unlock()
		if len(inputs) == 0 {
			return nil
		}
		in := inputs[next%len(inputs)]
		next++
		return append([]float64(nil), in...)
	}
}
