package trace

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// GenerateBatch generates one trace per input concurrently. Results keep the
// order of inputs. The first invalid input fails the whole batch.
func GenerateBatch(ctx context.Context, inputs [][]float64, opts ...Option) ([]Trace, error) {
	results := make([]Trace, len(inputs))
	errs := make([]error, len(inputs))

	ParallelFor(len(inputs), 1, func(start, end int) {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = GenerateWith(inputs[i], opts...)
		}
	})

	for i, err := range errs {
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}

	return results, nil
}

// ParallelFor executes fn in parallel over the range [0, n)
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
