// Package parallel splits slice work into contiguous blocks handled by goroutines.
package parallel

import (
	"errors"
	"sync"
)

// MinAccumulateLength is the input length below which Accumulate
// does not start any goroutines.
const MinAccumulateLength = 32

// ErrNoWorkers indicates a worker count below 1.
var ErrNoWorkers = errors.New("workers must be at least 1")

// Number is the set of element types Accumulate can sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Accumulate returns init plus the sum of values.
//
// The input is split into workers half-open blocks of len/workers
// elements. The first workers-1 blocks are summed in their own goroutines;
// the calling goroutine sums the last block, which also takes the
// remainder. Inputs shorter than MinAccumulateLength are summed directly.
func Accumulate[T Number](values []T, init T, workers int) (T, error) {
	if workers < 1 {
		return init, ErrNoWorkers
	}
	if len(values) < MinAccumulateLength {
		return sum(values, init), nil
	}

	blockLen := len(values) / workers
	results := make([]T, workers-1)

	var wg sync.WaitGroup
	for i := 0; i < workers-1; i++ {
		wg.Add(1)
		go func(i int, block []T) {
			defer wg.Done()
			results[i] = sum(block, 0)
		}(i, values[i*blockLen:(i+1)*blockLen])
	}

	total := sum(values[(workers-1)*blockLen:], init)
	wg.Wait()

	return sum(results, total), nil
}

// ForEach calls fn on a pointer to every element of values, exactly once each.
//
// Inputs shorter than four elements per worker are handled on the calling
// goroutine. Otherwise every block, including the last one holding the
// remainder, runs in its own goroutine and ForEach waits for all of them.
func ForEach[T any](values []T, fn func(*T), workers int) error {
	if workers < 1 {
		return ErrNoWorkers
	}
	if len(values) < workers*4 {
		apply(values, fn)
		return nil
	}

	blockLen := len(values) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		end := (i + 1) * blockLen
		if i == workers-1 {
			end = len(values)
		}
		wg.Add(1)
		go func(block []T) {
			defer wg.Done()
			apply(block, fn)
		}(values[i*blockLen : end])
	}
	wg.Wait()

	return nil
}

func sum[T Number](values []T, init T) T {
	for _, v := range values {
		init += v
	}
	return init
}

func apply[T any](values []T, fn func(*T)) {
	for i := range values {
		fn(&values[i])
	}
}
