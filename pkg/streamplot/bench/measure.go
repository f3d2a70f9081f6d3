package bench

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/parallel"
)

// Measure times parallel.Accumulate over 0..cfg.Length-1 for every worker
// count in 1..cfg.MaxStreams. Each sample is [workers, microseconds].
func Measure(cfg Config) (models.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	values := make([]int, cfg.Length)
	for i := range values {
		values[i] = i
	}
	want := cfg.Length * (cfg.Length - 1) / 2

	ds := make(models.Dataset, 0, cfg.MaxStreams)
	for n := 1; n <= cfg.MaxStreams; n++ {
		best, err := fastest(values, n, cfg.Repeats, want)
		if err != nil {
			return nil, err
		}
		glog.V(2).Infof("streams=%d elapsed=%s", n, best)
		ds = append(ds, models.Sample{
			X: float64(n),
			Y: float64(best.Microseconds()),
		})
	}
	return ds, nil
}

// fastest returns the shortest of repeats timed runs with the given worker count.
func fastest(values []int, workers, repeats, want int) (time.Duration, error) {
	var best time.Duration
	for r := 0; r < repeats; r++ {
		start := time.Now()
		got, err := parallel.Accumulate(values, 0, workers)
		elapsed := time.Since(start)
		if err != nil {
			return 0, err
		}
		if got != want {
			return 0, fmt.Errorf("accumulate with %d streams: got %d, want %d", workers, got, want)
		}
		if r == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}
