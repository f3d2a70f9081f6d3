// Package models defines data structures for stream timing datasets.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidShape indicates a dataset entry that is not a pair of numbers.
var ErrInvalidShape = errors.New("invalid sample shape")

// Sample represents a single measurement pair.
// On the wire it is a 2-element JSON array: [x, y].
type Sample struct {
	// X is the independent variable (number of streams).
	X float64
	// Y is the dependent variable (time in microseconds).
	Y float64
}

// UnmarshalJSON decodes a [x, y] array. Anything else is an ErrInvalidShape.
func (s *Sample) UnmarshalJSON(data []byte) error {
	// Pointers, so a null element is distinguishable from zero
	var pair []*float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidShape, data, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: %s: want 2 values, got %d", ErrInvalidShape, data, len(pair))
	}
	if pair[0] == nil || pair[1] == nil {
		return fmt.Errorf("%w: %s: null value", ErrInvalidShape, data)
	}
	s.X, s.Y = *pair[0], *pair[1]
	return nil
}

// MarshalJSON encodes the sample as a [x, y] array.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.X, s.Y})
}

// String formats the sample as "[x, y]".
func (s Sample) String() string {
	return FormatSeries([]float64{s.X, s.Y})
}

// FormatSeries formats values as a bracketed, comma separated list,
// e.g. "[1, 2, 3.5]". Integral values carry no fractional part.
func FormatSeries(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
