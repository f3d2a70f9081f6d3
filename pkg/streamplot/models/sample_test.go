package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Sample
		wantErr  bool
	}{
		{"[1, 120]", Sample{X: 1, Y: 120}, false},
		{"[2.5,-3]", Sample{X: 2.5, Y: -3}, false},
		{"[1]", Sample{}, true},
		{"[1, 2, 3]", Sample{}, true},
		{"[]", Sample{}, true},
		{`["a", 1]`, Sample{}, true},
		{`{"x": 1}`, Sample{}, true},
		{"7", Sample{}, true},
		{"[1, null]", Sample{}, true},
		{"[null, 2]", Sample{}, true},
		{"null", Sample{}, true},
	}

	for _, tt := range tests {
		var s Sample
		err := json.Unmarshal([]byte(tt.input), &s)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidShape) {
				t.Errorf("Unmarshal(%s) error = %v, expected ErrInvalidShape", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", tt.input, err)
			continue
		}
		if s != tt.expected {
			t.Errorf("Unmarshal(%s) = %+v, expected %+v", tt.input, s, tt.expected)
		}
	}
}

func TestSampleMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Dataset{{X: 6, Y: 60}, {X: 1.5, Y: 0}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), "[[6,60],[1.5,0]]"; got != want {
		t.Errorf("Marshal = %s, expected %s", got, want)
	}
}

func TestFormatSeries(t *testing.T) {
	tests := []struct {
		values   []float64
		expected string
	}{
		{[]float64{1, 2, 3, 4, 5, 6}, "[1, 2, 3, 4, 5, 6]"},
		{[]float64{10, 20.5, -3}, "[10, 20.5, -3]"},
		{nil, "[]"},
	}

	for _, tt := range tests {
		if result := FormatSeries(tt.values); result != tt.expected {
			t.Errorf("FormatSeries(%v) = %q, expected %q", tt.values, result, tt.expected)
		}
	}

	if got := (Sample{X: 6, Y: 60}).String(); got != "[6, 60]" {
		t.Errorf("Sample.String() = %q, expected %q", got, "[6, 60]")
	}
}

func TestAxesZip(t *testing.T) {
	axes := Axes{
		X: []float64{1, 2, 3},
		Y: []float64{10, 20, 15},
	}
	expected := Dataset{{1, 10}, {2, 20}, {3, 15}}

	if diff := cmp.Diff(expected, axes.Zip()); diff != "" {
		t.Errorf("Zip() mismatch (-want +got):\n%s", diff)
	}

	if n := (Axes{X: []float64{1, 2}, Y: []float64{1}}).Len(); n != 1 {
		t.Errorf("Len() = %d, expected 1", n)
	}
}
