package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/parser"
)

func TestDatasetToJSON(t *testing.T) {
	ds := models.Dataset{{X: 1, Y: 120}, {X: 2, Y: 210.5}}

	tests := []struct {
		pretty   bool
		expected string
	}{
		{false, "[[1,120],[2,210.5]]"},
		{true, "[\n  [1,120],\n  [2,210.5]\n]"},
	}

	for _, tt := range tests {
		data, err := DatasetToJSON(ds, tt.pretty)
		if err != nil {
			t.Fatalf("DatasetToJSON failed: %v", err)
		}
		if string(data) != tt.expected {
			t.Errorf("DatasetToJSON(pretty=%v) = %q, expected %q", tt.pretty, data, tt.expected)
		}
	}

	data, err := DatasetToJSON(nil, true)
	if err != nil {
		t.Fatalf("DatasetToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [] for nil dataset, got %q", data)
	}
}

// Re-serializing the extracted axes reproduces the loaded dataset.
func TestRoundTrip(t *testing.T) {
	input := "[[1,10],[2,20],[3,15],[4,40],[5,5],[6,60],[7,0.25]]"

	ds, err := parser.DecodeDataset(bytes.NewReader([]byte(input)))
	if err != nil {
		t.Fatalf("DecodeDataset failed: %v", err)
	}
	axes, err := parser.ExtractAxes(ds, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ExtractAxes failed: %v", err)
	}

	data, err := DatasetToJSON(axes.Zip(), false)
	if err != nil {
		t.Fatalf("DatasetToJSON failed: %v", err)
	}
	if string(data) != input {
		t.Errorf("Round trip = %s, expected %s", data, input)
	}
}

func TestWriteDataset(t *testing.T) {
	ds := models.Dataset{{X: 1, Y: 35}, {X: 2, Y: 48}, {X: 3, Y: 51}}
	path := filepath.Join(t.TempDir(), "Time(num of streams).json")

	if err := WriteDataset(path, ds, true); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	loaded, err := parser.LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if diff := cmp.Diff(ds, loaded); diff != "" {
		t.Errorf("Reloaded dataset mismatch (-want +got):\n%s", diff)
	}
}
