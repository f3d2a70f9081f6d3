// Package output serializes timing datasets.
package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
)

// DatasetToJSON encodes ds as a JSON array of [x, y] pairs.
// Pretty output puts one pair per line.
func DatasetToJSON(ds models.Dataset, pretty bool) ([]byte, error) {
	if ds == nil {
		ds = models.Dataset{}
	}
	if !pretty || len(ds) == 0 {
		return json.Marshal(ds)
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, s := range ds {
		pair, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(pair)
		if i < len(ds)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}

// WriteDataset writes ds to path in the dataset file format.
func WriteDataset(path string, ds models.Dataset, pretty bool) error {
	data, err := DatasetToJSON(ds, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
