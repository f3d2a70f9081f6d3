package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/golang/glog"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
)

// LoadDataset reads and decodes the dataset file at path.
// The file is closed before returning, on success or failure.
func LoadDataset(path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	ds, err := DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("loaded %d samples from %s", len(ds), path)
	return ds, nil
}

// DecodeDataset parses the entire contents of r as a JSON array of
// [x, y] pairs. Trailing data after the array is an error.
func DecodeDataset(r io.Reader) (models.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		// Shape errors from a single entry are reported as they are
		if errors.Is(err, models.ErrInvalidShape) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	// A bare null decodes without error but is not an array
	if ds == nil {
		return nil, fmt.Errorf("%w: not a JSON array", ErrInvalidFormat)
	}
	return ds, nil
}
