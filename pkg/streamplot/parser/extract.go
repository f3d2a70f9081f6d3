package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
)

// DiagnosticIndex is the position of the sample echoed before extraction.
const DiagnosticIndex = 5

// ExtractAxes splits ds into its X and Y series in a single forward pass.
//
// Before extracting, the sample at DiagnosticIndex is written to w; a
// dataset with no such sample fails with ErrIndexOutOfRange and nothing
// is written. After extracting, both series are written to w, one per line.
func ExtractAxes(ds models.Dataset, w io.Writer) (models.Axes, error) {
	if len(ds) <= DiagnosticIndex {
		return models.Axes{}, fmt.Errorf("%w: index %d with length %d",
			ErrIndexOutOfRange, DiagnosticIndex, len(ds))
	}
	fmt.Fprintln(w, ds[DiagnosticIndex])

	axes := models.Axes{
		X: make([]float64, 0, len(ds)),
		Y: make([]float64, 0, len(ds)),
	}
	for i := 0; i < len(ds); i++ {
		axes.X = append(axes.X, ds[i].X)
		axes.Y = append(axes.Y, ds[i].Y)
	}

	fmt.Fprintln(w, models.FormatSeries(axes.X))
	fmt.Fprintln(w, models.FormatSeries(axes.Y))
	return axes, nil
}
