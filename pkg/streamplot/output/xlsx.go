package output

import (
	"fmt"

	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the samples.
const SheetName = "Timings"

// Labels names the two dataset columns.
type Labels struct {
	X string
	Y string
}

// WriteWorkbook writes ds to an xlsx file at path.
// Row 1 holds the labels and each following row one sample; a scatter
// chart of the samples is placed next to the data.
func WriteWorkbook(path string, ds models.Dataset, labels Labels) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]interface{}{labels.X, labels.Y}); err != nil {
		return err
	}
	for i, s := range ds {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // 1-based, below header
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]interface{}{s.X, s.Y}); err != nil {
			return err
		}
	}

	if len(ds) > 0 {
		if err := f.AddChart(SheetName, "D2", scatterChart(len(ds), labels)); err != nil {
			return fmt.Errorf("failed to add chart: %w", err)
		}
	}

	return f.SaveAs(path)
}

// scatterChart builds a marker-only scatter chart over rows 2..n+1.
func scatterChart(n int, labels Labels) *excelize.Chart {
	lastRow := n + 1
	column := func(col string) string {
		return fmt.Sprintf("%s!$%s$2:$%s$%d", SheetName, col, col, lastRow)
	}

	return &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{
			{
				Name:       SheetName + "!$B$1",
				Categories: column("A"),
				Values:     column("B"),
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
				Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
			},
		},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: labels.X}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: labels.Y}}},
		Legend: excelize.ChartLegend{Position: "none"},
	}
}
