// Package streamplot plots stream timing datasets.
package streamplot

import (
	"io"
	"os"

	"github.com/ukaji3/streamplot-go/pkg/streamplot/render"
)

const (
	// DataFile is the dataset path, relative to the working directory.
	DataFile = "Time(num of streams).json"
	// XLabel is the X axis label.
	XLabel = "number of streams"
	// YLabel is the Y axis label.
	YLabel = "time, mks"
	// WindowTitle is the title of the plot window.
	WindowTitle = "streamplot"
)

// Options configures a plot run.
type Options struct {
	// DataPath is the dataset file to load.
	DataPath string
	// Stdout receives the diagnostic output. If nil, os.Stdout is used.
	Stdout io.Writer
	// Render configures the scatter plot.
	Render render.Options
	// WindowTitle is passed to the display.
	WindowTitle string
}

// DefaultOptions returns the hardcoded file name and axis labels.
func DefaultOptions() Options {
	ro := render.DefaultOptions()
	ro.XLabel = XLabel
	ro.YLabel = YLabel

	return Options{
		DataPath:    DataFile,
		Render:      ro,
		WindowTitle: WindowTitle,
	}
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}
