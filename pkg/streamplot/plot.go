package streamplot

import (
	"github.com/golang/glog"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/parser"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/render"
)

// Run loads the dataset, extracts its axis series and shows them as a
// scatter plot on display. Each stage runs once, in order; the first
// failure is returned as a *StageError.
func Run(opts Options, display render.Display) error {
	glog.V(1).Infof("load: %s", opts.DataPath)
	ds, err := parser.LoadDataset(opts.DataPath)
	if err != nil {
		return NewStageError(StageLoad, err)
	}

	glog.V(1).Infof("extract: %d samples", len(ds))
	axes, err := parser.ExtractAxes(ds, opts.stdout())
	if err != nil {
		return NewStageError(StageExtract, err)
	}

	img, err := render.Scatter(axes, opts.Render)
	if err != nil {
		return NewStageError(StageRender, err)
	}

	if err := display.Show(opts.WindowTitle, img); err != nil {
		return NewStageError(StageDisplay, err)
	}
	glog.V(1).Info("display closed")
	return nil
}
