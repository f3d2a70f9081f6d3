package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/golang/glog"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrSeriesMismatch indicates X and Y series of different lengths.
var ErrSeriesMismatch = errors.New("series length mismatch")

// Options configures plot rendering.
type Options struct {
	// Title is the plot title. Empty means no title.
	Title string
	// XLabel is the X axis label.
	XLabel string
	// YLabel is the Y axis label.
	YLabel string
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Color is the point marker color.
	Color color.Color
	// Radius is the point marker radius in pixels.
	Radius int
}

// DefaultOptions returns red circle markers on a 640x480 image.
func DefaultOptions() Options {
	return Options{
		Width:  640,
		Height: 480,
		Color:  color.RGBA{R: 255, A: 255},
		Radius: 4,
	}
}

// Display shows a rendered plot. Implementations may block until the
// viewer is dismissed.
type Display interface {
	Show(title string, img image.Image) error
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(title string, img image.Image) error

// Show calls f(title, img).
func (f DisplayFunc) Show(title string, img image.Image) error {
	return f(title, img)
}

// axesXY adapts models.Axes to plotter.XYer.
type axesXY models.Axes

func (a axesXY) Len() int { return len(a.X) }

func (a axesXY) XY(i int) (float64, float64) { return a.X[i], a.Y[i] }

// NewPlot builds a scatter plot of axes: discrete markers, no connecting line.
func NewPlot(axes models.Axes, opts Options) (*plot.Plot, error) {
	if len(axes.X) != len(axes.Y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values",
			ErrSeriesMismatch, len(axes.X), len(axes.Y))
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	points, err := plotter.NewScatter(axesXY(axes))
	if err != nil {
		return nil, err
	}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	if opts.Color != nil {
		points.GlyphStyle.Color = opts.Color
	}
	if opts.Radius > 0 {
		points.GlyphStyle.Radius = PixelsToLength(opts.Radius)
	}
	p.Add(points)

	return p, nil
}

// Scatter renders axes to an image of opts.Width x opts.Height pixels.
func Scatter(axes models.Axes, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	p, err := NewPlot(axes, opts)
	if err != nil {
		return nil, err
	}

	c := vgimg.NewWith(
		vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))),
		vgimg.UseDPI(DPI),
	)
	p.Draw(draw.New(c))
	glog.V(1).Infof("rendered %d points at %dx%d", len(axes.X), opts.Width, opts.Height)

	return c.Image(), nil
}
