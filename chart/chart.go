// Package chart renders named (x, y) series to an image file.
//
// It is the external rendering collaborator for the fitting pipeline: callers
// hand it labeled series (training points, ground truth, fitted curves) plus
// axis display options, and it produces a chart. Rendering is delegated to
// gonum/plot; this package only adapts the series-based contract onto it.
package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

// Chart accumulates named series and renders them as a single figure.
type Chart struct {
	plot   *plot.Plot
	series int
}

// New creates an empty chart with the given title and axis labels.
func New(title, xLabel, yLabel string) *Chart {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	return &Chart{plot: p}
}

func makeXYs(op string, x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, errors.NewDimensionError(op, len(x), len(y), 0)
	}
	if len(x) == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

// AddLine adds an ordered series drawn as a connected line.
func (c *Chart) AddLine(name string, x, y []float64) error {
	xys, err := makeXYs("Chart.AddLine", x, y)
	if err != nil {
		return err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "failed to build line series")
	}
	line.Color = plotutil.Color(c.series)
	c.series++

	c.plot.Add(line)
	c.plot.Legend.Add(name, line)
	return nil
}

// AddScatter adds a series drawn as unconnected points.
func (c *Chart) AddScatter(name string, x, y []float64) error {
	xys, err := makeXYs("Chart.AddScatter", x, y)
	if err != nil {
		return err
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter series")
	}
	scatter.Color = plotutil.Color(c.series)
	scatter.Shape = plotutil.Shape(c.series)
	c.series++

	c.plot.Add(scatter)
	c.plot.Legend.Add(name, scatter)
	return nil
}

// Save renders the chart to path. The output format is inferred from the
// file extension (png, svg, pdf, ...). Width and height are in inches.
func (c *Chart) Save(widthInches, heightInches float64, path string) error {
	if err := c.plot.Save(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save chart to %s", path)
	}
	return nil
}
