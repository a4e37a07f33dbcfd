// Package diagnostics renders a fitted curve against its observed data to
// a PNG, for visually inspecting a fit the way a notebook plot would.
package diagnostics

import (
	"math"

	"github.com/lmfit-go/lmfit/internal/models"
	"github.com/lmfit-go/lmfit/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotFit1D renders the observed (x, y) data as scattered points and the
// fitted curve as a line, and writes the result to path as a PNG. x may
// be nil, in which case the point index is used as the x-coordinate,
// matching the same user_info absence convention the solver itself uses.
func PlotFit1D(path string, modelID models.ID, parameters []float32, x, data []float32) error {
	n := len(data)
	if n == 0 {
		return errors.NewValueError("PlotFit1D", "empty data")
	}
	if x != nil && len(x) != n {
		return errors.NewDimensionError("PlotFit1D", n, len(x), 0)
	}

	curve := make([]float32, n)
	models.Lookup(modelID).Evaluate(parameters, n, x, 0, curve)

	observed := make(plotter.XYs, n)
	fitted := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xi := float64(i)
		if x != nil {
			xi = float64(x[i])
		}
		observed[i].X, observed[i].Y = xi, float64(data[i])
		fitted[i].X, fitted[i].Y = xi, float64(curve[i])
	}

	p := plot.New()
	p.Title.Text = modelID.String() + " fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		return errors.Wrap(err, "PlotFit1D: building scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	sortedFitted := sortByX(fitted)
	line, err := plotter.NewLine(sortedFitted)
	if err != nil {
		return errors.Wrap(err, "PlotFit1D: building line")
	}

	p.Add(scatter, line)
	p.Legend.Add("data", scatter)
	p.Legend.Add("fit", line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "PlotFit1D: saving plot")
	}
	return nil
}

// PlotResidual2D renders the per-sample residual (data - curve) of a
// 2D-grid model as a bubble plot over its S x S sample grid: one point
// per grid cell at (ix, iy), with marker radius proportional to the
// residual's magnitude at that cell.
func PlotResidual2D(path string, modelID models.ID, parameters []float32, data []float32) error {
	n := len(data)
	if n == 0 {
		return errors.NewValueError("PlotResidual2D", "empty data")
	}

	curve := make([]float32, n)
	models.Lookup(modelID).Evaluate(parameters, n, nil, 0, curve)

	s := int(math.Sqrt(float64(n)))
	maxAbs := 0.0
	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		residual[i] = float64(data[i] - curve[i])
		if abs := math.Abs(residual[i]); abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	p := plot.New()
	p.Title.Text = modelID.String() + " residuals"
	p.X.Label.Text = "ix"
	p.Y.Label.Text = "iy"

	points := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		points[i].X = float64(i % s)
		points[i].Y = float64(i / s)
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "PlotResidual2D: building scatter")
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		radius := vg.Points(1 + 8*math.Abs(residual[i])/maxAbs)
		return draw.GlyphStyle{Color: scatter.GlyphStyle.Color, Shape: scatter.GlyphStyle.Shape, Radius: radius}
	}

	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "PlotResidual2D: saving plot")
	}
	return nil
}

// sortByX returns a copy of pts sorted by ascending X, since Evaluate
// produces points in sample order which need not already be x-sorted
// once a caller supplies an arbitrary user_info array.
func sortByX(pts plotter.XYs) plotter.XYs {
	sorted := make(plotter.XYs, len(pts))
	copy(sorted, pts)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].X < sorted[j-1].X; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}
