// Package coords provides coordinate preprocessing for independent-variable
// arrays (x-coordinates, grid indices) before they are packed into a
// solver's user_info buffer. It is a narrower cousin of a general-purpose
// feature scaler: a curve fit's independent variable is a single []float64
// array, not an n_samples x n_features matrix, so there is no Transform
// matrix round trip here.
package coords

import (
	"fmt"
	"math"

	"github.com/lmfit-go/lmfit/pkg/errors"
)

// Standardizer rescales a coordinate array to zero mean and unit variance,
// the same transform scikit-learn's StandardScaler applies to a feature
// column. Fitting models whose independent variable spans many orders of
// magnitude (e.g. time-of-flight data feeding RamseyVarP) converges more
// reliably when x is standardized first; the fitted parameters can then be
// mapped back through Mean/Scale if the caller needs them in the original
// units.
type Standardizer struct {
	fitted bool

	// Mean is the coordinate array's mean.
	Mean float64

	// Scale is the coordinate array's standard deviation (or 1, if the
	// array is constant).
	Scale float64
}

// Fit computes Mean and Scale from x.
func (s *Standardizer) Fit(x []float64) error {
	n := len(x)
	if n == 0 {
		return errors.NewModelError("Standardizer.Fit", "empty data", errors.ErrEmptyData)
	}

	var sum float64
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(n)

	var sumSquares float64
	for _, v := range x {
		diff := v - mean
		sumSquares += diff * diff
	}
	scale := math.Sqrt(sumSquares / float64(n))
	if math.Abs(scale) < 1e-8 {
		scale = 1.0
	}

	s.Mean = mean
	s.Scale = scale
	s.fitted = true
	return nil
}

// Transform standardizes x using previously fitted Mean/Scale.
func (s *Standardizer) Transform(x []float64) ([]float64, error) {
	if !s.fitted {
		return nil, errors.NewNotFittedError("Standardizer", "Transform")
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean) / s.Scale
	}
	return out, nil
}

// FitTransform fits on x and returns its standardized form.
func (s *Standardizer) FitTransform(x []float64) ([]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

// InverseTransform maps standardized values back to the original scale.
func (s *Standardizer) InverseTransform(x []float64) ([]float64, error) {
	if !s.fitted {
		return nil, errors.NewNotFittedError("Standardizer", "InverseTransform")
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v*s.Scale + s.Mean
	}
	return out, nil
}

// IsFitted reports whether Fit has been called.
func (s *Standardizer) IsFitted() bool { return s.fitted }

func (s *Standardizer) String() string {
	if !s.fitted {
		return "Standardizer(unfitted)"
	}
	return fmt.Sprintf("Standardizer(mean=%.6g, scale=%.6g)", s.Mean, s.Scale)
}
