package metrics

import (
	"math"

	"github.com/lmfit-go/lmfit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// The solver's own buffers are float32 (see internal/linalg's accumulation
// contract); these goodness-of-fit helpers accept float32 curve/data slices
// directly rather than asking a caller to round-trip through gonum/mat, and
// use gonum/floats for the float64 reductions (mean, sum of squares) once
// the data has been widened.

// widen copies a []float32 slice into a freshly allocated []float64 slice.
func widen(xs []float32) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// R2 computes the coefficient of determination between observed data and a
// fitted curve evaluated at the same points.
func R2(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("R2", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("R2", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	mean := floats.Sum(d64) / float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		tss += (d64[i] - mean) * (d64[i] - mean)
		rss += (d64[i] - c64[i]) * (d64[i] - c64[i])
	}

	if tss == 0 {
		return 0, errors.Newf("R2: total sum of squares is zero (no variance in data)")
	}

	return 1 - rss/tss, nil
}

// RMSECurve computes the root mean squared residual between observed data
// and a fitted curve.
func RMSECurve(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("RMSECurve", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("RMSECurve", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	var sumSq float64
	for i := 0; i < n; i++ {
		diff := d64[i] - c64[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(n)), nil
}

// ReducedChiSquare divides a chi-square objective value by its degrees of
// freedom (n_points - n_free_parameters). A value near 1 indicates the
// model explains the data to within its estimated noise; values well above
// 1 suggest underfitting or underestimated noise, values well below 1
// suggest overfitting or overestimated noise.
func ReducedChiSquare(chiSquare float32, nPoints, nFreeParameters int) (float64, error) {
	dof := nPoints - nFreeParameters
	if dof <= 0 {
		return 0, errors.NewValueError("ReducedChiSquare", "degrees of freedom must be positive")
	}
	return float64(chiSquare) / float64(dof), nil
}
