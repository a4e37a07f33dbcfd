package metrics

import (
	"math"

	"github.com/lmfit-go/lmfit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// MSE computes the mean squared residual between observed data and a
// fitted curve evaluated at the same points.
func MSE(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("MSE", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	var sumSq float64
	for i := 0; i < n; i++ {
		diff := d64[i] - c64[i]
		sumSq += diff * diff
	}

	return sumSq / float64(n), nil
}

// MAE computes the mean absolute residual between observed data and a
// fitted curve.
func MAE(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("MAE", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(d64[i] - c64[i])
	}

	return sum / float64(n), nil
}

// MAPE computes the mean absolute percentage residual between observed
// data and a fitted curve. Points where data is zero are skipped, since
// the percentage is undefined there.
func MAPE(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("MAPE", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("MAPE", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	var sum float64
	validCount := 0
	for i := 0; i < n; i++ {
		if d64[i] != 0 {
			sum += math.Abs(d64[i]-c64[i]) / math.Abs(d64[i])
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.Newf("MAPE: all data values are zero")
	}

	return (sum / float64(validCount)) * 100, nil
}

// ExplainedVarianceScore computes the fraction of the data's variance
// explained by the fitted curve's residuals, a goodness-of-fit measure
// related to but distinct from R2: R2 penalizes a biased residual mean,
// ExplainedVarianceScore does not.
func ExplainedVarianceScore(data, curve []float32) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errors.NewValueError("ExplainedVarianceScore", "empty data")
	}
	if len(curve) != n {
		return 0, errors.NewDimensionError("ExplainedVarianceScore", n, len(curve), 0)
	}

	d64 := widen(data)
	c64 := widen(curve)

	dataMean := floats.Sum(d64) / float64(n)

	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		residual[i] = d64[i] - c64[i]
	}
	residualMean := floats.Sum(residual) / float64(n)

	var varData, varResidual float64
	for i := 0; i < n; i++ {
		varData += (d64[i] - dataMean) * (d64[i] - dataMean)
		varResidual += (residual[i] - residualMean) * (residual[i] - residualMean)
	}
	varData /= float64(n)
	varResidual /= float64(n)

	if varData == 0 {
		return 0, errors.Newf("ExplainedVarianceScore: no variance in data")
	}

	return 1 - varResidual/varData, nil
}
