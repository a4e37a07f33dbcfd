package curvefit

import "github.com/lmfit-go/lmfit/pkg/log"

// Option configures a CurveFitter at construction time.
type Option func(*CurveFitter)

// WithTolerance sets the convergence tolerance passed to the underlying
// Solver. The default is 1e-6.
func WithTolerance(tolerance float32) Option {
	return func(f *CurveFitter) {
		f.tolerance = tolerance
	}
}

// WithMaxIterations sets the outer iteration cap. The default is 50.
func WithMaxIterations(maxIterations int) Option {
	return func(f *CurveFitter) {
		f.maxIterations = maxIterations
	}
}

// WithEstimator selects the objective the solver minimizes. It overrides
// the estimator passed to New.
func WithEstimator(estimator Estimator) Option {
	return func(f *CurveFitter) {
		f.estimator = estimator
	}
}

// WithInitialParameters sets the starting parameter vector. Its length
// must equal the model's NParameters; Fit returns a dimension error
// otherwise. If unset, Fit starts from a zero vector.
func WithInitialParameters(params []float32) Option {
	return func(f *CurveFitter) {
		f.initialParameters = append([]float32(nil), params...)
	}
}

// WithParameterMask selects which parameters are free to vary during the
// fit; a false entry holds that parameter fixed at its initial value. Its
// length must equal the model's NParameters. If unset, every parameter is
// free.
func WithParameterMask(mask []bool) Option {
	return func(f *CurveFitter) {
		f.parametersToFit = append([]bool(nil), mask...)
	}
}

// WithWeights sets the per-point weight array passed to the solver's
// objective (1/sigma^2 in the usual chi-square convention). Its length
// must equal the number of data points. If unset, every point is
// unweighted.
func WithWeights(weights []float32) Option {
	return func(f *CurveFitter) {
		f.weights = append([]float32(nil), weights...)
	}
}

// WithLogger installs a Logger the underlying Solver uses for its
// diagnostics (a warning when a fit ends without converging). If unset,
// the Solver uses log.Default(), a no-op logger unless log.SetDefault
// has installed another.
func WithLogger(logger log.Logger) Option {
	return func(f *CurveFitter) {
		f.logger = logger
	}
}
