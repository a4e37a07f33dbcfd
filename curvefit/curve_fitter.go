// Package curvefit provides a scikit-learn-style Fit/Predict/Score facade
// over the lmfit Solver, so a curve fit reads like any other estimator in
// this module's ecosystem instead of exposing the solver's flat []float32
// workspace directly.
package curvefit

import (
	"fmt"

	"github.com/lmfit-go/lmfit"
	"github.com/lmfit-go/lmfit/core/model"
	"github.com/lmfit-go/lmfit/internal/models"
	"github.com/lmfit-go/lmfit/metrics"
	"github.com/lmfit-go/lmfit/pkg/errors"
	"github.com/lmfit-go/lmfit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Model and Estimator alias the root package's enums so callers can
// construct a CurveFitter without importing lmfit directly.
type (
	Model     = lmfit.Model
	Estimator = lmfit.Estimator
)

const (
	ModelGauss1D             = lmfit.ModelGauss1D
	ModelGauss2D             = lmfit.ModelGauss2D
	ModelGauss2DElliptic     = lmfit.ModelGauss2DElliptic
	ModelGauss2DRotated      = lmfit.ModelGauss2DRotated
	ModelCauchy2DElliptic    = lmfit.ModelCauchy2DElliptic
	ModelLinear1D            = lmfit.ModelLinear1D
	ModelFletcherPowellHelix = lmfit.ModelFletcherPowellHelix
	ModelBrownDennis         = lmfit.ModelBrownDennis
	ModelRamseyVarP          = lmfit.ModelRamseyVarP

	EstimatorLSE = lmfit.EstimatorLSE
	EstimatorMLE = lmfit.EstimatorMLE
)

// CurveFitter wraps a single-fit Solver behind an Estimator/Predictor/
// Scorer/Persistable contract. Construct one per fit; a fitted
// CurveFitter can be Predict/Score'd repeatedly but Fit should not be
// called again on the same instance once trained (construct a fresh one
// instead, matching the Solver's own single-use contract).
type CurveFitter struct {
	state *model.StateManager

	modelID   Model
	estimator Estimator

	tolerance     float32
	maxIterations int

	initialParameters []float32
	parametersToFit   []bool
	weights           []float32
	logger            log.Logger

	nParameters int
	nPoints     int
	fitIndex    int
	userInfo    []float32

	parameters  []float32
	chiSquare   float32
	nIterations int
	finalState  lmfit.State
}

var (
	_ model.Fitter      = (*CurveFitter)(nil)
	_ model.Predictor   = (*CurveFitter)(nil)
	_ model.Estimator   = (*CurveFitter)(nil)
	_ model.Scorer      = (*CurveFitter)(nil)
	_ model.Regressor   = (*CurveFitter)(nil)
	_ model.Persistable = (*CurveFitter)(nil)
)

// New constructs a CurveFitter for the given model and estimator. Use the
// With* options to override the tolerance, iteration cap, starting
// parameters, parameter mask, weights, or logger.
func New(modelID Model, estimator Estimator, opts ...Option) *CurveFitter {
	f := &CurveFitter{
		state:         model.NewStateManager(),
		modelID:       modelID,
		estimator:     estimator,
		tolerance:     1e-6,
		maxIterations: 50,
		nParameters:   models.Lookup(modelID).NParameters(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fit runs the Levenberg-Marquardt solve against X (the independent
// variable, an n x 1 column for every model that consumes one; ignored by
// the 2D grid and synthetic test-function models) and y (the observed
// data, an n x 1 column).
func (f *CurveFitter) Fit(X, y mat.Matrix) error {
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return errors.NewDimensionError("CurveFitter.Fit", 1, yCols, 1)
	}
	if yRows == 0 {
		return errors.NewValueError("CurveFitter.Fit", "empty data")
	}

	xRows, xCols := X.Dims()
	if xRows != yRows {
		return errors.NewDimensionError("CurveFitter.Fit", yRows, xRows, 0)
	}

	data := make([]float32, yRows)
	for i := 0; i < yRows; i++ {
		data[i] = float32(y.At(i, 0))
	}

	var userInfo []float32
	if xCols > 0 {
		userInfo = make([]float32, xRows)
		for i := 0; i < xRows; i++ {
			userInfo[i] = float32(X.At(i, 0))
		}
	}

	initial := f.initialParameters
	if initial == nil {
		initial = make([]float32, f.nParameters)
	} else if len(initial) != f.nParameters {
		return errors.NewDimensionError("CurveFitter.Fit", f.nParameters, len(initial), 1)
	}

	mask := f.parametersToFit
	if mask == nil {
		mask = make([]bool, f.nParameters)
		for i := range mask {
			mask[i] = true
		}
	} else if len(mask) != f.nParameters {
		return errors.NewDimensionError("CurveFitter.Fit", f.nParameters, len(mask), 1)
	}

	if f.weights != nil && len(f.weights) != yRows {
		return errors.NewDimensionError("CurveFitter.Fit", yRows, len(f.weights), 0)
	}

	nFree := 0
	for _, free := range mask {
		if free {
			nFree++
		}
	}

	info := lmfit.FitInfo{
		NPoints:          yRows,
		NParameters:      f.nParameters,
		NParametersToFit: nFree,
		MaxIterations:    f.maxIterations,
		ModelID:          f.modelID,
		EstimatorID:      f.estimator,
	}
	in := lmfit.Input{
		Data:              data,
		Weight:            f.weights,
		InitialParameters: initial,
		ParametersToFit:   mask,
		UserInfo:          userInfo,
		FitIndex:          f.fitIndex,
	}
	out := &lmfit.Output{Parameters: make([]float32, f.nParameters)}

	solver := lmfit.NewSolver(f.tolerance, info, in, out)
	solver.SetLogger(f.logger)
	err := solver.Run()

	f.nPoints = yRows
	f.userInfo = userInfo
	f.parameters = out.Parameters
	f.chiSquare = out.ChiSquare
	f.nIterations = out.NIterations
	f.finalState = out.State

	f.state.SetFitted()
	f.state.SetDimensions(f.nParameters, yRows)

	return err
}

// Predict evaluates the fitted model at X, an n x 1 column of independent-
// variable values (ignored by the 2D grid and synthetic test-function
// models, which derive their sample coordinates from n alone).
func (f *CurveFitter) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !f.state.IsFitted() {
		return nil, errors.NewNotFittedError("CurveFitter", "Predict")
	}

	rows, _ := X.Dims()
	userInfo := make([]float32, rows)
	for i := 0; i < rows; i++ {
		userInfo[i] = float32(X.At(i, 0))
	}

	curve := make([]float32, rows)
	models.Lookup(f.modelID).Evaluate(f.parameters, rows, userInfo, f.fitIndex, curve)

	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, float64(curve[i]))
	}
	return out, nil
}

// Score computes the coefficient of determination R^2 between y and the
// model's prediction at X.
func (f *CurveFitter) Score(X, y mat.Matrix) (float64, error) {
	prediction, err := f.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	data := make([]float32, rows)
	curve := make([]float32, rows)
	for i := 0; i < rows; i++ {
		data[i] = float32(y.At(i, 0))
		curve[i] = float32(prediction.At(i, 0))
	}
	return metrics.R2(data, curve)
}

// IsFitted reports whether Fit has been called.
func (f *CurveFitter) IsFitted() bool {
	return f.state.IsFitted()
}

// Parameters returns a copy of the fitted parameter vector.
func (f *CurveFitter) Parameters() []float32 {
	if f.parameters == nil {
		return nil
	}
	params := make([]float32, len(f.parameters))
	copy(params, f.parameters)
	return params
}

// ChiSquare returns the objective value at termination.
func (f *CurveFitter) ChiSquare() float32 { return f.chiSquare }

// NIterations returns the number of outer iterations the solver ran.
func (f *CurveFitter) NIterations() int { return f.nIterations }

// State returns the solver's terminal state.
func (f *CurveFitter) State() lmfit.State { return f.finalState }

// FitResult summarizes the fit as a JSON-friendly model.FitResult, for
// callers that want a report to log or hand to another system rather
// than the gob snapshot Save/Load use.
func (f *CurveFitter) FitResult() *model.FitResult {
	r := &model.FitResult{
		ModelID:     f.modelID.String(),
		EstimatorID: f.estimator.String(),
		Version:     "1",
		ChiSquare:   f.chiSquare,
		NIterations: f.nIterations,
		State:       f.finalState.String(),
		IsFitted:    f.state.IsFitted(),
		Hyperparameters: map[string]interface{}{
			"tolerance":      f.tolerance,
			"max_iterations": f.maxIterations,
		},
	}
	if r.IsFitted {
		r.Parameters = f.Parameters()
	}
	return r
}

// snapshot is the gob-serializable form of a fitted CurveFitter. The
// exported CurveFitter type itself carries an unexported *StateManager
// and is not gob-safe, mirroring why the teacher's ModelWeights exists as
// a separate export type rather than gob-encoding the model directly.
type snapshot struct {
	ModelID           lmfit.Model
	EstimatorID       lmfit.Estimator
	Tolerance         float32
	MaxIterations     int
	InitialParameters []float32
	ParametersToFit   []bool
	Weights           []float32
	NParameters       int
	NPoints           int
	FitIndex          int
	UserInfo          []float32
	Parameters        []float32
	ChiSquare         float32
	NIterations       int
	FinalState        lmfit.State
	Fitted            bool
}

func (f *CurveFitter) toSnapshot() snapshot {
	return snapshot{
		ModelID:           f.modelID,
		EstimatorID:       f.estimator,
		Tolerance:         f.tolerance,
		MaxIterations:     f.maxIterations,
		InitialParameters: f.initialParameters,
		ParametersToFit:   f.parametersToFit,
		Weights:           f.weights,
		NParameters:       f.nParameters,
		NPoints:           f.nPoints,
		FitIndex:          f.fitIndex,
		UserInfo:          f.userInfo,
		Parameters:        f.parameters,
		ChiSquare:         f.chiSquare,
		NIterations:       f.nIterations,
		FinalState:        f.finalState,
		Fitted:            f.state.IsFitted(),
	}
}

func (f *CurveFitter) fromSnapshot(s snapshot) {
	f.modelID = s.ModelID
	f.estimator = s.EstimatorID
	f.tolerance = s.Tolerance
	f.maxIterations = s.MaxIterations
	f.initialParameters = s.InitialParameters
	f.parametersToFit = s.ParametersToFit
	f.weights = s.Weights
	f.nParameters = s.NParameters
	f.nPoints = s.NPoints
	f.fitIndex = s.FitIndex
	f.userInfo = s.UserInfo
	f.parameters = s.Parameters
	f.chiSquare = s.ChiSquare
	f.nIterations = s.NIterations
	f.finalState = s.FinalState

	f.state = model.NewStateManager()
	if s.Fitted {
		f.state.SetFitted()
		f.state.SetDimensions(f.nParameters, f.nPoints)
	}
}

// Save persists the fitted CurveFitter to path using gob encoding.
func (f *CurveFitter) Save(path string) error {
	if !f.state.IsFitted() {
		return errors.NewNotFittedError("CurveFitter", "Save")
	}
	snap := f.toSnapshot()
	return model.SaveModel(&snap, path)
}

// Load populates f from a file previously written by Save.
func (f *CurveFitter) Load(path string) error {
	var snap snapshot
	if err := model.LoadModel(&snap, path); err != nil {
		return err
	}
	f.fromSnapshot(snap)
	return nil
}

// String summarizes the fitter's configuration and, once fitted, its
// result. See FitResult for a structured, JSON-serializable equivalent.
func (f *CurveFitter) String() string {
	if !f.state.IsFitted() {
		return fmt.Sprintf("CurveFitter(model=%v, estimator=%v, fitted=false)", f.modelID, f.estimator)
	}
	return fmt.Sprintf("CurveFitter(model=%v, estimator=%v, state=%v, chi_square=%v, n_iterations=%d)",
		f.modelID, f.estimator, f.finalState, f.chiSquare, f.nIterations)
}
