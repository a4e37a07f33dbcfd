package lmfit

import (
	"github.com/lmfit-go/lmfit/internal/models"
	"github.com/lmfit-go/lmfit/internal/objective"
)

// Estimator selects the statistical objective minimized by the fit.
type Estimator = objective.Estimator

const (
	EstimatorLSE = objective.LSE
	EstimatorMLE = objective.MLE
)

// Model names one of the nine built-in curve-fitting models.
type Model = models.ID

const (
	ModelGauss1D             = models.Gauss1D
	ModelGauss2D             = models.Gauss2D
	ModelGauss2DElliptic     = models.Gauss2DElliptic
	ModelGauss2DRotated      = models.Gauss2DRotated
	ModelCauchy2DElliptic    = models.Cauchy2DElliptic
	ModelLinear1D            = models.Linear1D
	ModelFletcherPowellHelix = models.FletcherPowellHelix
	ModelBrownDennis         = models.BrownDennis
	ModelRamseyVarP          = models.RamseyVarP
)

// State is the terminal status of a fit, meaningful only after
// Solver.Run returns. Run tracks "still running" separately, so a
// live fit is never confused with a converged one mid-iteration.
type State int

const (
	// Converged means the convergence test was satisfied.
	Converged State = iota
	// MaxIteration means the iteration cap was reached without
	// satisfying the convergence test.
	MaxIteration
	// SingularHessian means an LUP factorization hit an exactly-zero
	// pivot; the fit halted with the last accepted iterate.
	SingularHessian
	// NegCurvatureMLE means a model curve value went non-positive under
	// the MLE objective, where the Poisson log-likelihood is undefined.
	NegCurvatureMLE
	// NumericalInstability means the model curve or gradient produced a
	// NaN or Inf value, usually from an initial guess or a step that
	// pushed a parameter far outside the domain the model was evaluated
	// for.
	NumericalInstability
)

func (s State) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIteration:
		return "max_iteration"
	case SingularHessian:
		return "singular_hessian"
	case NegCurvatureMLE:
		return "neg_curvature_mle"
	case NumericalInstability:
		return "numerical_instability"
	default:
		return "unknown"
	}
}
