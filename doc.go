// Package lmfit provides a Levenberg-Marquardt nonlinear curve-fitting
// engine with Moré trust-region damping control, for fitting one of a
// fixed set of models to (x, y) data under a least-squares or Poisson
// maximum-likelihood objective.
//
// # Features
//
// - A dense LUP linear-algebra kernel with a float32-storage/float64-
//   accumulator numerical contract
// - Nine built-in models spanning 1D/2D Gaussians, Cauchy, linear, and
//   two synthetic test functions (Fletcher-Powell helix, Brown-Dennis),
//   and the Ramsey variable-power dephasing model
// - Least-squares and Poisson maximum-likelihood objectives
// - An adaptive trust-region damping controller (Moré's algorithm)
// - A sklearn-style facade (curvefit.CurveFitter) for Fit/Predict/Score
//
// # Quick start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/lmfit-go/lmfit"
//	    "github.com/lmfit-go/lmfit/curvefit"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    x := []float64{0, 1, 2, 3, 4, 5}
//	    y := []float64{1.1, 2.9, 5.2, 6.8, 9.1, 11.0}
//
//	    fitter := curvefit.New(lmfit.ModelLinear1D, lmfit.EstimatorLSE,
//	        curvefit.WithMaxIterations(50),
//	    )
//
//	    X := mat.NewDense(len(x), 1, x)
//	    Y := mat.NewDense(len(y), 1, y)
//	    if err := fitter.Fit(X, Y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("parameters:", fitter.Parameters())
//	}
//
// # Packages
//
//   - internal/linalg: LUP factorize/solve/invert and vector primitives
//   - internal/models: per-model evaluate + analytic derivatives
//   - internal/objective: chi-square/gradient/Hessian assembly
//   - internal/trustregion: the Moré damping controller
//   - lmfit: the core Solver and its public types
//   - curvefit: a sklearn-style Fit/Predict/Score facade
//   - metrics: goodness-of-fit (R², RMSE, reduced chi-square)
//   - coords: independent-variable coordinate standardization
//   - diagnostics: fit-vs-data plotting
//   - core/model: shared estimator/persistence interfaces
//   - pkg/errors, pkg/log: the error taxonomy and structured logging
//
// # Non-goals
//
// Multi-fit batching inside the core solver, automatic/symbolic
// differentiation, constraint handling beyond a free/fixed parameter mask,
// and a CLI or network-service entry point are all explicitly out of
// scope; see SPEC_FULL.md for the full list.
package lmfit
