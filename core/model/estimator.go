package model

import "gonum.org/v1/gonum/mat"

// Fitter is implemented by any model that can be trained on data.
type Fitter interface {
	// Fit trains the model on X, y.
	Fit(X, y mat.Matrix) error
}

// Predictor is implemented by any model that produces predictions.
type Predictor interface {
	// Predict returns the model's output for X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the minimal contract shared by every trainable model: it can
// be fit, and it can report whether fitting has happened.
type Estimator interface {
	Fitter
	IsFitted() bool
}
