// Package model provides the shared estimator/predictor/persistence
// contracts implemented across the fitting packages.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can compute a goodness-of-fit score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces a regression model is expected to satisfy.
type Regressor interface {
	Estimator
	Predictor
	Scorer
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save saves the model to a file.
	Save(path string) error

	// Load loads the model from a file.
	Load(path string) error
}
