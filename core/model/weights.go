package model

import (
	"encoding/json"
	"fmt"
)

// FitResult is the JSON-serializable summary of a completed fit: the
// recovered parameters alongside the solver metadata needed to judge
// whether the fit is trustworthy. It plays the role the teacher's
// ModelWeights plays for a linear model, generalized to a non-linear
// iterative solve.
type FitResult struct {
	// ModelID names the fitted model (e.g. "gauss1d", "linear1d").
	ModelID string `json:"model_id"`

	// EstimatorID names the objective used ("lse" or "mle").
	EstimatorID string `json:"estimator_id"`

	// Version is a schema version for forward compatibility.
	Version string `json:"version"`

	// Parameters holds the recovered parameter vector.
	Parameters []float32 `json:"parameters"`

	// ChiSquare is the objective value at termination.
	ChiSquare float32 `json:"chi_square"`

	// NIterations is the number of outer iterations the solver ran.
	NIterations int `json:"n_iterations"`

	// State names the terminal solver state ("converged", "max_iteration", ...).
	State string `json:"state"`

	// Hyperparameters records the tolerance/max-iterations/etc. the solver
	// was constructed with.
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`

	// Metadata holds anything else worth keeping alongside the fit.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted is true once a fit has completed, successfully or not.
	IsFitted bool `json:"is_fitted"`
}

// ToJSON serializes the result.
func (r *FitResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON deserializes into r.
func (r *FitResult) FromJSON(data []byte) error {
	return json.Unmarshal(data, r)
}

// Validate checks internal consistency.
func (r *FitResult) Validate() error {
	if r.ModelID == "" {
		return fmt.Errorf("model_id is required")
	}
	if r.Version == "" {
		return fmt.Errorf("version is required")
	}
	if !r.IsFitted && len(r.Parameters) > 0 {
		return fmt.Errorf("unfitted result should not carry parameters")
	}
	if r.IsFitted && len(r.Parameters) == 0 {
		return fmt.Errorf("fitted result must carry parameters")
	}
	return nil
}

// Clone returns a deep copy of r.
func (r *FitResult) Clone() *FitResult {
	clone := &FitResult{
		ModelID:         r.ModelID,
		EstimatorID:     r.EstimatorID,
		Version:         r.Version,
		ChiSquare:       r.ChiSquare,
		NIterations:     r.NIterations,
		State:           r.State,
		IsFitted:        r.IsFitted,
		Parameters:      make([]float32, len(r.Parameters)),
		Hyperparameters: make(map[string]interface{}),
		Metadata:        make(map[string]interface{}),
	}

	copy(clone.Parameters, r.Parameters)

	for k, v := range r.Hyperparameters {
		clone.Hyperparameters[k] = v
	}
	for k, v := range r.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}
