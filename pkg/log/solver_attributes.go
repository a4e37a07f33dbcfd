package log

// Solver iteration diagnostics.
// These attributes follow the same "dot-path" naming convention as the rest
// of this package's attribute keys, scoped under "solver." rather than
// "ml." or "data." since they describe the trust-region iteration itself
// rather than the model or the dataset.
const (
	// LambdaKey is the current Levenberg-Marquardt damping parameter.
	LambdaKey = "solver.lambda"

	// StepBoundKey is the current trust-region step bound (delta).
	StepBoundKey = "solver.step_bound"

	// ChiSquareKey is the current chi-square (or Poisson deviance) objective value.
	ChiSquareKey = "solver.chi_square"

	// ApproximationRatioKey is the ratio of actual to predicted reduction in
	// chi-square that drives step-bound updates.
	ApproximationRatioKey = "solver.approximation_ratio"

	// StateKey names the solver's terminal state when a fit ends.
	StateKey = "solver.state"

	// AcceptedKey is true when an iteration's step was accepted.
	AcceptedKey = "solver.step_accepted"
)
