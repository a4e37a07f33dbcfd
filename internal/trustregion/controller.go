// Package trustregion implements the Moré-style trust-region damping
// controller the solver drives each outer iteration: a trust-region
// radius (step bound), a Levenberg-Marquardt damping parameter λ with
// bracketing bounds, and an adaptive diagonal scaling vector, tied
// together by a one-dimensional secant-like search over λ that satisfies
// a constraint on the scaled step norm.
//
// Everything here operates purely on the K free-parameter dimension; the
// caller is responsible for projecting full-parameter quantities (like
// the Jacobian) down to their free rows before calling in.
package trustregion

import (
	"math"

	"github.com/lmfit-go/lmfit/internal/linalg"
)

// maxLambdaRefinements bounds the secant-like λ sub-iteration, matching
// the solver's fixed iteration cap per outer step.
const maxLambdaRefinements = 10

// Controller holds the mutable damping state for one solver instance. It
// is not safe for concurrent use; each fit owns exactly one Controller for
// its entire lifetime.
type Controller struct {
	Lambda           float32
	LambdaLowerBound float32
	LambdaUpperBound float32
	StepBound        float32
	Phi              float32
	PhiDerivative    float32

	// ScalingVector is the adaptive diagonal D, length K. It is
	// monotonically non-decreasing coordinate-wise across the life of a
	// fit.
	ScalingVector []float32
}

// NewController allocates a Controller for k free parameters, with a zero
// scaling vector and λ = 0, matching the solver's initial state.
func NewController(k int) *Controller {
	return &Controller{ScalingVector: make([]float32, k)}
}

// ModifyStepWidth copies hessian into modified and adds λ·D to its
// diagonal, first advancing D coordinate-wise to stay at least as large
// as the current Hessian diagonal entries.
func (c *Controller) ModifyStepWidth(hessian, modified *linalg.Matrix) {
	modified.CopyFrom(hessian)
	n := hessian.N
	for i := 0; i < n; i++ {
		diag := hessian.At(i, i)
		if diag > c.ScalingVector[i] {
			c.ScalingVector[i] = diag
		}
		modified.Set(i, i, modified.At(i, i)+c.ScalingVector[i]*c.Lambda)
	}
}

func sqrtScale(scale float32) float32 {
	return float32(math.Sqrt(float64(scale)))
}

func scaledVector(scalingVector, v []float32, sqrtScale bool) []float32 {
	out := make([]float32, len(v))
	for i := range v {
		s := scalingVector[i]
		if sqrtScale {
			s = float32(math.Sqrt(float64(s)))
		}
		out[i] = s * v[i]
	}
	return out
}

// InitializeStepBound sets the trust-region radius from the initial
// (free-parameter) parameter vector: Δ = 100·‖D^(1/2) p‖, or 100 if that
// norm is zero. Called once, on the first outer iteration only.
func (c *Controller) InitializeStepBound(freeParameters []float32) {
	scaled := scaledVector(c.ScalingVector, freeParameters, true)
	norm := linalg.Norm(scaled)

	c.StepBound = 100 * norm
	if c.StepBound == 0 {
		c.StepBound = 100
	}
}

// CalcPhi computes φ = ‖D^(1/2) Δp‖ − Δ and its derivative
// φ' = (s · (H⁻¹ D Δp)) / ‖s‖, where s = D^(1/2) Δp. invertedHessian must
// be the inverse of the (possibly λ-modified) Hessian used to produce
// delta.
func (c *Controller) CalcPhi(delta []float32, invertedHessian *linalg.Matrix) {
	s := scaledVector(c.ScalingVector, delta, true)
	norm := linalg.Norm(s)
	c.Phi = norm - c.StepBound

	weighted := scaledVector(c.ScalingVector, delta, false)
	temp := make([]float32, len(weighted))
	linalg.MatVec(invertedHessian, weighted, temp)

	c.PhiDerivative = linalg.Dot(temp, weighted) / norm
}

// RenormalizePhiDerivative rescales φ' by Δ/‖s‖ where s = D^(1/2) Δp, a
// normalization Moré's formulation applies once, between the first φ
// computation and the λ sub-iteration. It recomputes ‖s‖ independently
// rather than reusing CalcPhi's value, matching the solver's own
// structure.
func (c *Controller) RenormalizePhiDerivative(delta []float32) {
	s := scaledVector(c.ScalingVector, delta, true)
	norm := linalg.Norm(s)
	c.PhiDerivative *= c.StepBound / norm
}

// NeedsLambdaSearch reports whether φ exceeds the 0.1Δ tolerance that
// triggers the λ bracket search, per the outer driver's branch at step
// (e)/(f) of the iteration.
func (c *Controller) NeedsLambdaSearch() bool {
	return c.Phi > 0.1*c.StepBound
}

// SatisfiesLambdaTolerance reports whether the current φ is within the
// 0.1Δ band the sub-iteration loop searches for.
func (c *Controller) SatisfiesLambdaTolerance() bool {
	abs := c.Phi
	if abs < 0 {
		abs = -abs
	}
	return abs <= 0.1*c.StepBound
}

// InitializeLambdaBounds seeds λ's bracket from the gradient and current
// delta, ahead of the sub-iteration search.
func (c *Controller) InitializeLambdaBounds(gradient, delta []float32) {
	scaledDelta := scaledVector(c.ScalingVector, delta, true)
	scaledDeltaNorm := linalg.Norm(scaledDelta)

	c.LambdaLowerBound = c.Phi / c.PhiDerivative

	temp := make([]float32, len(gradient))
	for i := range temp {
		temp[i] = gradient[i] / sqrtScale(c.ScalingVector[i])
	}
	gradientNorm := linalg.Norm(temp)

	c.LambdaUpperBound = gradientNorm / c.StepBound

	if c.Lambda < c.LambdaLowerBound {
		c.Lambda = c.LambdaLowerBound
	}
	if c.Lambda > c.LambdaUpperBound {
		c.Lambda = c.LambdaUpperBound
	}

	if c.Lambda == 0 {
		c.Lambda = gradientNorm / scaledDeltaNorm
	}
}

// UpdateLambda performs one secant-like refinement step of the λ
// sub-iteration: tighten whichever bound the sign of φ implicates, step λ
// by the secant estimate, then clamp to the lower bound.
func (c *Controller) UpdateLambda() {
	if c.Phi > 0 {
		if c.Lambda > c.LambdaLowerBound {
			c.LambdaLowerBound = c.Lambda
		}
	}
	if c.Phi < 0 {
		if c.Lambda < c.LambdaUpperBound {
			c.LambdaUpperBound = c.Lambda
		}
	}

	c.Lambda += (c.Phi + c.StepBound) / c.StepBound * c.Phi / c.PhiDerivative

	if c.Lambda < c.LambdaLowerBound {
		c.Lambda = c.LambdaLowerBound
	}
}

// MaxLambdaRefinements exposes the fixed sub-iteration cap for callers
// driving the loop themselves.
func MaxLambdaRefinements() int { return maxLambdaRefinements }

// ApproximationQuality bundles the scalars the step-bound update depends
// on. The accept/reject decision uses only the chi-square values.
type ApproximationQuality struct {
	PredictedReduction  float32
	DirectiveDerivative float32
	ActualReduction     float32
	ApproximationRatio  float32
}

// CalcApproximationQuality measures how well the linearized model
// predicted the actual chi-square change. jacobianDelta is
// temp_derivatives (the Jacobian at the last accepted iterate), projected
// through delta into sample space — i.e. J_prev·Δp, length nPoints.
func (c *Controller) CalcApproximationQuality(jacobianDelta, delta []float32, chiSquare, prevChiSquare float32) ApproximationQuality {
	jacobianDeltaNorm := linalg.Norm(jacobianDelta)

	scaledDelta := scaledVector(c.ScalingVector, delta, true)
	scaledDeltaNorm := linalg.Norm(scaledDelta)

	summand1 := jacobianDeltaNorm * jacobianDeltaNorm / prevChiSquare
	summand2 := 2 * c.Lambda * scaledDeltaNorm * scaledDeltaNorm / prevChiSquare

	q := ApproximationQuality{
		PredictedReduction:  summand1 + summand2,
		DirectiveDerivative: -summand1 - summand2/2,
		ActualReduction:     -1,
	}

	if 0.1*float32(math.Sqrt(float64(chiSquare))) < float32(math.Sqrt(float64(prevChiSquare))) {
		q.ActualReduction = 1 - chiSquare/prevChiSquare
	}

	q.ApproximationRatio = q.ActualReduction / q.PredictedReduction
	return q
}

// UpdateStepBound adjusts Δ and λ from the approximation ratio, per
// Moré's trust-region update rule.
func (c *Controller) UpdateStepBound(q ApproximationQuality, delta []float32, chiSquare, prevChiSquare float32) {
	scaledDelta := scaledVector(c.ScalingVector, delta, true)
	scaledDeltaNorm := linalg.Norm(scaledDelta)

	switch {
	case q.ApproximationRatio <= 0.25:
		var temp float32
		if q.ActualReduction >= 0 {
			temp = 0.5
		} else {
			temp = 0.5 * q.DirectiveDerivative / (q.DirectiveDerivative + 0.5*q.ActualReduction)
		}

		if 0.1*float32(math.Sqrt(float64(chiSquare))) >= float32(math.Sqrt(float64(prevChiSquare))) || temp < 0.1 {
			temp = 0.1
		}

		bound := scaledDeltaNorm / 0.1
		if c.StepBound < bound {
			bound = c.StepBound
		}
		c.StepBound = temp * bound
		c.Lambda /= temp

	case c.Lambda == 0 || q.ApproximationRatio >= 0.75:
		c.StepBound = scaledDeltaNorm / 0.5
		c.Lambda *= 0.5
	}
}
