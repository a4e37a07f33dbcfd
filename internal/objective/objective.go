// Package objective assembles the chi-square, gradient, and Gauss-Newton
// Hessian approximation the solver needs at every iteration, for both
// supported estimators: weighted least squares (LSE) and Poisson maximum
// likelihood (MLE).
//
// Every function here is a pure reduction over already-evaluated model
// output; none of them call into internal/models. Every accumulating loop
// sums in float64 and stores the float32 result, matching the rest of the
// module's numerical contract.
package objective

import (
	"math"

	"github.com/lmfit-go/lmfit/internal/linalg"
	lmerrors "github.com/lmfit-go/lmfit/pkg/errors"
)

// Estimator selects the statistical objective the solver minimizes.
type Estimator int

const (
	// LSE is ordinary (optionally weighted) least squares.
	LSE Estimator = iota
	// MLE is Poisson maximum likelihood, expressed as the Poisson deviance
	// so it behaves like a chi-square under the same driver.
	MLE
)

func (e Estimator) String() string {
	if e == MLE {
		return "mle"
	}
	return "lse"
}

// ErrNegCurvatureMLE is returned by ChiSquare when a model curve value is
// non-positive under the MLE objective, where log(curve) is undefined.
// The solver treats this as a terminal NegCurvatureMLE state.
var ErrNegCurvatureMLE = lmerrors.New("lmfit: curve value is non-positive under the MLE objective")

// ChiSquare reduces curve against data into a single goodness-of-fit
// value. weights may be nil, meaning unweighted. Under MLE, a non-positive
// curve value is unrecoverable and reported as ErrNegCurvatureMLE: the
// caller is expected to transition the solver into NegCurvatureMLE and
// stop rather than keep iterating on an undefined objective.
func ChiSquare(estimator Estimator, curve, data, weights []float32) (float32, error) {
	var sum float64
	for i := range curve {
		deviant := curve[i] - data[i]

		switch estimator {
		case LSE:
			sq := float64(deviant) * float64(deviant)
			if weights != nil {
				sq *= float64(weights[i])
			}
			sum += sq
		case MLE:
			if curve[i] <= 0 {
				return 0, ErrNegCurvatureMLE
			}
			if data[i] != 0 {
				sum += 2 * (float64(deviant) - float64(data[i])*math.Log(float64(curve[i])/float64(data[i])))
			} else {
				sum += 2 * float64(deviant)
			}
		}
	}
	return float32(sum), nil
}

// Gradient computes minus one half of the objective's gradient (under LSE,
// the sum of w*(data-curve)*dcurve/dp) with respect to the free
// (fitMask[i] == true) parameters only. derivatives is parameter-major,
// length nParameters*nPoints, exactly as produced by a models.Model. The
// returned slice has one entry per free parameter, in ascending parameter
// order.
func Gradient(estimator Estimator, derivatives []float32, nPoints int, curve, data, weights []float32, fitMask []bool) []float32 {
	gradient := make([]float32, countFree(fitMask))

	free := 0
	for p, fit := range fitMask {
		if !fit {
			continue
		}
		base := p * nPoints
		var sum float64
		for i := 0; i < nPoints; i++ {
			switch estimator {
			case LSE:
				deviant := float64(data[i]) - float64(curve[i])
				term := deviant * float64(derivatives[base+i])
				if weights != nil {
					term *= float64(weights[i])
				}
				sum += term
			case MLE:
				sum += -float64(derivatives[base+i]) * (1 - float64(data[i])/float64(curve[i]))
			}
		}
		gradient[free] = float32(sum)
		free++
	}
	return gradient
}

// Hessian computes the Gauss-Newton approximate Hessian with respect to
// the free parameters into hessian, which must already be sized to
// countFree(fitMask) x countFree(fitMask). Only the upper triangle (row <=
// column) is summed; it is then mirrored into the lower triangle, matching the
// symmetric structure the trust-region controller and LUP solver expect.
func Hessian(estimator Estimator, derivatives []float32, nPoints int, curve, data, weights []float32, fitMask []bool, hessian *linalg.Matrix) {
	jFree := 0
	for jp, jFit := range fitMask {
		if !jFit {
			continue
		}
		iFree := 0
		for ip := 0; ip <= jp; ip++ {
			if !fitMask[ip] {
				continue
			}
			baseI := ip * nPoints
			baseJ := jp * nPoints

			var sum float64
			for i := 0; i < nPoints; i++ {
				switch estimator {
				case LSE:
					term := float64(derivatives[baseI+i]) * float64(derivatives[baseJ+i])
					if weights != nil {
						term *= float64(weights[i])
					}
					sum += term
				case MLE:
					sum += float64(data[i]) / (float64(curve[i]) * float64(curve[i])) *
						float64(derivatives[baseI+i]) * float64(derivatives[baseJ+i])
				}
			}

			hessian.Set(iFree, jFree, float32(sum))
			if iFree != jFree {
				hessian.Set(jFree, iFree, float32(sum))
			}
			iFree++
		}
		jFree++
	}
}

// CountFree returns the number of true entries in fitMask, the number of
// parameters actually being optimized.
func CountFree(fitMask []bool) int { return countFree(fitMask) }

func countFree(fitMask []bool) int {
	n := 0
	for _, fit := range fitMask {
		if fit {
			n++
		}
	}
	return n
}
