// Package models implements the evaluate/derivatives pair for each
// supported curve-fitting model: the fixed catalog of parameter layouts
// and analytic Jacobians the solver dispatches to by model identifier.
//
// Every model receives the same three things: the current parameter
// vector, the sample count, and an opaque user_info buffer it may
// interpret as independent-variable coordinates. Nothing here knows about
// chi-square, gradients, or Hessians — that's internal/objective's job.
package models

import "math"

// ID names one of the nine supported models.
type ID int

const (
	Gauss1D ID = iota
	Gauss2D
	Gauss2DElliptic
	Gauss2DRotated
	Cauchy2DElliptic
	Linear1D
	FletcherPowellHelix
	BrownDennis
	RamseyVarP
)

func (id ID) String() string {
	switch id {
	case Gauss1D:
		return "gauss1d"
	case Gauss2D:
		return "gauss2d"
	case Gauss2DElliptic:
		return "gauss2d_elliptic"
	case Gauss2DRotated:
		return "gauss2d_rotated"
	case Cauchy2DElliptic:
		return "cauchy2d_elliptic"
	case Linear1D:
		return "linear1d"
	case FletcherPowellHelix:
		return "fletcher_powell_helix"
	case BrownDennis:
		return "brown_dennis"
	case RamseyVarP:
		return "ramsey_var_p"
	default:
		return "unknown"
	}
}

// Model evaluates a curve and its analytic Jacobian at a fixed parameter
// vector. Implementations are pure functions of their arguments: no
// internal state survives between calls.
type Model interface {
	// NParameters returns the model's total parameter count.
	NParameters() int

	// Evaluate fills curve (length nPoints) with the model's value at
	// each sample point.
	Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32)

	// Derivatives fills derivatives (length NParameters()*nPoints,
	// parameter-major: row p occupies derivatives[p*nPoints : (p+1)*nPoints])
	// with the analytic partial derivative of the model with respect to
	// every parameter, at every sample point.
	Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32)
}

// Lookup returns the Model implementation for id.
func Lookup(id ID) Model {
	switch id {
	case Gauss1D:
		return gauss1D{}
	case Gauss2D:
		return gauss2D{}
	case Gauss2DElliptic:
		return gauss2DElliptic{}
	case Gauss2DRotated:
		return gauss2DRotated{}
	case Cauchy2DElliptic:
		return cauchy2DElliptic{}
	case Linear1D:
		return linear1D{}
	case FletcherPowellHelix:
		return fletcherPowellHelix{}
	case BrownDennis:
		return brownDennis{}
	case RamseyVarP:
		return ramseyVarP{}
	default:
		return nil
	}
}

// resolveX resolves the 1D independent-variable coordinate for pointIndex,
// per the user_info interpretation rule shared by every 1D model: absent
// user_info means the coordinate is the point index itself; a user_info
// exactly nPoints long is indexed directly; a longer one is interpreted as
// a flattened (fit_index, point_index) array from a batched caller.
func resolveX(userInfo []float32, nPoints, fitIndex, pointIndex int) float32 {
	switch {
	case len(userInfo) == 0:
		return float32(pointIndex)
	case len(userInfo) == nPoints:
		return userInfo[pointIndex]
	default:
		return userInfo[fitIndex*nPoints+pointIndex]
	}
}

// gridSize returns the side length S of the S x S grid a 2D model's
// sample points are assumed to tile, S = floor(sqrt(nPoints)).
func gridSize(nPoints int) int {
	return int(math.Sqrt(float64(nPoints)))
}

// resolveXY resolves the (x, y) grid coordinate for pointIndex on the
// S x S grid implied by nPoints, where the flattened sample index is
// iy*S + ix.
func resolveXY(nPoints, pointIndex int) (x, y float32) {
	s := gridSize(nPoints)
	ix := pointIndex % s
	iy := pointIndex / s
	return float32(ix), float32(iy)
}

const pi = math.Pi
