package models

import "math"

// fletcherPowellHelix is the classic Fletcher-Powell helical valley test
// function: a fixed 3-residual synthetic problem used to exercise the
// solver on a genuinely nonlinear, non-curve-fit objective. It ignores
// the sample index entirely — it always produces exactly 3 residuals
// regardless of nPoints.
type fletcherPowellHelix struct{}

func (fletcherPowellHelix) NParameters() int { return 3 }

func (fletcherPowellHelix) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	p0, p1, p2 := params[0], params[1], params[2]

	var theta float32
	switch {
	case p0 > 0:
		theta = 0.5 * float32(math.Atan(float64(p1/p0))) / pi
	case p0 < 0:
		theta = 0.5*float32(math.Atan(float64(p1/p0)))/pi + 0.5
	case p1 > 0:
		theta = 0.25
	case p1 < 0:
		theta = -0.25
	default:
		theta = 0
	}

	curve[0] = 10 * (p2 - 10*theta)
	curve[1] = 10 * (float32(math.Sqrt(float64(p0*p0+p1*p1))) - 1)
	curve[2] = p2
}

func (fletcherPowellHelix) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	p0, p1 := params[0], params[1]
	arg := p0*p0 + p1*p1
	sqrtArg := float32(math.Sqrt(float64(arg)))

	derivatives[0*nPoints+0] = 100 / (2 * pi) * p1 / arg
	derivatives[0*nPoints+1] = 10 * p0 / sqrtArg
	derivatives[0*nPoints+2] = 0

	derivatives[1*nPoints+0] = -100 / (2 * pi) * p0 / arg
	derivatives[1*nPoints+1] = 10 * p1 / sqrtArg
	derivatives[1*nPoints+2] = 0

	derivatives[2*nPoints+0] = 10
	derivatives[2*nPoints+1] = 0
	derivatives[2*nPoints+2] = 1
}
