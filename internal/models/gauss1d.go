package models

import "math"

// gauss1D is a 1D Gaussian peak with a constant background:
// y = p0 * exp(-(x-p1)^2 / (2*p2^2)) + p3.
type gauss1D struct{}

func (gauss1D) NParameters() int { return 4 }

func (gauss1D) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		argx := (x - params[1]) * (x - params[1]) / (2 * params[2] * params[2])
		ex := float32(math.Exp(-float64(argx)))
		curve[i] = params[0]*ex + params[3]
	}
}

func (gauss1D) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		argx := (x - params[1]) * (x - params[1]) / (2 * params[2] * params[2])
		ex := float32(math.Exp(-float64(argx)))

		derivatives[0*nPoints+i] = ex
		derivatives[1*nPoints+i] = params[0] * (x - params[1]) * ex / (params[2] * params[2])
		derivatives[2*nPoints+i] = params[0] * (x - params[1]) * (x - params[1]) * ex / (params[2] * params[2] * params[2])
		derivatives[3*nPoints+i] = 1
	}
}
