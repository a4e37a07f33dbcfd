package models

import "math"

// gauss2D is a circular 2D Gaussian on the S x S sample grid:
// z = p0 * exp(-((x-p1)^2 + (y-p2)^2) / (2*p3^2)) + p4.
type gauss2D struct{}

func (gauss2D) NParameters() int { return 5 }

func (gauss2D) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		argx := (x - params[1]) * (x - params[1]) / (2 * params[3] * params[3])
		argy := (y - params[2]) * (y - params[2]) / (2 * params[3] * params[3])
		ex := float32(math.Exp(-float64(argx + argy)))
		curve[i] = params[0]*ex + params[4]
	}
}

func (gauss2D) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		argx := (x - params[1]) * (x - params[1]) / (2 * params[3] * params[3])
		argy := (y - params[2]) * (y - params[2]) / (2 * params[3] * params[3])
		ex := float32(math.Exp(-float64(argx + argy)))

		derivatives[0*nPoints+i] = ex
		derivatives[1*nPoints+i] = params[0] * ex * (x - params[1]) / (params[3] * params[3])
		derivatives[2*nPoints+i] = params[0] * ex * (y - params[2]) / (params[3] * params[3])
		derivatives[3*nPoints+i] = ex * params[0] * ((x-params[1])*(x-params[1])+(y-params[2])*(y-params[2])) / (params[3] * params[3] * params[3])
		derivatives[4*nPoints+i] = 1
	}
}
