package models

import "math"

// gauss2DRotated is an elliptic 2D Gaussian whose major axis is rotated
// by angle p6 about (p1, p2):
// z = p0 * exp(-0.5*((a/p3)^2 + (b/p4)^2)) + p5, where a, b are the
// sample offset rotated into the ellipse's own frame.
type gauss2DRotated struct{}

func (gauss2DRotated) NParameters() int { return 7 }

func (gauss2DRotated) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	amplitude, x0, y0, sigX, sigY, background := params[0], params[1], params[2], params[3], params[4], params[5]
	rotSin := float32(math.Sin(float64(params[6])))
	rotCos := float32(math.Cos(float64(params[6])))

	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		arga := (x-x0)*rotCos - (y-y0)*rotSin
		argb := (x-x0)*rotSin + (y-y0)*rotCos
		ex := float32(math.Exp(-0.5 * float64((arga/sigX)*(arga/sigX)+(argb/sigY)*(argb/sigY))))
		curve[i] = amplitude*ex + background
	}
}

func (gauss2DRotated) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	amplitude, x0, y0, sigX, sigY := params[0], params[1], params[2], params[3], params[4]
	rotSin := float32(math.Sin(float64(params[6])))
	rotCos := float32(math.Cos(float64(params[6])))

	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		arga := (x-x0)*rotCos - (y-y0)*rotSin
		argb := (x-x0)*rotSin + (y-y0)*rotCos
		ex := float32(math.Exp(-0.5 * float64((arga/sigX)*(arga/sigX)+(argb/sigY)*(argb/sigY))))

		derivatives[0*nPoints+i] = ex
		derivatives[1*nPoints+i] = ex * (amplitude*rotCos*arga/(sigX*sigX) + amplitude*rotSin*argb/(sigY*sigY))
		derivatives[2*nPoints+i] = ex * (-amplitude*rotSin*arga/(sigX*sigX) + amplitude*rotCos*argb/(sigY*sigY))
		derivatives[3*nPoints+i] = ex * amplitude * arga * arga / (sigX * sigX * sigX)
		derivatives[4*nPoints+i] = ex * amplitude * argb * argb / (sigY * sigY * sigY)
		derivatives[5*nPoints+i] = 1
		derivatives[6*nPoints+i] = ex * amplitude * arga * argb * (1/(sigX*sigX) - 1/(sigY*sigY))
	}
}
