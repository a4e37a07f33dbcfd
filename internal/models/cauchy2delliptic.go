package models

// cauchy2DElliptic is a 2D Cauchy (Lorentzian) peak with independent x/y
// widths: z = p0 / (argx*argy) + p5, where argx/argy are the normalized
// squared offsets plus one.
type cauchy2DElliptic struct{}

func (cauchy2DElliptic) NParameters() int { return 6 }

func (cauchy2DElliptic) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		argx := (params[1]-x)/params[3]*((params[1]-x)/params[3]) + 1
		argy := (params[2]-y)/params[4]*((params[2]-y)/params[4]) + 1
		curve[i] = params[0]/(argx*argy) + params[5]
	}
}

func (cauchy2DElliptic) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	for i := 0; i < nPoints; i++ {
		x, y := resolveXY(nPoints, i)
		argx := (params[1]-x)/params[3]*((params[1]-x)/params[3]) + 1
		argy := (params[2]-y)/params[4]*((params[2]-y)/params[4]) + 1

		derivatives[0*nPoints+i] = 1 / (argx * argy)
		derivatives[1*nPoints+i] = -2 * params[0] * (params[1] - x) / (params[3] * params[3] * argx * argx * argy)
		derivatives[2*nPoints+i] = -2 * params[0] * (params[2] - y) / (params[4] * params[4] * argy * argy * argx)
		derivatives[3*nPoints+i] = 2 * params[0] * (params[1] - x) * (params[1] - x) / (params[3] * params[3] * params[3] * argx * argx * argy)
		derivatives[4*nPoints+i] = 2 * params[0] * (params[2] - y) * (params[2] - y) / (params[4] * params[4] * params[4] * argy * argy * argx)
		derivatives[5*nPoints+i] = 1
	}
}
