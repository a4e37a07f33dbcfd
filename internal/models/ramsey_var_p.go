package models

import "math"

// ramseyVarP is the Ramsey T2* decay model used to fit variable-power
// stretched-exponential dephasing curves:
//
//	y = exp(-(x/t2star)^p) * (A1*cos(2*pi*f1*(x-x1)) + A2*cos(2*pi*f2*(x-x2))) + c
//
// Parameters, in order: [A1 A2 c f1 f2 p t2star x1 x2].
type ramseyVarP struct{}

func (ramseyVarP) NParameters() int { return 9 }

// logEpsilon guards the log(x/t2star) term in the derivative with respect
// to p against a zero argument when x lands exactly at the origin.
const logEpsilon = 0.000001

func (ramseyVarP) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	a1, a2, c, f1, f2, p, t2star, x1, x2 := params[0], params[1], params[2], params[3], params[4], params[5], params[6], params[7], params[8]

	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		t2arg := math.Pow(float64(x/t2star), float64(p))
		ex := float32(math.Exp(-t2arg))
		phase1 := 2 * pi * f1 * (x - x1)
		phase2 := 2 * pi * f2 * (x - x2)
		cos1 := float32(math.Cos(float64(phase1)))
		cos2 := float32(math.Cos(float64(phase2)))

		curve[i] = ex*(a1*cos1+a2*cos2) + c
	}
}

func (ramseyVarP) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	a1, a2, f1, f2, p, t2star, x1, x2 := params[0], params[1], params[3], params[4], params[5], params[6], params[7], params[8]

	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		t2arg := math.Pow(float64(x/t2star), float64(p))
		ex := float32(math.Exp(-t2arg))
		phase1 := 2 * pi * f1 * (x - x1)
		phase2 := 2 * pi * f2 * (x - x2)
		cos1 := float32(math.Cos(float64(phase1)))
		sin1 := float32(math.Sin(float64(phase1)))
		cos2 := float32(math.Cos(float64(phase2)))
		sin2 := float32(math.Sin(float64(phase2)))

		derivatives[0*nPoints+i] = ex * cos1
		derivatives[1*nPoints+i] = ex * cos2
		derivatives[2*nPoints+i] = 1
		derivatives[3*nPoints+i] = -a1 * 2 * pi * (x - x1) * ex * sin1
		derivatives[4*nPoints+i] = -a2 * 2 * pi * (x - x2) * ex * sin2
		derivatives[5*nPoints+i] = -float32(math.Log(float64(x/t2star)+logEpsilon)) * ex * float32(t2arg) * (a1*cos1 + a2*cos2)
		derivatives[6*nPoints+i] = p / (t2star * t2star) * x * ex * float32(math.Pow(float64(x/t2star), float64(p)-1)) * (a1*cos1 + a2*cos2)
		derivatives[7*nPoints+i] = a1 * 2 * pi * f1 * sin1 * ex
		derivatives[8*nPoints+i] = a2 * 2 * pi * f2 * sin2 * ex
	}
}
