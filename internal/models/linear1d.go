package models

// linear1D is a straight line: y = p0 + p1*x. It exists mainly as the
// simplest possible smoke test for the solver — two parameters, a
// perfectly linear Jacobian, exact convergence in one Gauss-Newton step
// for noiseless data.
type linear1D struct{}

func (linear1D) NParameters() int { return 2 }

func (linear1D) Evaluate(params []float32, nPoints int, userInfo []float32, fitIndex int, curve []float32) {
	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		curve[i] = params[0] + params[1]*x
	}
}

func (linear1D) Derivatives(params []float32, nPoints int, userInfo []float32, fitIndex int, derivatives []float32) {
	for i := 0; i < nPoints; i++ {
		x := resolveX(userInfo, nPoints, fitIndex, i)
		derivatives[0*nPoints+i] = 1
		derivatives[1*nPoints+i] = x
	}
}
