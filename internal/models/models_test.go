package models

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float32) bool {
	d := a - b
	return d <= tol && d >= -tol
}

func TestLinear1D(t *testing.T) {
	m := Lookup(Linear1D)
	if m.NParameters() != 2 {
		t.Fatalf("NParameters() = %d, want 2", m.NParameters())
	}

	params := []float32{2, 3}
	nPoints := 5
	curve := make([]float32, nPoints)
	m.Evaluate(params, nPoints, nil, 0, curve)

	for i := 0; i < nPoints; i++ {
		want := float32(2 + 3*i)
		if !approxEqual(curve[i], want, 1e-5) {
			t.Errorf("curve[%d] = %v, want %v", i, curve[i], want)
		}
	}

	derivatives := make([]float32, 2*nPoints)
	m.Derivatives(params, nPoints, nil, 0, derivatives)
	for i := 0; i < nPoints; i++ {
		if derivatives[0*nPoints+i] != 1 {
			t.Errorf("d/dp0[%d] = %v, want 1", i, derivatives[0*nPoints+i])
		}
		if derivatives[1*nPoints+i] != float32(i) {
			t.Errorf("d/dp1[%d] = %v, want %v", i, derivatives[1*nPoints+i], float32(i))
		}
	}
}

func TestLinear1DUserInfo(t *testing.T) {
	m := Lookup(Linear1D)
	params := []float32{0, 1}
	nPoints := 3
	userInfo := []float32{10, 20, 30}
	curve := make([]float32, nPoints)
	m.Evaluate(params, nPoints, userInfo, 0, curve)

	want := []float32{10, 20, 30}
	for i, v := range want {
		if curve[i] != v {
			t.Errorf("curve[%d] = %v, want %v", i, curve[i], v)
		}
	}
}

func TestGauss1D(t *testing.T) {
	m := Lookup(Gauss1D)
	if m.NParameters() != 4 {
		t.Fatalf("NParameters() = %d, want 4", m.NParameters())
	}

	params := []float32{5, 2, 1, 0.5}
	nPoints := 1
	curve := make([]float32, nPoints)
	m.Evaluate(params, nPoints, []float32{2}, 0, curve)

	// At the peak center, the Gaussian term is exp(0) = 1.
	want := params[0] + params[3]
	if !approxEqual(curve[0], want, 1e-4) {
		t.Errorf("curve[0] = %v, want %v", curve[0], want)
	}

	derivatives := make([]float32, 4*nPoints)
	m.Derivatives(params, nPoints, []float32{2}, 0, derivatives)
	if !approxEqual(derivatives[0], 1, 1e-4) {
		t.Errorf("d/dA = %v, want 1 at the peak", derivatives[0])
	}
	if !approxEqual(derivatives[1], 0, 1e-4) {
		t.Errorf("d/dx0 = %v, want 0 at the peak", derivatives[1])
	}
	if derivatives[3] != 1 {
		t.Errorf("d/dbackground = %v, want 1", derivatives[3])
	}
}

func TestGauss2DGridIndexing(t *testing.T) {
	m := Lookup(Gauss2D)
	nPoints := 9 // 3x3 grid
	params := []float32{1, 1, 1, 1, 0}
	curve := make([]float32, nPoints)
	m.Evaluate(params, nPoints, nil, 0, curve)

	// sample index 4 = iy*3+ix = 1*3+1 -> (x,y) = (1,1), exactly the peak center.
	want := params[0] + params[4]
	if !approxEqual(curve[4], want, 1e-4) {
		t.Errorf("curve[4] (peak) = %v, want %v", curve[4], want)
	}
}

func TestFletcherPowellHelixFixedSize(t *testing.T) {
	m := Lookup(FletcherPowellHelix)
	if m.NParameters() != 3 {
		t.Fatalf("NParameters() = %d, want 3", m.NParameters())
	}

	params := []float32{1, 0, 0}
	curve := make([]float32, 3)
	m.Evaluate(params, 3, nil, 0, curve)

	if !approxEqual(curve[1], 0, 1e-4) {
		t.Errorf("curve[1] (radius residual) = %v, want 0 at the unit circle", curve[1])
	}
	if curve[2] != 0 {
		t.Errorf("curve[2] = %v, want p2 = 0", curve[2])
	}
}

func TestBrownDennisZeroResidual(t *testing.T) {
	m := Lookup(BrownDennis)
	nPoints := 1
	params := []float32{float32(math.Exp(0)), 0, 1, 0}
	curve := make([]float32, nPoints)
	m.Evaluate(params, nPoints, nil, 0, curve)

	// At point_index 0, t=0: arg1 = p0 - exp(0) = 0, arg2 = p2 - cos(0) = 0.
	if !approxEqual(curve[0], 0, 1e-4) {
		t.Errorf("curve[0] = %v, want 0", curve[0])
	}
}

func TestLookupUnknown(t *testing.T) {
	if Lookup(ID(999)) != nil {
		t.Error("Lookup of an unknown ID should return nil")
	}
}
