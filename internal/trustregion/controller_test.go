package trustregion

import (
	"testing"

	"github.com/lmfit-go/lmfit/internal/linalg"
)

func TestModifyStepWidthAdvancesScaling(t *testing.T) {
	c := NewController(2)
	c.Lambda = 2

	hessian := &linalg.Matrix{N: 2, Data: []float32{4, 1, 1, 9}}
	modified := linalg.NewMatrix(2)

	c.ModifyStepWidth(hessian, modified)

	if c.ScalingVector[0] != 4 || c.ScalingVector[1] != 9 {
		t.Fatalf("ScalingVector = %v, want [4 9]", c.ScalingVector)
	}
	if modified.At(0, 0) != 4+4*2 {
		t.Errorf("modified[0][0] = %v, want %v", modified.At(0, 0), 4+4*2)
	}
	if modified.At(1, 1) != 9+9*2 {
		t.Errorf("modified[1][1] = %v, want %v", modified.At(1, 1), 9+9*2)
	}
	if modified.At(0, 1) != 1 || modified.At(1, 0) != 1 {
		t.Errorf("off-diagonal entries should be copied unchanged, got %v %v", modified.At(0, 1), modified.At(1, 0))
	}
}

func TestScalingVectorNonDecreasing(t *testing.T) {
	c := NewController(1)
	h1 := &linalg.Matrix{N: 1, Data: []float32{5}}
	h2 := &linalg.Matrix{N: 1, Data: []float32{3}}
	m := linalg.NewMatrix(1)

	c.ModifyStepWidth(h1, m)
	if c.ScalingVector[0] != 5 {
		t.Fatalf("after first update, scaling = %v, want 5", c.ScalingVector[0])
	}

	c.ModifyStepWidth(h2, m)
	if c.ScalingVector[0] != 5 {
		t.Errorf("scaling regressed to %v after a smaller Hessian diagonal, want it to stay 5", c.ScalingVector[0])
	}
}

func TestInitializeStepBoundZeroParameters(t *testing.T) {
	c := NewController(2)
	c.ScalingVector = []float32{1, 1}
	c.InitializeStepBound([]float32{0, 0})

	if c.StepBound != 100 {
		t.Errorf("StepBound = %v, want 100 for an all-zero parameter vector", c.StepBound)
	}
}

func TestInitializeStepBoundNonZero(t *testing.T) {
	c := NewController(1)
	c.ScalingVector = []float32{4}
	c.InitializeStepBound([]float32{3})

	// sqrt(4)*3 = 6, * 100 = 600.
	if c.StepBound != 600 {
		t.Errorf("StepBound = %v, want 600", c.StepBound)
	}
}

func TestNeedsLambdaSearch(t *testing.T) {
	c := NewController(1)
	c.StepBound = 10
	c.Phi = 2
	if !c.NeedsLambdaSearch() {
		t.Error("NeedsLambdaSearch() = false, want true when phi > 0.1*stepBound")
	}

	c.Phi = 0.5
	if c.NeedsLambdaSearch() {
		t.Error("NeedsLambdaSearch() = true, want false when phi <= 0.1*stepBound")
	}
}

func TestUpdateStepBoundHighRatioHalvesLambda(t *testing.T) {
	c := NewController(1)
	c.ScalingVector = []float32{1}
	c.Lambda = 4
	q := ApproximationQuality{ApproximationRatio: 0.9}

	c.UpdateStepBound(q, []float32{1}, 1, 1)

	if c.Lambda != 2 {
		t.Errorf("Lambda = %v, want 2 after a high approximation ratio halves it", c.Lambda)
	}
}
