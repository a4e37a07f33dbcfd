package objective

import (
	"testing"

	"github.com/lmfit-go/lmfit/internal/linalg"
)

func TestChiSquareLSEUnweighted(t *testing.T) {
	curve := []float32{1, 2, 3}
	data := []float32{1, 2, 4}

	got, err := ChiSquare(LSE, curve, data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// only the third point deviates, by -1, squared is 1.
	if got != 1 {
		t.Errorf("ChiSquare = %v, want 1", got)
	}
}

func TestChiSquareLSEWeighted(t *testing.T) {
	curve := []float32{0, 0}
	data := []float32{1, 1}
	weights := []float32{2, 3}

	got, err := ChiSquare(LSE, curve, data, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// deviant=-1 at both points, squared=1, weighted sum = 2+3 = 5.
	if got != 5 {
		t.Errorf("ChiSquare = %v, want 5", got)
	}
}

func TestChiSquareMLENegativeCurve(t *testing.T) {
	curve := []float32{1, -0.5}
	data := []float32{1, 2}

	_, err := ChiSquare(MLE, curve, data, nil)
	if err != ErrNegCurvatureMLE {
		t.Fatalf("ChiSquare under MLE with a non-positive curve value = %v, want ErrNegCurvatureMLE", err)
	}
}

func TestChiSquareMLEExactMatch(t *testing.T) {
	curve := []float32{5, 5}
	data := []float32{5, 5}

	got, err := ChiSquare(MLE, curve, data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("ChiSquare = %v, want 0 for an exact fit", got)
	}
}

func TestGradientMasking(t *testing.T) {
	nPoints := 2
	// two parameters, second one masked out of the fit.
	derivatives := []float32{1, 1, 2, 2}
	curve := []float32{0, 0}
	data := []float32{1, 1}
	fitMask := []bool{true, false}

	g := Gradient(LSE, derivatives, nPoints, curve, data, nil, fitMask)
	if len(g) != 1 {
		t.Fatalf("len(gradient) = %d, want 1", len(g))
	}
	// deviant=1 at both points, derivative row 0 is [1,1], sum = 1*1+1*1 = 2.
	if g[0] != 2 {
		t.Errorf("gradient[0] = %v, want 2", g[0])
	}
}

func TestHessianSymmetric(t *testing.T) {
	nPoints := 2
	derivatives := []float32{1, 2, 3, 4}
	curve := []float32{1, 1}
	data := []float32{1, 1}
	fitMask := []bool{true, true}

	h := linalg.NewMatrix(CountFree(fitMask))
	Hessian(LSE, derivatives, nPoints, curve, data, nil, fitMask, h)

	if h.At(0, 1) != h.At(1, 0) {
		t.Errorf("Hessian is not symmetric: H[0][1]=%v H[1][0]=%v", h.At(0, 1), h.At(1, 0))
	}
	// H[0][0] = sum(deriv0^2) = 1+4 = 5.
	if h.At(0, 0) != 5 {
		t.Errorf("H[0][0] = %v, want 5", h.At(0, 0))
	}
	// H[1][1] = sum(deriv1^2) = 9+16 = 25.
	if h.At(1, 1) != 25 {
		t.Errorf("H[1][1] = %v, want 25", h.At(1, 1))
	}
	// H[0][1] = sum(deriv0*deriv1) = 1*3+2*4 = 11.
	if h.At(0, 1) != 11 {
		t.Errorf("H[0][1] = %v, want 11", h.At(0, 1))
	}
}

func TestCountFree(t *testing.T) {
	if got := CountFree([]bool{true, false, true, true}); got != 3 {
		t.Errorf("CountFree = %d, want 3", got)
	}
}
