package linalg

import "math"

// Norm computes the Euclidean norm of v, accumulating the sum of squares
// in float64 before the final sqrt and downcast.
func Norm(v []float32) float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return float32(math.Sqrt(sum))
}

// Dot computes the dot product of a and b, accumulating in float64.
func Dot(a, b []float32) float32 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return float32(sum)
}

// MatVec computes out = a * v for a square matrix a, accumulating each
// entry's dot product in float64.
func MatVec(a *Matrix, v, out []float32) {
	n := a.N
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += float64(a.At(i, j)) * float64(v[j])
		}
		out[i] = float32(sum)
	}
}

// JacobianVec computes out = J * v where J is formed by selecting, from a
// flat parameter-major Jacobian (row p occupies jacobian[p*nPoints:(p+1)*nPoints]),
// only the rows named by rowOffsets (one offset per entry of v, already
// pre-multiplied by nPoints). This is the rectangular product the
// trust-region controller needs to project a free-parameter step back into
// sample space.
func JacobianVec(jacobian []float32, nPoints int, rowOffsets []int, v, out []float32) {
	sums := make([]float64, nPoints)
	for k, rowOffset := range rowOffsets {
		vk := float64(v[k])
		for i := 0; i < nPoints; i++ {
			sums[i] += float64(jacobian[rowOffset+i]) * vk
		}
	}
	for i := range out {
		out[i] = float32(sums[i])
	}
}
