// Package linalg implements the dense linear-algebra kernel the solver
// runs on each iteration: LUP factorization with partial pivoting,
// triangular solve, explicit inversion, and the small vector primitives
// (Euclidean norm, matrix-vector product, dot product) the trust-region
// controller needs.
//
// Every matrix here is square, row-major, and stored as float32 to match
// the solver's per-iterate buffers; every accumulating loop sums in
// float64 before the final downcast. This is a numerical contract, not a
// performance choice — see the package tests for the values it protects.
package linalg

// Matrix is a dense, row-major, square matrix of float32 entries.
type Matrix struct {
	N    int
	Data []float32
}

// NewMatrix allocates an n x n matrix of zeros.
func NewMatrix(n int) *Matrix {
	return &Matrix{N: n, Data: make([]float32, n*n)}
}

// At returns A[i][j].
func (m *Matrix) At(i, j int) float32 {
	return m.Data[i*m.N+j]
}

// Set assigns A[i][j] = v.
func (m *Matrix) Set(i, j int, v float32) {
	m.Data[i*m.N+j] = v
}

// CopyFrom overwrites m's entries with src's. Both must share the same order.
func (m *Matrix) CopyFrom(src *Matrix) {
	copy(m.Data, src.Data)
}

// Zero resets every entry to 0.
func (m *Matrix) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}
