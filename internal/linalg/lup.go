package linalg

// Decompose factorizes a in place into its LUP form using Gaussian
// elimination with partial pivoting, the row-echelon construction the
// solver's Hessian decomposition relies on every iteration.
//
// pivot must have length a.N; it is overwritten with the row permutation
// (pivot[i] is the original row now occupying row i). On return, a's
// strict lower triangle holds L (implicit unit diagonal) and its upper
// triangle (including the diagonal) holds U.
//
// The pivoting tolerance is exactly zero: a pivot column is only singular
// if its largest remaining entry is exactly 0, matching the solver's own
// use of Tol = 0 rather than a numerical threshold. Decompose returns
// false the first time that happens, leaving a and pivot in a partially
// factorized state the caller must not use.
func Decompose(a *Matrix, pivot []int) bool {
	n := a.N
	for i := 0; i < n; i++ {
		pivot[i] = i
	}

	for i := 0; i < n; i++ {
		maxRow := i
		maxAbs := absf32(a.At(i, i))
		for r := i + 1; r < n; r++ {
			v := absf32(a.At(r, i))
			if v > maxAbs {
				maxAbs = v
				maxRow = r
			}
		}

		if maxAbs == 0 {
			return false
		}

		if maxRow != i {
			swapRows(a, i, maxRow)
			pivot[i], pivot[maxRow] = pivot[maxRow], pivot[i]
		}

		pivotVal := a.At(i, i)
		for j := i + 1; j < n; j++ {
			factor := a.At(j, i) / pivotVal
			a.Set(j, i, factor)
			for k := i + 1; k < n; k++ {
				a.Set(j, k, a.At(j, k)-factor*a.At(i, k))
			}
		}
	}

	return true
}

func swapRows(a *Matrix, i, j int) {
	n := a.N
	for k := 0; k < n; k++ {
		a.Data[i*n+k], a.Data[j*n+k] = a.Data[j*n+k], a.Data[i*n+k]
	}
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Solve solves (PA)x = b given a's factorized form and its pivot array.
// Forward substitution walks the unit-diagonal lower triangle, back
// substitution walks the upper triangle; both accumulate their running
// sums in float64 before the final downcast to float32, per the module's
// numerical contract.
func Solve(a *Matrix, pivot []int, b, x []float32) {
	n := a.N

	for i := 0; i < n; i++ {
		sum := float64(b[pivot[i]])
		for k := 0; k < i; k++ {
			sum -= float64(a.At(i, k)) * float64(x[k])
		}
		x[i] = float32(sum)
	}

	for i := n - 1; i >= 0; i-- {
		sum := float64(x[i])
		for k := i + 1; k < n; k++ {
			sum -= float64(a.At(i, k)) * float64(x[k])
		}
		x[i] = float32(sum / float64(a.At(i, i)))
	}
}

// Invert computes a's inverse into inv by solving against each column of
// the permuted identity in turn. a must already be factorized (see
// Decompose) and inv must be a fresh n x n matrix.
func Invert(a *Matrix, pivot []int, inv *Matrix) {
	n := a.N
	e := make([]float32, n)
	col := make([]float32, n)

	for j := 0; j < n; j++ {
		for k := range e {
			e[k] = 0
		}
		e[j] = 1

		Solve(a, pivot, e, col)

		for i := 0; i < n; i++ {
			inv.Set(i, j, col[i])
		}
	}
}
