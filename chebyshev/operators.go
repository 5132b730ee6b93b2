package chebyshev

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/gospectral/chebadv/utils"
)

// DerivativeMatrix builds the (N+1)x(N+1) spectral differentiation operator D
// from the Chebyshev derivative recurrence: row n holds the expansion of T'_n,
// with entries 2n at columns n-1, n-3, ..., and n (not 2n) at column 0 when n
// is odd. Row 0 is zero. Applied as its transpose, D maps a coefficient
// vector to the coefficients of its derivative.
func DerivativeMatrix(N int) (D utils.Matrix, err error) {
	if N < 1 {
		err = fmt.Errorf("DerivativeMatrix: N = %d: %w", N, ErrInvalidOrder)
		return
	}
	D = utils.NewMatrix(N+1, N+1)
	for n := 1; n <= N; n++ {
		for k := n - 1; k >= 0; k -= 2 {
			if k == 0 {
				D.Set(n, 0, float64(n))
			} else {
				D.Set(n, k, 2*float64(n))
			}
		}
	}
	D.SetReadOnly("D")
	return
}

// DerivativeCSR assembles the same operator in compressed sparse row form.
// The operator is strictly lower triangular with a checkerboard pattern, so
// only about a quarter of the entries are nonzero; the time loop applies it
// every step and walks just the stored entries.
func DerivativeCSR(N int) (D *sparse.CSR, err error) {
	if N < 1 {
		err = fmt.Errorf("DerivativeCSR: N = %d: %w", N, ErrInvalidOrder)
		return
	}
	dok := sparse.NewDOK(N+1, N+1)
	for n := 1; n <= N; n++ {
		for k := n - 1; k >= 0; k -= 2 {
			if k == 0 {
				dok.Set(n, 0, float64(n))
			} else {
				dok.Set(n, k, 2*float64(n))
			}
		}
	}
	D = dok.ToCSR()
	return
}

// ApplyTranspose computes Dᵗ·v without materializing the transpose,
// accumulating column-wise over the stored entries.
func ApplyTranspose(D *sparse.CSR, v utils.Vector) (R utils.Vector) {
	var (
		_, nc = D.Dims()
		vD    = v.RawVector().Data
	)
	R = utils.NewVector(nc)
	rD := R.RawVector().Data
	D.DoNonZero(func(i, j int, val float64) {
		rD[j] += val * vD[i]
	})
	return
}
