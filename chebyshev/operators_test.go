package chebyshev

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospectral/chebadv/utils"
)

func TestDerivativeMatrix(t *testing.T) {
	// Known entries at N = 4
	{
		D, err := DerivativeMatrix(4)
		assert.NoError(t, err)
		expected := utils.NewMatrix(5, 5, []float64{
			0, 0, 0, 0, 0,
			1, 0, 0, 0, 0,
			0, 4, 0, 0, 0,
			3, 0, 6, 0, 0,
			0, 8, 0, 8, 0,
		})
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				assert.True(t, D.At(i, j) == expected.At(i, j))
			}
		}
	}
	// Row 0 is zero and the pattern is strictly lower triangular with
	// row-column parity odd, for a range of orders
	for _, N := range []int{1, 3, 6, 11} {
		D, err := DerivativeMatrix(N)
		assert.NoError(t, err)
		for j := 0; j <= N; j++ {
			assert.True(t, D.At(0, j) == 0)
		}
		for i := 0; i <= N; i++ {
			for j := 0; j <= N; j++ {
				if D.At(i, j) != 0 {
					assert.True(t, j < i && (i-j)%2 == 1)
				}
			}
		}
	}
	{
		_, err := DerivativeMatrix(0)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}
}

func TestDerivativeExactOnPolynomials(t *testing.T) {
	// Differentiating x^3 and x^5 spectrally reproduces 3x^2 and 5x^4 at the
	// collocation points to floating point precision
	var (
		N = 8
	)
	b, err := NewBasis(N)
	assert.NoError(t, err)
	D, err := DerivativeMatrix(N)
	assert.NoError(t, err)

	cases := []struct {
		u, du func(float64) float64
	}{
		{func(x float64) float64 { return x * x * x }, func(x float64) float64 { return 3 * x * x }},
		{func(x float64) float64 { return math.Pow(x, 5) }, func(x float64) float64 { return 5 * math.Pow(x, 4) }},
	}
	for _, tc := range cases {
		U := b.X.Copy().Apply(tc.u)
		uhat, err := b.Transform(U)
		assert.NoError(t, err)
		duhat := D.TransposeMulVec(uhat)
		dU, err := b.Reconstruct(duhat)
		assert.NoError(t, err)
		for j := 0; j <= N; j++ {
			assert.True(t, math.Abs(dU.AtVec(j)-tc.du(b.X.AtVec(j))) < 1.e-10)
		}
	}
}

func TestDerivativeSparseAgreesWithDense(t *testing.T) {
	for _, N := range []int{4, 10} {
		Dd, err := DerivativeMatrix(N)
		assert.NoError(t, err)
		Ds, err := DerivativeCSR(N)
		assert.NoError(t, err)
		for i := 0; i <= N; i++ {
			for j := 0; j <= N; j++ {
				assert.True(t, Dd.At(i, j) == Ds.At(i, j))
			}
		}
		v := utils.NewVector(N + 1)
		for k := 0; k <= N; k++ {
			v.Set(k, math.Sin(float64(k)+1))
		}
		a := ApplyTranspose(Ds, v)
		d := Dd.TransposeMulVec(v)
		for k := 0; k <= N; k++ {
			assert.True(t, near(a.AtVec(k), d.AtVec(k)))
		}
	}
	{
		_, err := DerivativeCSR(0)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}
}
