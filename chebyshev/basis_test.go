package chebyshev

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospectral/chebadv/utils"
)

func TestGaussLobatto(t *testing.T) {
	{
		X, err := GaussLobatto(2)
		assert.NoError(t, err)
		assert.Equal(t, 3, X.Len())
		assert.True(t, near(X.AtVec(0), -1))
		assert.True(t, near(X.AtVec(1), 0))
		assert.True(t, near(X.AtVec(2), 1))
	}
	// Strictly increasing, endpoints exact
	{
		X, err := GaussLobatto(16)
		assert.NoError(t, err)
		assert.True(t, near(X.AtVec(0), -1))
		assert.True(t, near(X.AtVec(16), 1))
		for j := 1; j <= 16; j++ {
			assert.True(t, X.AtVec(j) > X.AtVec(j-1))
		}
	}
	{
		_, err := GaussLobatto(0)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for _, N := range []int{4, 10, 20} {
		b, err := NewBasis(N)
		assert.NoError(t, err)

		// Arbitrary but deterministic coefficients
		uhat := utils.NewVector(N + 1)
		for k := 0; k <= N; k++ {
			uhat.Set(k, math.Pow(-1, float64(k))/float64(1+k))
		}
		U, err := b.Reconstruct(uhat)
		assert.NoError(t, err)
		back, err := b.Transform(U)
		assert.NoError(t, err)
		for k := 0; k <= N; k++ {
			assert.True(t, math.Abs(back.AtVec(k)-uhat.AtVec(k)) < 1.e-10)
		}
	}
}

func TestTransformBasisFunctions(t *testing.T) {
	// Nodal samples of T_k transform to the unit coefficient vector e_k
	var (
		N = 8
	)
	b, err := NewBasis(N)
	assert.NoError(t, err)
	for k := 0; k <= N; k++ {
		U := utils.NewVector(N+1, ChebyshevT(b.X, k))
		uhat, err := b.Transform(U)
		assert.NoError(t, err)
		for i := 0; i <= N; i++ {
			want := 0.
			if i == k {
				want = 1
			}
			assert.True(t, math.Abs(uhat.AtVec(i)-want) < 1.e-12)
		}
	}
}

func TestEvaluateAt(t *testing.T) {
	var (
		N = 10
	)
	b, err := NewBasis(N)
	assert.NoError(t, err)

	uhat := utils.NewVector(N + 1)
	for k := 0; k <= N; k++ {
		uhat.Set(k, 1/float64(1+k*k))
	}
	// At the collocation points, series evaluation matches Reconstruct
	{
		U, err := b.Reconstruct(uhat)
		assert.NoError(t, err)
		u, err := b.EvaluateAt(uhat, b.X.RawVector().Data)
		assert.NoError(t, err)
		for j := 0; j <= N; j++ {
			assert.True(t, math.Abs(u[j]-U.AtVec(j)) < 1.e-12)
		}
	}
	// Off grid, T_3 alone evaluates to cos(3*acos(x))
	{
		e3 := utils.NewVector(N + 1).Set(3, 1)
		u, err := b.EvaluateAt(e3, []float64{-0.7, 0.3, 0.9})
		assert.NoError(t, err)
		for i, xi := range []float64{-0.7, 0.3, 0.9} {
			assert.True(t, math.Abs(u[i]-math.Cos(3*math.Acos(xi))) < 1.e-12)
		}
	}
}

func TestDimensionChecks(t *testing.T) {
	b, err := NewBasis(4)
	assert.NoError(t, err)
	_, err = b.Transform(utils.NewVector(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = b.Reconstruct(utils.NewVector(7))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = b.EvaluateAt(utils.NewVector(2), []float64{0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = NewBasis(0)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(math.Abs(a)+1) {
		l = true
	}
	return
}
