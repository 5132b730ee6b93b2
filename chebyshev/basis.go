package chebyshev

import (
	"errors"
	"fmt"
	"math"

	"github.com/gospectral/chebadv/utils"
)

var (
	// ErrInvalidOrder is returned when a basis or operator is requested for a
	// polynomial truncation order below 1.
	ErrInvalidOrder = errors.New("polynomial order must be at least 1")
	// ErrDimensionMismatch is returned when a vector's length does not match
	// the N+1 size of the basis it is used with.
	ErrDimensionMismatch = errors.New("vector length does not match basis size")
)

// GaussLobatto returns the N+1 Chebyshev Gauss-Lobatto collocation points
// X_j = -cos(pi*j/N), j = 0..N, increasing from -1 to 1. Index 0 is always
// the x = -1 endpoint, which is where the inflow boundary condition applies.
func GaussLobatto(N int) (X utils.Vector, err error) {
	if N < 1 {
		err = fmt.Errorf("GaussLobatto: N = %d: %w", N, ErrInvalidOrder)
		return
	}
	x := make([]float64, N+1)
	for j := 0; j <= N; j++ {
		x[j] = -math.Cos(math.Pi * float64(j) / float64(N))
	}
	X = utils.NewVector(N+1, x)
	return
}

// Basis holds the collocation grid and the modal<->nodal operators for a
// truncated Chebyshev expansion of order N. V and Vinv are built once and
// shared read-only by every solver run at the same order.
type Basis struct {
	N    int
	X    utils.Vector // Gauss-Lobatto nodes
	V    utils.Matrix // V[i][k] = T_k(X_i)
	Vinv utils.Matrix
}

func NewBasis(N int) (b *Basis, err error) {
	var (
		X utils.Vector
	)
	if X, err = GaussLobatto(N); err != nil {
		return
	}
	V := utils.NewMatrix(N+1, N+1)
	for k := 0; k <= N; k++ {
		V.SetCol(k, ChebyshevT(X, k))
	}
	Vinv, err := V.Inverse()
	if err != nil {
		// The Chebyshev Vandermonde at distinct Gauss-Lobatto nodes is
		// invertible; conditioning degrades at large N but stays well clear
		// of singular for the orders this solver targets.
		err = fmt.Errorf("NewBasis: N = %d: %w", N, err)
		return
	}
	b = &Basis{
		N:    N,
		X:    X,
		V:    V.SetReadOnly("V"),
		Vinv: Vinv.SetReadOnly("Vinv"),
	}
	return
}

// ChebyshevT evaluates T_k at every entry of r via the three term recurrence
// T_k = 2x*T_{k-1} - T_{k-2}. The recurrence is the only sane evaluation path
// at high degree; expanding into monomial coefficients loses all accuracy.
func ChebyshevT(r utils.Vector, k int) (p []float64) {
	var (
		Nc = r.Len()
	)
	p = make([]float64, Nc)
	for i := range p {
		p[i] = 1
	}
	if k == 0 {
		return
	}
	pm1 := p
	p = make([]float64, Nc)
	for i := range p {
		p[i] = r.AtVec(i)
	}
	for n := 2; n <= k; n++ {
		pn := make([]float64, Nc)
		for i := range pn {
			pn[i] = 2*r.AtVec(i)*p[i] - pm1[i]
		}
		pm1, p = p, pn
	}
	return
}

// Transform projects nodal values at the Gauss-Lobatto points onto Chebyshev
// coefficients by discrete Gauss-Lobatto quadrature:
//
//	uhat_k = (2 / (N*c_k)) * sum_j U_j * T_k(X_j) / c_j
//
// with c_0 = c_N = 2 and c_k = 1 otherwise.
func (b *Basis) Transform(U utils.Vector) (uhat utils.Vector, err error) {
	var (
		N = b.N
	)
	if U.Len() != N+1 {
		err = fmt.Errorf("Transform: len(U) = %d, want %d: %w", U.Len(), N+1, ErrDimensionMismatch)
		return
	}
	uhat = utils.NewVector(N + 1)
	uhatD := uhat.RawVector().Data
	for k := 0; k <= N; k++ {
		var sum float64
		for j := 0; j <= N; j++ {
			sum += U.AtVec(j) * b.V.At(j, k) / lobattoC(j, N)
		}
		uhatD[k] = 2 * sum / (float64(N) * lobattoC(k, N))
	}
	return
}

// Reconstruct evaluates the truncated series at the collocation points,
// U_j = sum_k uhat_k * T_k(X_j). On the Gauss-Lobatto grid this inverts
// Transform to floating point precision.
func (b *Basis) Reconstruct(uhat utils.Vector) (U utils.Vector, err error) {
	if uhat.Len() != b.N+1 {
		err = fmt.Errorf("Reconstruct: len(uhat) = %d, want %d: %w", uhat.Len(), b.N+1, ErrDimensionMismatch)
		return
	}
	U = b.V.MulVec(uhat)
	return
}

// EvaluateAt evaluates the truncated series on an arbitrary sample set, e.g.
// a fine uniform grid for comparison against an analytic solution. Uses the
// Clenshaw recurrence per point.
func (b *Basis) EvaluateAt(uhat utils.Vector, x []float64) (u []float64, err error) {
	if uhat.Len() != b.N+1 {
		err = fmt.Errorf("EvaluateAt: len(uhat) = %d, want %d: %w", uhat.Len(), b.N+1, ErrDimensionMismatch)
		return
	}
	var (
		a = uhat.RawVector().Data
		N = b.N
	)
	u = make([]float64, len(x))
	for i, xi := range x {
		var b1, b2 float64
		for k := N; k >= 1; k-- {
			b1, b2 = 2*xi*b1-b2+a[k], b1
		}
		u[i] = a[0] + xi*b1 - b2
	}
	return
}

func lobattoC(k, N int) float64 {
	if k == 0 || k == N {
		return 2
	}
	return 1
}
