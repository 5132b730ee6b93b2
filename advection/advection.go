// Package advection solves the linear advection equation du/dt + v*du/dx = 0
// on [-1,1] by Chebyshev collocation, with the inflow boundary at x = -1
// enforced either by a hard nodal reset after each step or by a continuous
// penalty (Gottlieb) relaxation term in the right hand side. Both policies
// advance the spectral coefficients with explicit Euler so they can be run
// side by side against the same initial data.
package advection

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"

	"github.com/gospectral/chebadv/chebyshev"
	"github.com/gospectral/chebadv/utils"
)

// BCType selects the boundary enforcement policy.
type BCType uint8

const (
	// HardReset steps with the plain advection right hand side, then round
	// trips through nodal space and overwrites the x = -1 node with g(t).
	HardReset BCType = iota
	// Penalty adds -alpha*Vinv*w to the right hand side, where w carries the
	// current boundary mismatch, relaxing the boundary value continuously.
	Penalty
)

func (bc BCType) String() string {
	switch bc {
	case HardReset:
		return "hard-reset"
	case Penalty:
		return "penalty"
	}
	return "unknown"
}

type (
	// ScalarFunc supplies u0(x) or g(t).
	ScalarFunc func(float64) float64
	// SpaceTimeFunc supplies the analytic solution ue(x,t), used only for
	// error reporting, never by the solver itself.
	SpaceTimeFunc func(x, t float64) float64
	// RHSFunc produces duhat/dt from the current state.
	RHSFunc func(t float64, uhat utils.Vector) utils.Vector
)

// InstabilityError reports a diverged run. The failing step index and the
// offending coefficients are kept for diagnosis; the run stops immediately
// rather than propagating garbage through further steps.
type InstabilityError struct {
	Step   int
	Time   float64
	Coeffs utils.Vector
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("solution diverged at step %d, t = %g: coefficients contain NaN or Inf", e.Step, e.Time)
}

type Advection struct {
	// Input parameters
	Speed, Alpha, FinalTime float64
	N, NSteps               int
	BC                      BCType

	U0 ScalarFunc    // initial condition u(x,0)
	G  ScalarFunc    // prescribed boundary value at x = -1
	UE SpaceTimeFunc // analytic solution, optional

	Basis *chebyshev.Basis
	D     *sparse.CSR // derivative operator, applied as its transpose

	// LogEvery > 0 prints a progress line every LogEvery steps.
	LogEvery int
	// OnStep, if set, is invoked after every accepted step.
	OnStep func(step int, t float64, uhat utils.Vector)
	// KeepHistory preallocates and fills History with a copy of the
	// coefficients at every step, index 0 being the initial projection.
	KeepHistory bool
	History     []utils.Vector

	// Run state
	Uhat utils.Vector
	Time float64
}

func NewAdvection(speed, alpha, finalTime float64, n, nSteps int, bc BCType, u0, g ScalarFunc) (c *Advection, err error) {
	var (
		basis *chebyshev.Basis
		d     *sparse.CSR
	)
	if nSteps < 1 {
		err = fmt.Errorf("NewAdvection: nSteps = %d, must be at least 1", nSteps)
		return
	}
	if finalTime <= 0 {
		err = fmt.Errorf("NewAdvection: finalTime = %g, must be positive", finalTime)
		return
	}
	if u0 == nil || g == nil {
		err = errors.New("NewAdvection: initial and boundary functions are required")
		return
	}
	if bc == Penalty && alpha <= 0 {
		err = fmt.Errorf("NewAdvection: penalty gain alpha = %g, must be positive", alpha)
		return
	}
	if basis, err = chebyshev.NewBasis(n); err != nil {
		return
	}
	if d, err = chebyshev.DerivativeCSR(n); err != nil {
		return
	}
	c = &Advection{
		Speed:     speed,
		Alpha:     alpha,
		FinalTime: finalTime,
		N:         n,
		NSteps:    nSteps,
		BC:        bc,
		U0:        u0,
		G:         g,
		Basis:     basis,
		D:         d,
	}
	return
}

// RHS produces duhat/dt for the configured policy. Pure in (t, uhat); the
// only other inputs are the read-only operators built at construction.
func (c *Advection) RHS(t float64, uhat utils.Vector) (rhs utils.Vector) {
	rhs = chebyshev.ApplyTranspose(c.D, uhat).Scale(-c.Speed)
	if c.BC == Penalty {
		// w is zero except at the boundary row: the mismatch between the
		// reconstructed x = -1 value and g(t), pulled back to coefficient
		// space through Vinv and scaled by the penalty gain.
		mismatch := c.Basis.V.Row(0).Dot(uhat) - c.G(t)
		w := utils.NewVector(uhat.Len()).Set(0, mismatch)
		rhs.Sub(c.Basis.Vinv.MulVec(w).Scale(c.Alpha))
	}
	return
}

// EulerStep advances one explicit Euler step, producing a fresh coefficient
// vector. Stability is the caller's concern: the plain operator's spectral
// radius grows like N^2 and the penalty policy adds an eigenvalue at -alpha.
func EulerStep(t float64, uhat utils.Vector, rhs RHSFunc, h float64) (utils.Vector, float64) {
	next := uhat.Copy().Add(rhs(t, uhat).Scale(h))
	return next, t + h
}

// Run integrates from t = 0 to FinalTime in NSteps uniform Euler steps.
// On divergence it returns an *InstabilityError carrying the failing step.
func (c *Advection) Run() (err error) {
	var (
		h = c.FinalTime / float64(c.NSteps)
		U = c.Basis.X.Copy().Apply(c.U0)
	)
	if c.Uhat, err = c.Basis.Transform(U); err != nil {
		return
	}
	c.Time = 0
	if c.KeepHistory {
		c.History = make([]utils.Vector, c.NSteps+1)
		c.History[0] = c.Uhat.Copy()
	}
	for step := 1; step <= c.NSteps; step++ {
		uhat, t := EulerStep(c.Time, c.Uhat, c.RHS, h)
		if c.BC == HardReset {
			if U, err = c.Basis.Reconstruct(uhat); err != nil {
				return
			}
			U.Set(0, c.G(t))
			if uhat, err = c.Basis.Transform(U); err != nil {
				return
			}
		}
		if !uhat.IsFinite() {
			return &InstabilityError{Step: step, Time: t, Coeffs: uhat}
		}
		c.Uhat, c.Time = uhat, t
		if c.KeepHistory {
			c.History[step] = uhat.Copy()
		}
		if c.OnStep != nil {
			c.OnStep(step, t, uhat)
		}
		if c.LogEvery > 0 && step%c.LogEvery == 0 {
			Un, _ := c.Basis.Reconstruct(uhat)
			fmt.Printf("Time = %8.4f, step = %5d, umin = %8.4f, umax = %8.4f\n",
				t, step, Un.Min(), Un.Max())
		}
	}
	return
}

// SampleSolution reconstructs the current state on an arbitrary sample grid.
func (c *Advection) SampleSolution(x []float64) ([]float64, error) {
	return c.Basis.EvaluateAt(c.Uhat, x)
}

// MaxError compares the current state against the analytic solution on the
// given sample grid and returns the maximum absolute pointwise error.
func (c *Advection) MaxError(x []float64) (maxErr float64, err error) {
	if c.UE == nil {
		err = errors.New("MaxError: no analytic solution configured")
		return
	}
	u, err := c.SampleSolution(x)
	if err != nil {
		return
	}
	for i, xi := range x {
		if e := math.Abs(u[i] - c.UE(xi, c.Time)); e > maxErr {
			maxErr = e
		}
	}
	return
}

// BoundaryMismatch returns |u(-1, t) - g(t)| for the current state, the
// quantity the penalty term drives toward zero.
func (c *Advection) BoundaryMismatch() float64 {
	return math.Abs(c.Basis.V.Row(0).Dot(c.Uhat) - c.G(c.Time))
}
