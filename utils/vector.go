package utils

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		R = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		R = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Copy() Vector {
	var (
		data  = v.V.RawVector().Data
		dataR = make([]float64, len(data))
	)
	copy(dataR, data)
	return NewVector(len(dataR), dataR)
}

// Chainable (extended) methods
func (v Vector) Add(a Vector) Vector { v.V.AddVec(v.V, a.V); return v }
func (v Vector) Sub(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Set(i int, val float64) Vector {
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Dot(a Vector) (d float64) {
	var (
		dataV = v.V.RawVector().Data
		dataA = a.V.RawVector().Data
	)
	for i, val := range dataV {
		d += val * dataA[i]
	}
	return
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}

// IsFinite reports whether every entry is a finite number. Used by the time
// loop to detect a blown-up solution before propagating it further.
func (v Vector) IsFinite() bool {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
