//go:build cgo
// +build cgo

package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// With cgo available, route dense BLAS through netlib/OpenBLAS. The pure-Go
// gonum kernels remain the fallback for cgo-less builds.
func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
