// Package grid builds rectangular evaluation meshes for plotting
// functions of two variables.
//
// A Mesh pairs two coordinate matrices the way numerical packages
// conventionally do: X1 varies along columns, X2 varies along rows, so
// position (i, j) of the mesh is the point (x1[j], x2[i]). Every matrix
// derived from one mesh shares those dimensions, which is what contour
// and surface plotters expect.
package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// It panics if n < 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Mesh holds the coordinate matrices of a rectangular grid. Both
// matrices have one row per x2 value and one column per x1 value.
type Mesh struct {
	X1 *mat.Dense
	X2 *mat.Dense
}

// Meshgrid expands the axis vectors x1 and x2 into coordinate matrices
// of len(x2) rows by len(x1) columns. Row i of X1 repeats x1, column j
// of X2 repeats x2. It panics if either vector is empty.
func Meshgrid(x1, x2 []float64) Mesh {
	r, c := len(x2), len(x1)
	m := Mesh{
		X1: mat.NewDense(r, c, nil),
		X2: mat.NewDense(r, c, nil),
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.X1.Set(i, j, x1[j])
			m.X2.Set(i, j, x2[i])
		}
	}
	return m
}

// Dims returns the number of rows and columns of the mesh.
func (m Mesh) Dims() (r, c int) {
	return m.X1.Dims()
}

// Points flattens the mesh row-major into an (r*c)x2 matrix of
// (x1, x2) pairs, one grid node per row. Row k of the result is the
// node at mesh position (k/c, k%c), so a vector of values computed
// from Points can be reshaped back onto the mesh with mat.NewDense.
func (m Mesh) Points() *mat.Dense {
	r, c := m.Dims()
	pts := mat.NewDense(r*c, 2, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			pts.Set(i*c+j, 0, m.X1.At(i, j))
			pts.Set(i*c+j, 1, m.X2.At(i, j))
		}
	}
	return pts
}
