// Package mat converts between the dmat types and gonum's mat types.
package mat

import (
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/vector"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies d into a new gonum matrix. gonum has no zero sized matrices, so an empty d
// yields an empty mat.Dense.
func ToGonum(d *matrix.Dense) *mat.Dense {
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	res := mat.NewDense(rows, cols, nil)
	for c := 0; c < cols; c++ {
		if d.IsNullCol(c) {
			continue
		}
		res.SetCol(c, d.Col(c).RawData())
	}
	return res
}

// FromGonum copies any gonum matrix into a column-array matrix.
func FromGonum(g mat.Matrix) *matrix.Dense {
	rows, cols := g.Dims()
	d := matrix.New(rows, cols)
	for c := 0; c < cols; c++ {
		col := d.ColU(c)
		mat.Col(col.RawData(), c, g)
	}
	return d
}

// VecToGonum copies v into a new gonum vector. An empty v yields an empty mat.VecDense.
func VecToGonum(v *vector.Dense) *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(v.Len(), append([]float64(nil), v.RawData()...))
}
