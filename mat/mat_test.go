package mat

import (
	"testing"

	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/vector"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	d := matrix.NewLazy(3, 2)
	d.Set(0, 1, 2)
	d.Set(2, 1, -1)

	g := ToGonum(d)
	expected := mat.NewDense(3, 2, []float64{
		0, 2,
		0, 0,
		0, -1,
	})
	assert.True(t, mat.Equal(expected, g))

	back := FromGonum(g)
	rows, cols := back.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.True(t, mat.Equal(d, back))

	tr := FromGonum(g.T())
	assert.True(t, mat.Equal(d.Transpose(-1, 0), tr))

	empty := ToGonum(matrix.New(0, 3))
	assert.True(t, empty.IsEmpty())
}

func TestVec(t *testing.T) {
	v := vector.NewFromSlice([]float64{1, -2, 3})
	g := VecToGonum(v)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, -2.0, g.AtVec(1))

	g.SetVec(0, 10)
	assert.Equal(t, 1.0, v.At(0), "gonum vector owns its data")

	assert.True(t, VecToGonum(vector.New(0)).IsEmpty())
}
