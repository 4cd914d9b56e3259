package vector

import (
	"math"

	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/floatsunrolled"
	"github.com/aouyang1/go-dmat/sparse"
	"gonum.org/v1/gonum/floats"
)

// AddConst adds val to every element.
func (v *Dense) AddConst(val float64) {
	floats.AddConst(val, v.elm)
}

// Multiply scales every element by val.
func (v *Dense) Multiply(val float64) {
	if val == 1 {
		return
	}
	floatsunrolled.ScaleTo(v.elm, val, v.elm)
}

// Divide divides every element by val.
func (v *Dense) Divide(val float64) {
	fault.ThrowIf(val == 0, fault.ErrInvalidArgument, "vector.Dense.Divide", "division by zero")
	if val == 1 {
		return
	}
	for i := range v.elm {
		v.elm[i] /= val
	}
}

// AddDense accumulates coeff*o into v.
func (v *Dense) AddDense(o *Dense, coeff float64) {
	const op = "vector.Dense.AddDense"
	fault.ThrowIfNil(o == nil, op, "vector")
	v.checkLen(o.Len(), op)
	v.addRaw(o.elm, coeff)
}

// AddRaw accumulates coeff*x into v. Only the nonzero entries of x are visited.
func (v *Dense) AddRaw(x []float64, coeff float64) {
	if x == nil {
		return
	}
	v.checkLen(len(x), "vector.Dense.AddRaw")
	v.addRaw(x, coeff)
}

func (v *Dense) addRaw(x []float64, coeff float64) {
	if coeff == 0 {
		return
	}
	if coeff == 1 {
		for i, val := range x {
			if val != 0 {
				v.elm[i] += val
			}
		}
		return
	}
	for i, val := range x {
		if val != 0 {
			v.elm[i] += val * coeff
		}
	}
}

// AddSparse accumulates coeff*sv into v, visiting only the stored entries of sv.
func (v *Dense) AddSparse(sv *sparse.Vector, coeff float64) {
	const op = "vector.Dense.AddSparse"
	fault.ThrowIfNil(sv == nil, op, "sparse vector")
	v.checkLen(sv.Len(), op)
	if coeff == 0 {
		return
	}
	for _, e := range sv.Entries() {
		if e.Value != 0 {
			v.elm[e.Index] += coeff * e.Value
		}
	}
}

// AddIndices adds val to every listed element. Each index is range checked before anything
// is modified.
func (v *Dense) AddIndices(val float64, idx []int) {
	for _, ex := range idx {
		v.checkRow(ex, "vector.Dense.AddIndices")
	}
	v.AddIndicesNoCheck(val, idx)
}

// AddIndicesNoCheck is AddIndices without the range check. The caller guarantees every index
// is valid.
func (v *Dense) AddIndicesNoCheck(val float64, idx []int) {
	for _, ex := range idx {
		v.elm[ex] += val
	}
}

// MaxAbsFrom replaces each element with max(v[i], |o[i]|).
func (v *Dense) MaxAbsFrom(o *Dense) {
	const op = "vector.Dense.MaxAbsFrom"
	fault.ThrowIfNil(o == nil, op, "vector")
	v.checkLen(o.Len(), op)
	for i, x := range o.elm {
		v.elm[i] = math.Max(v.elm[i], math.Abs(x))
	}
}

// AddAbs accumulates |o| into v.
func (v *Dense) AddAbs(o *Dense) {
	const op = "vector.Dense.AddAbs"
	fault.ThrowIfNil(o == nil, op, "vector")
	v.checkLen(o.Len(), op)
	for i, x := range o.elm {
		v.elm[i] += math.Abs(x)
	}
}

// Scale multiplies (or with inverse divides) each nonzero element of v by the matching
// element of o. A zero in o zeroes the element, so x/0 yields 0.
func (v *Dense) Scale(o *Dense, inverse bool) {
	const op = "vector.Dense.Scale"
	fault.ThrowIfNil(o == nil, op, "vector")
	v.checkLen(o.Len(), op)
	for i, x := range v.elm {
		if x == 0 {
			continue
		}
		s := o.elm[i]
		switch {
		case s == 0:
			v.elm[i] = 0
		case s == 1:
		case inverse:
			v.elm[i] = x / s
		default:
			v.elm[i] = x * s
		}
	}
}

// ScaleSparseMatrix scales the rows of every column of ms by v in place. Entries that become
// zero are dropped from the column.
func (v *Dense) ScaleSparseMatrix(ms *sparse.Matrix) {
	const op = "vector.Dense.ScaleSparseMatrix"
	fault.ThrowIfNil(ms == nil, op, "sparse matrix")
	fault.ThrowIf(ms.RowNum() != v.Len(), fault.ErrShapeMismatch, op, "#row mismatch")
	for col := 0; col < ms.ColNum(); col++ {
		if ms.IsZero(col) {
			continue
		}
		vs := ms.ColU(col)
		tmp := NewFromSparse(vs)
		tmp.Scale(v, false)
		vs.Load(tmp.NonZero())
	}
}

// Square squares every element.
func (v *Dense) Square() {
	floatsunrolled.MulTo(v.elm, v.elm, v.elm)
}

// Cut zeroes every element whose magnitude is strictly below minAbs.
func (v *Dense) Cut(minAbs float64) {
	for i, x := range v.elm {
		if math.Abs(x) < minAbs {
			v.elm[i] = 0
		}
	}
}

// Binarize maps positive elements to 1 and negative elements to -1.
func (v *Dense) Binarize() {
	for i, x := range v.elm {
		switch {
		case x > 0:
			v.elm[i] = 1
		case x < 0:
			v.elm[i] = -1
		}
	}
}

// Binarize1 maps every nonzero element to 1.
func (v *Dense) Binarize1() {
	for i, x := range v.elm {
		if x != 0 {
			v.elm[i] = 1
		}
	}
}

// Normalize divides v by its L2 norm when the norm is nonzero and returns the norm.
func (v *Dense) Normalize() float64 {
	norm := math.Sqrt(floatsunrolled.SquareSum(v.elm))
	if norm != 0 {
		for i := range v.elm {
			v.elm[i] /= norm
		}
	}
	return norm
}

// Normalize1 divides v by the sum of its elements when the sum is nonzero and returns the
// sum.
func (v *Dense) Normalize1() float64 {
	sum := v.Sum()
	if sum != 0 {
		for i := range v.elm {
			v.elm[i] /= sum
		}
	}
	return sum
}
