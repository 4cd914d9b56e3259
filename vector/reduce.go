package vector

import (
	"math"

	"github.com/aouyang1/go-dmat/floatsunrolled"
	"github.com/aouyang1/go-dmat/sparse"
	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of the elements.
func (v *Dense) Sum() float64 {
	return floats.Sum(v.elm)
}

// AbsSum returns the sum of the element magnitudes.
func (v *Dense) AbsSum() float64 {
	return floats.Norm(v.elm, 1)
}

// SumAt returns the sum of the listed elements.
func (v *Dense) SumAt(idx []int) float64 {
	var sum float64
	for _, ex := range idx {
		v.checkRow(ex, "vector.Dense.SumAt")
		sum += v.elm[ex]
	}
	return sum
}

// AbsSumAt returns the sum of the magnitudes of the listed elements.
func (v *Dense) AbsSumAt(idx []int) float64 {
	var sum float64
	for _, ex := range idx {
		v.checkRow(ex, "vector.Dense.AbsSumAt")
		sum += math.Abs(v.elm[ex])
	}
	return sum
}

// SelfInnerProduct returns the sum of squares.
func (v *Dense) SelfInnerProduct() float64 {
	return floatsunrolled.SquareSum(v.elm)
}

// InnerProduct returns the dot product of v and o. A nil o yields 0.
func (v *Dense) InnerProduct(o *Dense) float64 {
	if o == nil {
		return 0
	}
	v.checkLen(o.Len(), "vector.Dense.InnerProduct")
	return floatsunrolled.Dot(v.elm, o.elm)
}

// InnerProductSparse returns the dot product of v and sv, visiting only the stored entries of
// sv. A nil sv yields 0.
func (v *Dense) InnerProductSparse(sv *sparse.Vector) float64 {
	if sv == nil || sv.NNZ() == 0 {
		return 0
	}
	v.checkLen(sv.Len(), "vector.Dense.InnerProductSparse")
	var prod float64
	for _, e := range sv.Entries() {
		if e.Value != 0 {
			prod += e.Value * v.elm[e.Index]
		}
	}
	return prod
}

// Max returns the largest element and its index. The first occurrence wins ties. An empty
// vector reports -1 at index -1; callers must check the index rather than the value.
func (v *Dense) Max() (float64, int) {
	maxVal, maxRow := -1.0, -1
	for ex, x := range v.elm {
		if maxRow < 0 || x > maxVal {
			maxVal, maxRow = x, ex
		}
	}
	return maxVal, maxRow
}

// Min returns the smallest element and its index. The first occurrence wins ties. An empty
// vector reports -1 at index -1.
func (v *Dense) Min() (float64, int) {
	minVal, minRow := -1.0, -1
	for ex, x := range v.elm {
		if minRow < 0 || x < minVal {
			minVal, minRow = x, ex
		}
	}
	return minVal, minRow
}

// MaxAt is Max restricted to the listed indices.
func (v *Dense) MaxAt(idx []int) (float64, int) {
	maxVal, maxRow := -1.0, -1
	for _, ex := range idx {
		v.checkRow(ex, "vector.Dense.MaxAt")
		if maxRow < 0 || v.elm[ex] > maxVal {
			maxVal, maxRow = v.elm[ex], ex
		}
	}
	return maxVal, maxRow
}

// MinAt is Min restricted to the listed indices.
func (v *Dense) MinAt(idx []int) (float64, int) {
	minVal, minRow := -1.0, -1
	for _, ex := range idx {
		v.checkRow(ex, "vector.Dense.MinAt")
		if minRow < 0 || v.elm[ex] < minVal {
			minVal, minRow = v.elm[ex], ex
		}
	}
	return minVal, minRow
}

// MaxAbs returns the largest magnitude, its index and the signed element holding it. An
// empty vector reports 0 at index 0.
func (v *Dense) MaxAbs() (absVal float64, row int, realVal float64) {
	absVal, row, realVal = -1, -1, -1
	for ex, x := range v.elm {
		a := math.Abs(x)
		if row < 0 || a > absVal {
			absVal, row, realVal = a, ex, x
		}
	}
	if row < 0 {
		return 0, 0, 0
	}
	return absVal, row, realVal
}
