// Package vector implements Dense, a fixed-length float64 vector that stores every element,
// together with the arithmetic that mixes it with sparse vectors and raw slices.
package vector

import (
	"fmt"
	"iter"

	"github.com/aouyang1/go-dmat/cursor"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/sparse"
)

// Dense is a vector whose elements are indexed 0..Len()-1. It exclusively owns its storage.
type Dense struct {
	elm []float64
}

func alloc(n int, op string) []float64 {
	fault.ThrowIf(n < 0, fault.ErrInvalidArgument, op, "length must be non-negative")
	return make([]float64, n)
}

// New returns an all-zero vector of length n.
func New(n int) *Dense {
	return &Dense{elm: alloc(n, "vector.New")}
}

// NewFromSlice returns a vector holding a copy of x.
func NewFromSlice(x []float64) *Dense {
	v := New(len(x))
	copy(v.elm, x)
	return v
}

// NewFromSparse returns the dense form of sv.
func NewFromSparse(sv *sparse.Vector) *Dense {
	v := &Dense{}
	v.SetSparse(sv)
	return v
}

// Copy returns a deep copy of v.
func (v *Dense) Copy() *Dense {
	return NewFromSlice(v.elm)
}

// Len returns the number of elements.
func (v *Dense) Len() int {
	return len(v.elm)
}

// RawData returns the backing slice. Writes through it are visible to v.
func (v *Dense) RawData() []float64 {
	return v.elm
}

func (v *Dense) checkRow(row int, op string) {
	if row < 0 || row >= len(v.elm) {
		fault.Throwf(fault.ErrOutOfRange, op, "row %d, length %d", row, len(v.elm))
	}
}

func (v *Dense) checkLen(n int, op string) {
	if n != len(v.elm) {
		fault.Throwf(fault.ErrShapeMismatch, op, "length %d, expected %d", n, len(v.elm))
	}
}

// At returns the element at row.
func (v *Dense) At(row int) float64 {
	v.checkRow(row, "vector.Dense.At")
	return v.elm[row]
}

// Set stores val at row.
func (v *Dense) Set(row int, val float64) {
	v.checkRow(row, "vector.Dense.Set")
	v.elm[row] = val
}

// AddAt adds val to the element at row.
func (v *Dense) AddAt(row int, val float64) {
	v.checkRow(row, "vector.Dense.AddAt")
	v.elm[row] += val
}

// MultiplyAt multiplies the element at row by val.
func (v *Dense) MultiplyAt(row int, val float64) {
	v.checkRow(row, "vector.Dense.MultiplyAt")
	v.elm[row] *= val
}

// Reform changes the length to n and zeroes every element.
func (v *Dense) Reform(n int) {
	if n == len(v.elm) {
		v.ZeroOut()
		return
	}
	v.elm = alloc(n, "vector.Dense.Reform")
}

// Resize changes the length to n, keeping the existing prefix and zero filling any growth.
func (v *Dense) Resize(n int) {
	fault.ThrowIf(n < 0, fault.ErrInvalidArgument, "vector.Dense.Resize", "can't resize to negative size")
	switch {
	case n == len(v.elm):
	case n < len(v.elm):
		v.elm = v.elm[:n:n]
	default:
		elm := make([]float64, n)
		copy(elm, v.elm)
		v.elm = elm
	}
}

// SetAll fills every element with val.
func (v *Dense) SetAll(val float64) {
	for i := range v.elm {
		v.elm[i] = val
	}
}

// ZeroOut sets every element to 0.
func (v *Dense) ZeroOut() {
	clear(v.elm)
}

// SetSparse reforms v to the length of sv and scatters its entries.
func (v *Dense) SetSparse(sv *sparse.Vector) {
	fault.ThrowIfNil(sv == nil, "vector.Dense.SetSparse", "sparse vector")
	v.Reform(sv.Len())
	for _, e := range sv.Entries() {
		v.elm[e.Index] = e.Value
	}
}

// CopyFrom makes v a copy of o.
func (v *Dense) CopyFrom(o *Dense) {
	fault.ThrowIfNil(o == nil, "vector.Dense.CopyFrom", "vector")
	v.SetSlice(o.elm)
}

// SetSlice makes v a copy of x.
func (v *Dense) SetSlice(x []float64) {
	if len(x) != len(v.elm) {
		v.elm = make([]float64, len(x))
	}
	copy(v.elm, x)
}

// IsZero reports whether every element is 0.
func (v *Dense) IsZero() bool {
	for _, x := range v.elm {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsSame reports whether v holds exactly the values of x.
func (v *Dense) IsSame(x []float64) bool {
	if len(x) != len(v.elm) {
		return false
	}
	for i, val := range v.elm {
		if val != x[i] {
			return false
		}
	}
	return true
}

// Values returns the (index, value) pairs for the requested indices in request order.
func (v *Dense) Values(idx []int) []sparse.Entry {
	res := make([]sparse.Entry, 0, len(idx))
	for _, i := range idx {
		v.checkRow(i, "vector.Dense.Values")
		res = append(res, sparse.Entry{Index: i, Value: v.elm[i]})
	}
	return res
}

// NonZeroRowNum returns the number of nonzero elements.
func (v *Dense) NonZeroRowNum() int {
	var count int
	for _, x := range v.elm {
		if x != 0 {
			count++
		}
	}
	return count
}

// NonZero returns the nonzero elements as ascending (index, value) pairs.
func (v *Dense) NonZero() []sparse.Entry {
	var res []sparse.Entry
	for i, x := range v.elm {
		if x != 0 {
			res = append(res, sparse.Entry{Index: i, Value: x})
		}
	}
	return res
}

// NonZeroRowNo returns the ascending indices of the nonzero elements.
func (v *Dense) NonZeroRowNo() []int {
	var res []int
	for i, x := range v.elm {
		if x != 0 {
			res = append(res, i)
		}
	}
	return res
}

// ToSparse returns the sparse form of v.
func (v *Dense) ToSparse() *sparse.Vector {
	return sparse.NewVectorFrom(len(v.elm), v.NonZero())
}

// Load zeroes v and then stores every pair. An index outside the vector is a fault and leaves
// v untouched.
func (v *Dense) Load(pairs []sparse.Entry) {
	for _, p := range pairs {
		v.checkRow(p.Index, "vector.Dense.Load")
	}
	v.ZeroOut()
	for _, p := range pairs {
		v.elm[p.Index] = p.Value
	}
}

// Next returns the first nonzero element at or after the cursor and moves the cursor past
// it. Once the end is reached it returns cursor.None and 0.
func (v *Dense) Next(c *cursor.Cursor) (int, float64) {
	ex := c.Get()
	for ; ex < len(v.elm); ex++ {
		if v.elm[ex] != 0 {
			break
		}
	}
	c.Set(ex + 1)
	if ex < len(v.elm) {
		return ex, v.elm[ex]
	}
	return cursor.None, 0
}

// NonZeroSeq yields the nonzero elements in ascending index order without allocating.
func (v *Dense) NonZeroSeq() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		var c cursor.Cursor
		for {
			ex, val := v.Next(&c)
			if ex == cursor.None {
				return
			}
			if !yield(ex, val) {
				return
			}
		}
	}
}

// Rbind appends the elements of o after the tail of v.
func (v *Dense) Rbind(o *Dense) {
	fault.ThrowIfNil(o == nil, "vector.Dense.Rbind", "vector")
	v.elm = append(v.elm[:len(v.elm):len(v.elm)], o.elm...)
}

// Polarize doubles the length of v. Each negative element is moved, negated, to the mirrored
// position in the new upper half, leaving 0 behind.
func (v *Dense) Polarize() {
	n := len(v.elm)
	v.Resize(2 * n)
	for ex := 0; ex < n; ex++ {
		if v.elm[ex] < 0 {
			v.elm[n+ex] = -v.elm[ex]
			v.elm[ex] = 0
		}
	}
}

func (v *Dense) String() string {
	return fmt.Sprintf("vector.Dense(%d)%v", len(v.elm), v.elm)
}
