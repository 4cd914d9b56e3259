package array

import (
	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/sparse"
	"gonum.org/v1/gonum/floats"
)

// Array contains a 2D slice of data stored in column major order where the
// first slice in the stored slice is the first column of the dataset.
// e.g. [][]float64{{1.0, 2.0}, {1.0, 3.0}, {1.0, 4.0}} would be stored like so,
// {1.0, 1.0, 1.0, 2.0, 3.0, 4.0}.
type Array struct {
	arr []float64
	m   int
	n   int
}

// New returns an m x n array of zeros.
func New(m, n int) *Array {
	a := new(Array)
	a.Reform(m, n)
	return a
}

// New2D builds an array from row slices, each of which must have the same length.
func New2D(x [][]float64) *Array {
	m, n := derive2DShape(x)

	xArr := make([]float64, m*n)
	for i, row := range x {
		for j, val := range row {
			xArr[j*m+i] = val
		}
	}

	return &Array{
		arr: xArr,
		m:   m,
		n:   n,
	}
}

// NewFromMatrix flattens a column-array matrix. Nil columns become zeros.
func NewFromMatrix(d *matrix.Dense) *Array {
	fault.ThrowIfNil(d == nil, "array.NewFromMatrix", "matrix")
	m, n := d.Dims()
	a := New(m, n)
	for c := 0; c < n; c++ {
		if d.IsNullCol(c) {
			continue
		}
		copy(a.arr[c*m:(c+1)*m], d.Col(c).RawData())
	}
	return a
}

func derive2DShape(x [][]float64) (int, int) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			fault.Throwf(fault.ErrShapeMismatch, "array.New2D", "at row %d, %d columns, expected %d", i, len(row), n)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}
	return m, n
}

// Reform reshapes the array to m x n and zeroes every element.
func (a *Array) Reform(m, n int) {
	fault.ThrowIf(m < 0 || n < 0, fault.ErrInvalidArgument, "array.Array.Reform", "negative dimensions not allowed")
	if m*n == len(a.arr) {
		clear(a.arr)
	} else {
		a.arr = make([]float64, m*n)
	}
	a.m = m
	a.n = n
}

func (a *Array) Shape() (int, int) {
	return a.m, a.n
}

func (a *Array) Size() int {
	return len(a.arr)
}

func (a *Array) checkRow(r int, op string) {
	if r < 0 || r >= a.m {
		fault.Throwf(fault.ErrOutOfRange, op, "row %d, # rows %d", r, a.m)
	}
}

func (a *Array) checkCol(c int, op string) {
	if c < 0 || c >= a.n {
		fault.Throwf(fault.ErrOutOfRange, op, "column %d, # columns %d", c, a.n)
	}
}

// Get retrieves a single value in the array at a specific row and column
func (a *Array) Get(r, c int) float64 {
	const op = "array.Array.Get"
	a.checkRow(r, op)
	a.checkCol(c, op)
	return a.arr[r+c*a.m]
}

func (a *Array) Set(r, c int, val float64) {
	const op = "array.Array.Set"
	a.checkRow(r, op)
	a.checkCol(c, op)
	a.arr[r+c*a.m] = val
}

// GetCol returns a slice view of the specified column
func (a *Array) GetCol(c int) []float64 {
	a.checkCol(c, "array.Array.GetCol")
	return a.arr[c*a.m : (c+1)*a.m]
}

// GetRow returns a copy of the specified row
func (a *Array) GetRow(r int) []float64 {
	a.checkRow(r, "array.Array.GetRow")
	res := make([]float64, 0, a.n)
	for c := 0; c < a.n; c++ {
		res = append(res, a.arr[c*a.m+r])
	}
	return res
}

// RawData returns the column-major buffer.
func (a *Array) RawData() []float64 {
	return a.arr
}

func (a *Array) ToSlice() [][]float64 {
	m, n := a.Shape()
	res := make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
	}
	for i := 0; i < a.Size(); i++ {
		row := i % m
		col := i / m
		res[row][col] = a.arr[i]
	}
	return res
}

func (a *Array) T() *Array {
	m, n := a.Shape()
	arr := make([]float64, a.Size())
	for i := 0; i < a.Size(); i++ {
		row := i % m
		col := i / m
		arr[col+row*n] = a.arr[i]
	}
	return &Array{
		arr: arr,
		m:   n,
		n:   m,
	}
}

// Min returns the smallest element, or 0 for an empty array.
func (a *Array) Min() float64 {
	if len(a.arr) == 0 {
		return 0
	}
	return floats.Min(a.arr)
}

// Max returns the largest element, or 0 for an empty array.
func (a *Array) Max() float64 {
	if len(a.arr) == 0 {
		return 0
	}
	return floats.Max(a.arr)
}

func clamp(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}

// Truncate clamps every element into [lo, hi].
func (a *Array) Truncate(lo, hi float64) {
	if lo > hi {
		fault.Throwf(fault.ErrInvalidArgument, "array.Array.Truncate", "invalid range [%g,%g]", lo, hi)
	}
	for i, val := range a.arr {
		a.arr[i] = clamp(val, lo, hi)
	}
}

// Calibrate0 clamps every element into [lo, hi] and moves values within eps of a bound
// halfway towards bound+eps (or bound-eps for hi), so that no value sits on a bound.
func (a *Array) Calibrate0(lo, hi, eps float64) {
	if lo > hi || eps < 0 {
		fault.Throwf(fault.ErrInvalidArgument, "array.Array.Calibrate0", "invalid range [%g,%g] or eps %g", lo, hi, eps)
	}
	for i, val := range a.arr {
		val = clamp(val, lo, hi)
		switch {
		case val < lo+eps:
			val = (lo + eps + val) / 2
		case val > hi-eps:
			val = (hi - eps + val) / 2
		}
		a.arr[i] = val
	}
}

// FirstPositive returns the first row of column c holding a positive value together with
// that value. It returns -1, -1 when there is none.
func (a *Array) FirstPositive(c int) (int, float64) {
	for r, val := range a.GetCol(c) {
		if val > 0 {
			return r, val
		}
	}
	return -1, -1
}

// SetSparse reshapes the array to the shape of sm and scatters its nonzero entries.
func (a *Array) SetSparse(sm *sparse.Matrix) {
	fault.ThrowIfNil(sm == nil, "array.Array.SetSparse", "sparse matrix")
	m, n := sm.Dims()
	a.Reform(m, n)
	for c := 0; c < n; c++ {
		dst := a.arr[c*m : (c+1)*m]
		for r, val := range sm.Col(c).NonZeroSeq() {
			dst[r] = val
		}
	}
}

// ToMatrix returns the column-array form of the array.
func (a *Array) ToMatrix() *matrix.Dense {
	cols := make([][]float64, a.n)
	for c := range cols {
		cols[c] = a.arr[c*a.m : (c+1)*a.m]
	}
	if a.n == 0 {
		return matrix.New(a.m, 0)
	}
	return matrix.NewFromColumns(cols...)
}

// Append adds rows to the first array from the second and returns a new array
func Append(a, b *Array) *Array {
	const op = "array.Append"
	fault.ThrowIfNil(a == nil, op, "first array")
	fault.ThrowIfNil(b == nil, op, "second array")
	aM, aN := a.Shape()
	bM, bN := b.Shape()
	if aN != bN {
		fault.Throwf(fault.ErrShapeMismatch, op, "first array with %d columns, and second array with %d columns", aN, bN)
	}

	m := aM + bM
	size := a.Size() + b.Size()
	arr := make([]float64, size)
	for i := 0; i < size; i++ {
		row := i % m
		col := i / m
		if row < aM {
			arr[i] = a.arr[row+col*aM]
		} else {
			arr[i] = b.arr[row-aM+col*bM]
		}
	}
	return &Array{
		arr: arr,
		m:   m,
		n:   aN,
	}
}

// Extend expands the first array adding more columns with the second and return
// a new array
func Extend(a, b *Array) *Array {
	const op = "array.Extend"
	fault.ThrowIfNil(a == nil, op, "first array")
	fault.ThrowIfNil(b == nil, op, "second array")
	aM, aN := a.Shape()
	bM, bN := b.Shape()
	if aM != bM {
		fault.Throwf(fault.ErrShapeMismatch, op, "first array with %d rows, and second array with %d rows", aM, bM)
	}

	arr := make([]float64, 0, a.Size()+b.Size())
	arr = append(arr, a.arr...)
	arr = append(arr, b.arr...)

	return &Array{
		arr: arr,
		m:   aM,
		n:   aN + bN,
	}
}
