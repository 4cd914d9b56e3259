package matrix

import (
	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/sparse"
	"github.com/aouyang1/go-dmat/stats"
	"github.com/aouyang1/go-dmat/vector"
)

func (m *Dense) checkShape(rows, cols int, op string) {
	if rows != m.rows || cols != len(m.columns) {
		fault.Throwf(fault.ErrShapeMismatch, op, "(%d,%d) vs (%d,%d)", rows, cols, m.rows, len(m.columns))
	}
}

// AddMatrix accumulates coeff*o into m. Columns of o that are entirely zero are skipped and
// leave nil columns of m unallocated.
func (m *Dense) AddMatrix(o *Dense, coeff float64) {
	const op = "matrix.Dense.AddMatrix"
	fault.ThrowIfNil(o == nil, op, "matrix")
	m.checkShape(o.rows, len(o.columns), op)
	if coeff == 0 {
		return
	}
	for c, col := range o.columns {
		if col == nil || col.IsZero() {
			continue
		}
		m.colU(c).AddDense(col, coeff)
	}
}

// AddSparse accumulates coeff*sm into m, skipping the zero columns of sm.
func (m *Dense) AddSparse(sm *sparse.Matrix, coeff float64) {
	const op = "matrix.Dense.AddSparse"
	fault.ThrowIfNil(sm == nil, op, "sparse matrix")
	rows, cols := sm.Dims()
	m.checkShape(rows, cols, op)
	if coeff == 0 {
		return
	}
	for c := range m.columns {
		if sm.IsZero(c) {
			continue
		}
		m.colU(c).AddSparse(sm.Col(c), coeff)
	}
}

// each applies fn to every allocated column. Nil columns are left alone, so operations that
// would turn a zero into something else (AddConst) do not reach them.
func (m *Dense) each(fn func(col *vector.Dense)) {
	for _, col := range m.columns {
		if col != nil {
			fn(col)
		}
	}
}

// Multiply scales every element by val.
func (m *Dense) Multiply(val float64) {
	m.each(func(col *vector.Dense) { col.Multiply(val) })
}

// AddConst adds val to every element of the allocated columns.
func (m *Dense) AddConst(val float64) {
	m.each(func(col *vector.Dense) { col.AddConst(val) })
}

func (m *Dense) Square() {
	m.each((*vector.Dense).Square)
}

// Cut zeroes every element whose magnitude is below minAbs.
func (m *Dense) Cut(minAbs float64) {
	m.each(func(col *vector.Dense) { col.Cut(minAbs) })
}

func (m *Dense) ZeroOut() {
	m.each((*vector.Dense).ZeroOut)
}

// Normalize scales every column to unit L2 norm.
func (m *Dense) Normalize() {
	m.each(func(col *vector.Dense) { col.Normalize() })
}

// Normalize1 scales every column so that it sums to 1.
func (m *Dense) Normalize1() {
	m.each(func(col *vector.Dense) { col.Normalize1() })
}

func (m *Dense) Binarize() {
	m.each((*vector.Dense).Binarize)
}

func (m *Dense) Binarize1() {
	m.each((*vector.Dense).Binarize1)
}

// Max returns the largest element with its row and column. Each nil column competes with the
// value 0 at row 0 and the first column scanned always seeds the result, so ties go to the
// earliest column. An empty matrix returns 0 at (-1, -1).
func (m *Dense) Max() (val float64, row, col int) {
	row, col = -1, -1
	for c, v := range m.columns {
		localMax, localRow := 0.0, 0
		if v != nil {
			localMax, localRow = v.Max()
		}
		if col < 0 || localMax > val {
			val, row, col = localMax, localRow, c
		}
	}
	return val, row, col
}

// ScaleMatrix scales each column of m by the matching column of o. A nil column in o stands
// for a zero scale and zeroes the column of m.
func (m *Dense) ScaleMatrix(o *Dense, inverse bool) {
	const op = "matrix.Dense.ScaleMatrix"
	fault.ThrowIfNil(o == nil, op, "matrix")
	m.checkShape(o.rows, len(o.columns), op)
	for c, col := range m.columns {
		if col == nil {
			continue
		}
		if o.columns[c] == nil {
			col.ZeroOut()
			continue
		}
		col.Scale(o.columns[c], inverse)
	}
}

// ScaleVector scales every column of m by v.
func (m *Dense) ScaleVector(v *vector.Dense, inverse bool) {
	const op = "matrix.Dense.ScaleVector"
	fault.ThrowIfNil(v == nil, op, "vector")
	fault.ThrowIf(v.Len() != m.rows, fault.ErrShapeMismatch, op, "vector length differs from # rows")
	m.each(func(col *vector.Dense) { col.Scale(v, inverse) })
}

// Transpose returns a new matrix whose rows are the columns [colBegin, colEnd) of m. A
// negative colBegin selects every column. Only nonzero values are carried over, so explicit
// zeros come back as unallocated columns.
func (m *Dense) Transpose(colBegin, colEnd int) *Dense {
	n := len(m.columns)
	b, e := colBegin, colEnd
	if b < 0 {
		b, e = 0, n
	} else if b >= n || e < 0 || e > n || e-b <= 0 {
		fault.Throwf(fault.ErrOutOfRange, "matrix.Dense.Transpose", "column range error [%d,%d) of %d", colBegin, colEnd, n)
	}

	out := NewLazy(e-b, m.rows)
	for c := b; c < e; c++ {
		col := m.columns[c]
		if col == nil {
			continue
		}
		for r, val := range col.NonZeroSeq() {
			out.Set(c-b, r, val)
		}
	}
	return out
}

// TransposeFrom makes m the transpose of sm, visiting only the nonzero entries of sm.
func (m *Dense) TransposeFrom(sm *sparse.Matrix) {
	const op = "matrix.Dense.TransposeFrom"
	fault.ThrowIfNil(sm == nil, op, "sparse matrix")
	rows, cols := sm.Dims()
	m.Reform(cols, rows)
	for c := 0; c < cols; c++ {
		for r, val := range sm.Col(c).NonZeroSeq() {
			m.Set(c, r, val)
		}
	}
}

func (m *Dense) checkRowInvariant(op string) {
	for c, col := range m.columns {
		if col != nil && col.Len() != m.rows {
			fault.Throwf(fault.ErrInternalInvariant, op, "#row conflict in column %d: %d vs %d", c, col.Len(), m.rows)
		}
	}
}

// Rbind appends the rows of o below the rows of m. An empty m becomes a copy of o.
func (m *Dense) Rbind(o *Dense) {
	const op = "matrix.Dense.Rbind"
	m.checkLock(op)
	fault.ThrowIfNil(o == nil, op, "matrix")
	if m.rows == 0 || len(m.columns) == 0 {
		m.CopyFrom(o)
		return
	}
	fault.ThrowIf(len(o.columns) != len(m.columns), fault.ErrShapeMismatch, op, "#column must be the same")
	if m == o {
		o = o.Copy()
	}
	for c := range m.columns {
		if m.columns[c] == nil && o.IsZeroCol(c) {
			continue
		}
		m.colU(c).Rbind(o.col(c))
	}
	m.setRows(m.rows + o.rows)
	m.checkRowInvariant(op)
}

// UndoRbind removes the last n rows, reverting an Rbind of an n-row matrix. n <= 0 is a
// no-op.
func (m *Dense) UndoRbind(n int) {
	const op = "matrix.Dense.UndoRbind"
	m.checkLock(op)
	fault.ThrowIf(n > m.rows, fault.ErrOutOfRange, op, "#row is too small")
	if n <= 0 {
		return
	}
	rows := m.rows - n
	m.each(func(col *vector.Dense) { col.Resize(rows) })
	m.setRows(rows)
	m.checkRowInvariant(op)
}

// SelectCols makes column i of m a copy of column cols[i] of src, reshaping m when needed. A
// negative index yields a zero column when zeroNegative is set and is a fault otherwise. It
// returns the number of zero columns produced from negative indices.
func (m *Dense) SelectCols(src *Dense, cols []int, zeroNegative bool) int {
	const op = "matrix.Dense.SelectCols"
	fault.ThrowIfNil(src == nil, op, "matrix")
	for _, c := range cols {
		if c < 0 && zeroNegative {
			continue
		}
		if c < 0 || c >= len(src.columns) {
			fault.Throwf(fault.ErrOutOfRange, op, "invalid col# %d", c)
		}
	}
	if src == m {
		src = m.Copy()
	}
	if m.rows != src.rows || len(m.columns) != len(cols) {
		m.Reform(src.rows, len(cols))
	}

	var negative int
	for i, c := range cols {
		if c < 0 {
			m.colU(i).ZeroOut()
			negative++
			continue
		}
		m.colU(i).CopyFrom(src.col(c))
	}
	return negative
}

// Reduce keeps only the listed columns, in order. The indices must be strictly increasing.
func (m *Dense) Reduce(cols []int) {
	const op = "matrix.Dense.Reduce"
	m.checkLock(op)
	for i, c := range cols {
		m.checkCol(c, op)
		if i > 0 && c <= cols[i-1] {
			fault.Throw(fault.ErrInvalidArgument, op, "col#'s must be sorted")
		}
	}
	// cols[i] >= i, so each source is read before its slot is overwritten
	for i, c := range cols {
		m.columns[i] = m.columns[c]
	}
	m.ResizeCols(len(cols))
}

// SetColRange copies columns [srcCol0, srcCol0+col1-col0) of src into columns [col0, col1)
// of m.
func (m *Dense) SetColRange(col0, col1 int, src *Dense, srcCol0 int) {
	const op = "matrix.Dense.SetColRange"
	fault.ThrowIfNil(src == nil, op, "matrix")
	fault.ThrowIf(col0 < 0 || col1-col0 <= 0 || col1 > len(m.columns), fault.ErrOutOfRange, op, "requested columns are out of range")
	srcCol1 := srcCol0 + (col1 - col0)
	fault.ThrowIf(srcCol0 < 0 || srcCol1 > len(src.columns), fault.ErrOutOfRange, op, "requested columns are out of range in the input matrix")
	fault.ThrowIf(m.rows != src.rows, fault.ErrShapeMismatch, op, "#rows mismatch")

	copies := make([]*vector.Dense, 0, col1-col0)
	for c := srcCol0; c < srcCol1; c++ {
		copies = append(copies, src.col(c).Copy())
	}
	copy(m.columns[col0:col1], copies)
}

// Prod stores the product of m0 and m1 in m. Transposing m1 is not supported.
//
// Without m0Trans, column c of the result is the sum over k of m1[k][c] times column k of m0,
// the ordinary product m0*m1.
//
// With m0Trans every row of result column c holds the same value, the inner product of
// column c of m0 with column c of m1. This is not the general product of m0 transposed with
// m1; existing callers depend on it as is.
func (m *Dense) Prod(m0, m1 *Dense, m0Trans, m1Trans bool) {
	const op = "matrix.Dense.Prod"
	fault.ThrowIfNil(m0 == nil, op, "m0")
	fault.ThrowIfNil(m1 == nil, op, "m1")
	fault.ThrowIf(m1Trans, fault.ErrNotSupported, op, "transpose of the second matrix")
	fault.ThrowIf(m == m0 || m == m1, fault.ErrInvalidArgument, op, "output aliases an operand")

	if m0Trans {
		fault.ThrowIf(len(m1.columns) > len(m0.columns), fault.ErrOutOfRange, op, "# columns of m1 exceeds # columns of m0")
		fault.ThrowIf(len(m1.columns) > 0 && m0.rows != m1.rows, fault.ErrShapeMismatch, op, "# rows of m0 and m1 differ")
		m.Reform(len(m0.columns), len(m1.columns))
		for c := range m1.columns {
			val := m0.col(c).InnerProduct(m1.col(c))
			myv := m.colU(c)
			for r := 0; r < m.rows; r++ {
				myv.Set(r, val)
			}
		}
		return
	}

	fault.ThrowIf(len(m0.columns) != m1.rows, fault.ErrShapeMismatch, op, "# columns of m0 differs from # rows of m1")
	m.Reform(m0.rows, len(m1.columns))
	for c := range m1.columns {
		myv := m.colU(c)
		v1 := m1.col(c)
		for r1 := 0; r1 < v1.Len(); r1++ {
			myv.AddDense(m0.col(r1), v1.At(r1))
		}
	}
}

// AverageSdev writes the per-row mean across columns to avg and, when sdev is not nil, the
// per-row standard deviation sqrt(E[x^2] - E[x]^2) to sdev.
func (m *Dense) AverageSdev(avg, sdev *vector.Dense) {
	const op = "matrix.Dense.AverageSdev"
	fault.ThrowIfNil(avg == nil, op, "avg")
	avg.Reform(m.rows)
	if sdev != nil {
		sdev.Reform(m.rows)
	}
	if len(m.columns) == 0 {
		return
	}

	avg2 := vector.New(m.rows)
	for c := range m.columns {
		col := m.col(c)
		avg.AddDense(col, 1)
		if sdev != nil {
			sq := col.Copy()
			sq.Square()
			avg2.AddDense(sq, 1)
		}
	}
	n := float64(len(m.columns))
	avg.Divide(n)
	if sdev != nil {
		avg2.Divide(n)
		stats.Sdev(sdev.RawData(), avg.RawData(), avg2.RawData())
	}
}

// ToSparse reshapes out to the shape of m and loads the nonzero entries of every column.
func (m *Dense) ToSparse(out *sparse.Matrix) {
	fault.ThrowIfNil(out == nil, "matrix.Dense.ToSparse", "out")
	out.Reform(m.rows, len(m.columns))
	for c, col := range m.columns {
		if col == nil {
			continue
		}
		if pairs := col.NonZero(); len(pairs) > 0 {
			out.ColU(c).Load(pairs)
		}
	}
}
