// Package matrix implements Dense, a column-major matrix stored as a sequence of dense column
// vectors. A nil column stands for an all-zero column of the matrix's row count and is only
// materialised when written to.
package matrix

import (
	"fmt"

	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/sparse"
	"github.com/aouyang1/go-dmat/vector"
	"gonum.org/v1/gonum/mat"
)

// Dense is a column-array matrix. It exclusively owns every non-nil column.
//
// A locked matrix rejects shape changes with fault.ErrLockedMutation. Locking is a
// cooperative protocol for callers holding columns obtained through Col or ColU.
type Dense struct {
	rows    int
	columns []*vector.Dense
	locked  bool

	// read-only stand-in for nil columns in internal reads
	zero *vector.Dense
}

var _ mat.Matrix = (*Dense)(nil)

// New returns a rows x cols matrix with every column allocated and zeroed.
func New(rows, cols int) *Dense {
	m := &Dense{}
	m.Reform(rows, cols)
	return m
}

// NewLazy returns a rows x cols zero matrix without allocating any column.
func NewLazy(rows, cols int) *Dense {
	fault.ThrowIf(rows < 0 || cols < 0, fault.ErrInvalidArgument, "matrix.NewLazy", "# columns or rows must be non-negative")
	return &Dense{
		rows:    rows,
		columns: make([]*vector.Dense, cols),
		zero:    vector.New(rows),
	}
}

// NewFromSparse returns the dense form of sm.
func NewFromSparse(sm *sparse.Matrix) *Dense {
	m := &Dense{}
	m.InitSparse(sm)
	return m
}

// NewFromColumns builds a matrix whose columns are copies of cols. Every column must have the
// same length.
func NewFromColumns(cols ...[]float64) *Dense {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	m := New(rows, len(cols))
	for c, x := range cols {
		if len(x) != rows {
			fault.Throwf(fault.ErrShapeMismatch, "matrix.NewFromColumns", "column %d has %d rows, expected %d", c, len(x), rows)
		}
		m.columns[c].SetSlice(x)
	}
	return m
}

// Lock forbids shape changes until Unlock is called.
func (m *Dense) Lock() {
	m.locked = true
}

func (m *Dense) Unlock() {
	m.locked = false
}

func (m *Dense) IsLocked() bool {
	return m.locked
}

func (m *Dense) checkLock(op string) {
	fault.ThrowIf(m.locked, fault.ErrLockedMutation, op, "matrix is locked")
}

func (m *Dense) checkCol(col int, op string) {
	if col < 0 || col >= len(m.columns) {
		fault.Throwf(fault.ErrOutOfRange, op, "column %d, # columns %d", col, len(m.columns))
	}
}

func (m *Dense) checkRow(row int, op string) {
	if row < 0 || row >= m.rows {
		fault.Throwf(fault.ErrOutOfRange, op, "row %d, # rows %d", row, m.rows)
	}
}

func (m *Dense) release() {
	m.columns = nil
	m.rows = 0
}

func (m *Dense) setRows(rows int) {
	m.rows = rows
	if m.zero == nil || m.zero.Len() != rows {
		m.zero = vector.New(rows)
	}
}

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (int, int) {
	return m.rows, len(m.columns)
}

func (m *Dense) RowNum() int {
	return m.rows
}

func (m *Dense) ColNum() int {
	return len(m.columns)
}

// T returns the transpose view required by mat.Matrix.
func (m *Dense) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Reform reshapes m into rows x cols with every column freshly allocated and zeroed. When the
// shape is unchanged the existing columns are zeroed in place.
func (m *Dense) Reform(rows, cols int) {
	const op = "matrix.Dense.Reform"
	m.checkLock(op)
	if rows == m.rows && cols == len(m.columns) {
		m.ZeroOut()
		return
	}
	fault.ThrowIf(rows < 0 || cols < 0, fault.ErrInvalidArgument, op, "# columns or rows must be non-negative")
	m.release()
	m.setRows(rows)
	m.columns = make([]*vector.Dense, cols)
	for c := range m.columns {
		m.columns[c] = vector.New(rows)
	}
}

// ResizeCols grows or shrinks the column list. New columns are zero vectors of the current
// row count; dropped columns are released.
func (m *Dense) ResizeCols(cols int) {
	const op = "matrix.Dense.ResizeCols"
	m.checkLock(op)
	if cols == len(m.columns) {
		return
	}
	fault.ThrowIf(cols < 0, fault.ErrInvalidArgument, op, "new # columns must be non-negative")

	old := len(m.columns)
	if cols < old {
		clear(m.columns[cols:])
		m.columns = m.columns[:cols:cols]
		return
	}
	columns := make([]*vector.Dense, cols)
	copy(columns, m.columns)
	for c := old; c < cols; c++ {
		columns[c] = vector.New(m.rows)
	}
	m.columns = columns
}

// Resize resizes the column list first and then every column to rows, keeping existing
// values.
func (m *Dense) Resize(rows, cols int) {
	const op = "matrix.Dense.Resize"
	m.checkLock(op)
	fault.ThrowIf(rows < 0 || cols < 0, fault.ErrInvalidArgument, op, "# columns or rows must be non-negative")
	m.ResizeCols(cols)
	if rows == m.rows {
		return
	}
	for _, col := range m.columns {
		if col != nil {
			col.Resize(rows)
		}
	}
	m.setRows(rows)
}

// CopyFrom makes m a deep copy of o.
func (m *Dense) CopyFrom(o *Dense) {
	const op = "matrix.Dense.CopyFrom"
	m.checkLock(op)
	fault.ThrowIfNil(o == nil, op, "matrix")
	if m == o {
		return
	}
	if m.rows != o.rows || len(m.columns) != len(o.columns) {
		m.release()
		m.setRows(o.rows)
		m.columns = make([]*vector.Dense, len(o.columns))
	}
	for c, col := range o.columns {
		if col == nil {
			m.columns[c] = vector.New(o.rows)
			continue
		}
		m.columns[c] = col.Copy()
	}
}

// Copy returns a deep copy of m. The copy is unlocked.
func (m *Dense) Copy() *Dense {
	c := &Dense{}
	c.CopyFrom(m)
	return c
}

// InitSparse makes m the dense form of sm.
func (m *Dense) InitSparse(sm *sparse.Matrix) {
	const op = "matrix.Dense.InitSparse"
	m.checkLock(op)
	fault.ThrowIfNil(sm == nil, op, "sparse matrix")
	rows, cols := sm.Dims()
	m.release()
	m.setRows(rows)
	m.columns = make([]*vector.Dense, cols)
	for c := range m.columns {
		m.columns[c] = vector.NewFromSparse(sm.Col(c))
	}
}

// Col returns column c for reading. A nil column is returned as a new zero vector, so writes
// through it never reach m.
func (m *Dense) Col(c int) *vector.Dense {
	m.checkCol(c, "matrix.Dense.Col")
	if m.columns[c] == nil {
		return vector.New(m.rows)
	}
	return m.columns[c]
}

// col is Col without the range check. Nil columns share m.zero, which callers only read.
func (m *Dense) col(c int) *vector.Dense {
	if m.columns[c] == nil {
		if m.zero == nil || m.zero.Len() != m.rows {
			m.zero = vector.New(m.rows)
		}
		return m.zero
	}
	return m.columns[c]
}

// ColU returns column c for writing, materialising it if it is nil.
func (m *Dense) ColU(c int) *vector.Dense {
	m.checkCol(c, "matrix.Dense.ColU")
	return m.colU(c)
}

func (m *Dense) colU(c int) *vector.Dense {
	if m.columns[c] == nil {
		m.columns[c] = vector.New(m.rows)
	}
	return m.columns[c]
}

// IsNullCol reports whether column c is unallocated.
func (m *Dense) IsNullCol(c int) bool {
	m.checkCol(c, "matrix.Dense.IsNullCol")
	return m.columns[c] == nil
}

// At returns the element at (row, col). A nil column yields 0 without allocating.
func (m *Dense) At(row, col int) float64 {
	const op = "matrix.Dense.At"
	m.checkCol(col, op)
	if m.columns[col] == nil {
		m.checkRow(row, op)
		return 0
	}
	return m.columns[col].At(row)
}

// Set stores val at (row, col), materialising a nil column.
func (m *Dense) Set(row, col int, val float64) {
	const op = "matrix.Dense.Set"
	m.checkCol(col, op)
	m.checkRow(row, op)
	m.colU(col).Set(row, val)
}

// AddAt adds val to (row, col). Adding 0 is a no-op.
func (m *Dense) AddAt(row, col int, val float64) {
	const op = "matrix.Dense.AddAt"
	m.checkCol(col, op)
	m.checkRow(row, op)
	if val == 0 {
		return
	}
	m.colU(col).AddAt(row, val)
}

// MultiplyAt multiplies (row, col) by val. A nil column stays nil.
func (m *Dense) MultiplyAt(row, col int, val float64) {
	const op = "matrix.Dense.MultiplyAt"
	m.checkCol(col, op)
	m.checkRow(row, op)
	if m.columns[col] == nil {
		return
	}
	m.columns[col].MultiplyAt(row, val)
}

// IsZero reports whether every column is nil or all zero.
func (m *Dense) IsZero() bool {
	for _, col := range m.columns {
		if col != nil && !col.IsZero() {
			return false
		}
	}
	return true
}

// IsZeroCol reports whether column c is nil or all zero.
func (m *Dense) IsZeroCol(c int) bool {
	m.checkCol(c, "matrix.Dense.IsZeroCol")
	return m.columns[c] == nil || m.columns[c].IsZero()
}

func (m *Dense) String() string {
	return fmt.Sprintf("matrix.Dense(%dx%d)", m.rows, len(m.columns))
}
