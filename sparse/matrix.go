package sparse

import (
	"github.com/aouyang1/go-dmat/fault"
)

// Matrix is a column-major sparse matrix, one sparse Vector per column.
type Matrix struct {
	rows    int
	columns []*Vector
}

// NewMatrix returns an all-zero sparse matrix.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{}
	m.Reform(rows, cols)
	return m
}

// Reform reshapes m, dropping every entry.
func (m *Matrix) Reform(rows, cols int) {
	fault.ThrowIf(rows < 0 || cols < 0, fault.ErrInvalidArgument, "sparse.Matrix.Reform", "# columns or rows must be non-negative")
	m.rows = rows
	m.columns = make([]*Vector, cols)
	for c := range m.columns {
		m.columns[c] = NewVector(rows)
	}
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) {
	return m.rows, len(m.columns)
}

func (m *Matrix) RowNum() int {
	return m.rows
}

func (m *Matrix) ColNum() int {
	return len(m.columns)
}

func (m *Matrix) checkCol(c int, op string) {
	if c < 0 || c >= len(m.columns) {
		fault.Throwf(fault.ErrOutOfRange, op, "column %d, # columns %d", c, len(m.columns))
	}
}

// Col returns column c for reading.
func (m *Matrix) Col(c int) *Vector {
	m.checkCol(c, "sparse.Matrix.Col")
	return m.columns[c]
}

// ColU returns column c for writing.
func (m *Matrix) ColU(c int) *Vector {
	m.checkCol(c, "sparse.Matrix.ColU")
	return m.columns[c]
}

// IsZero reports whether column c holds no nonzero value.
func (m *Matrix) IsZero(c int) bool {
	m.checkCol(c, "sparse.Matrix.IsZero")
	return m.columns[c].IsZero()
}

// NNZ returns the number of stored entries across all columns.
func (m *Matrix) NNZ() int {
	var n int
	for _, col := range m.columns {
		n += col.NNZ()
	}
	return n
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.Col(c).Get(r)
}

// Set stores val at row r, column c.
func (m *Matrix) Set(r, c int, val float64) {
	m.ColU(c).Set(r, val)
}
