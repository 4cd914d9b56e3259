package matrix

import (
	"errors"
	"fmt"
	"io"

	"github.com/aouyang1/go-dmat/binio"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/vector"
	"github.com/goccy/go-json"
)

var ErrColumnLength = errors.New("column length differs from # rows")

// WriteTo writes m as int32 colCount, int32 rowCount and then every column in the dense
// vector layout. Nil columns are written as zero vectors.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	bw := binio.NewWriter(w)
	m.Write(bw)
	return bw.Count(), bw.Err()
}

// Write appends m to bw.
func (m *Dense) Write(bw *binio.Writer) {
	bw.WriteInt(len(m.columns))
	bw.WriteInt(m.rows)
	for c := range m.columns {
		m.col(c).Write(bw)
	}
}

// ReadFrom replaces m with a matrix read in the WriteTo layout. On error m is unchanged.
func (m *Dense) ReadFrom(r io.Reader) (int64, error) {
	br := binio.NewReader(r)
	err := m.Read(br)
	return br.Count(), err
}

// Read replaces m with the next matrix from br. A locked matrix is a fault.
func (m *Dense) Read(br *binio.Reader) error {
	m.checkLock("matrix.Dense.Read")
	cols := br.ReadLength()
	rows := br.ReadLength()
	if err := br.Err(); err != nil {
		return fmt.Errorf("unable to read matrix header, %w", err)
	}

	// columns are appended as they arrive so a bogus count fails on the first missing column
	columns := make([]*vector.Dense, 0, min(cols, 64))
	for c := range cols {
		col, err := vector.Read(br)
		if err != nil {
			return fmt.Errorf("unable to read column %d, %w", c, err)
		}
		if col.Len() != rows {
			return fmt.Errorf("column %d has %d rows, expected %d, %w", c, col.Len(), rows, ErrColumnLength)
		}
		columns = append(columns, col)
	}
	m.setRows(rows)
	m.columns = columns
	return nil
}

// Read returns a new matrix read from br.
func Read(br *binio.Reader) (*Dense, error) {
	m := &Dense{}
	if err := m.Read(br); err != nil {
		return nil, err
	}
	return m, nil
}

type denseJSON struct {
	Rows    int             `json:"rows"`
	Cols    int             `json:"cols"`
	Columns []*vector.Dense `json:"columns"`
}

// MarshalJSON encodes m with nil columns as null.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(denseJSON{
		Rows:    m.rows,
		Cols:    len(m.columns),
		Columns: m.columns,
	})
}

func (m *Dense) UnmarshalJSON(b []byte) error {
	var d denseJSON
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	if d.Rows < 0 || d.Cols != len(d.Columns) {
		return fmt.Errorf("invalid shape (%d,%d) with %d columns, %w", d.Rows, d.Cols, len(d.Columns), fault.ErrShapeMismatch)
	}
	for c, col := range d.Columns {
		if col != nil && col.Len() != d.Rows {
			return fmt.Errorf("column %d has %d rows, expected %d, %w", c, col.Len(), d.Rows, ErrColumnLength)
		}
	}
	m.checkLock("matrix.Dense.UnmarshalJSON")
	m.setRows(d.Rows)
	m.columns = d.Columns
	return nil
}
