package vector

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-dmat/binio"
	"github.com/goccy/go-json"
)

// WriteTo writes v as an int32 length followed by the raw float64 elements.
func (v *Dense) WriteTo(w io.Writer) (int64, error) {
	bw := binio.NewWriter(w)
	v.Write(bw)
	return bw.Count(), bw.Err()
}

// Write appends v to bw.
func (v *Dense) Write(bw *binio.Writer) {
	bw.WriteInt(len(v.elm))
	bw.WriteFloat64s(v.elm)
}

// ReadFrom replaces v with a vector read in the WriteTo layout.
func (v *Dense) ReadFrom(r io.Reader) (int64, error) {
	br := binio.NewReader(r)
	err := v.Read(br)
	return br.Count(), err
}

// Read replaces v with the next vector from br. On error v is left unchanged.
func (v *Dense) Read(br *binio.Reader) error {
	n := br.ReadLength()
	if err := br.Err(); err != nil {
		return fmt.Errorf("unable to read vector length, %w", err)
	}
	elm := br.ReadFloat64sN(n)
	if err := br.Err(); err != nil {
		return fmt.Errorf("unable to read %d vector elements, %w", n, err)
	}
	v.elm = elm
	return nil
}

// Read returns a new vector read from br.
func Read(br *binio.Reader) (*Dense, error) {
	v := &Dense{}
	if err := v.Read(br); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Dense) MarshalJSON() ([]byte, error) {
	if v.elm == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.elm)
}

func (v *Dense) UnmarshalJSON(b []byte) error {
	var elm []float64
	if err := json.Unmarshal(b, &elm); err != nil {
		return err
	}
	if elm == nil {
		elm = []float64{}
	}
	v.elm = elm
	return nil
}
