// Package binio reads and writes the raw binary layout used to persist vectors and matrices:
// little-endian int32 headers followed by packed float64 payloads. Reader and Writer keep the
// first error they hit and turn every later call into a no-op, so a sequence of calls can be
// checked once at the end with Err.
package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrNegativeLength = errors.New("negative length in header")
	ErrIntOverflow    = errors.New("value does not fit in int32")
)

var order = binary.LittleEndian

// chunkSize is the number of float64 values decoded per read.
const chunkSize = 512

// Writer writes binary primitives to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	n   int64
	err error
	buf [8]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.n
}

func (w *Writer) WriteBytes(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err != nil {
		w.err = fmt.Errorf("unable to write %d bytes, %w", len(p), err)
	}
}

func (w *Writer) WriteInt(v int) {
	if w.err != nil {
		return
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		w.err = fmt.Errorf("%d, %w", v, ErrIntOverflow)
		return
	}
	order.PutUint32(w.buf[:4], uint32(int32(v)))
	w.WriteBytes(w.buf[:4])
}

// WriteFloat64s writes x as packed float64 values.
func (w *Writer) WriteFloat64s(x []float64) {
	if w.err != nil || len(x) == 0 {
		return
	}
	p := make([]byte, 8*len(x))
	for i, v := range x {
		order.PutUint64(p[8*i:], math.Float64bits(v))
	}
	w.WriteBytes(p)
}

// Reader reads binary primitives from an underlying io.Reader.
type Reader struct {
	r   io.Reader
	n   int64
	err error
	buf [8]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

// Count returns the number of bytes consumed so far.
func (r *Reader) Count() int64 {
	return r.n
}

func (r *Reader) ReadBytes(p []byte) {
	if r.err != nil {
		return
	}
	n, err := io.ReadFull(r.r, p)
	r.n += int64(n)
	if err != nil {
		r.err = fmt.Errorf("unable to read %d bytes, %w", len(p), err)
	}
}

func (r *Reader) ReadInt() int {
	if r.err != nil {
		return 0
	}
	r.ReadBytes(r.buf[:4])
	if r.err != nil {
		return 0
	}
	return int(int32(order.Uint32(r.buf[:4])))
}

// ReadLength reads an int32 header that must not be negative.
func (r *Reader) ReadLength() int {
	n := r.ReadInt()
	if r.err == nil && n < 0 {
		r.err = fmt.Errorf("%d, %w", n, ErrNegativeLength)
		return 0
	}
	return n
}

// ReadFloat64s fills x with packed float64 values.
func (r *Reader) ReadFloat64s(x []float64) {
	var chunk [chunkSize * 8]byte
	for len(x) > 0 && r.err == nil {
		k := min(len(x), chunkSize)
		r.ReadBytes(chunk[:8*k])
		if r.err != nil {
			return
		}
		for i := range k {
			x[i] = math.Float64frombits(order.Uint64(chunk[8*i:]))
		}
		x = x[k:]
	}
}

// ReadFloat64sN reads n packed float64 values. The result grows one chunk at a time, so a
// length header larger than the remaining input fails without allocating for the full count.
func (r *Reader) ReadFloat64sN(n int) []float64 {
	if r.err != nil {
		return nil
	}
	x := make([]float64, 0, min(n, chunkSize))
	for len(x) < n {
		k := min(n-len(x), chunkSize)
		x = append(x, make([]float64, k)...)
		r.ReadFloat64s(x[len(x)-k:])
		if r.err != nil {
			return nil
		}
	}
	return x
}
