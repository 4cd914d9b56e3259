package binio

import (
	"bytes"
	"io"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteInt(3)
	w.WriteInt(-7)
	w.WriteFloat64s([]float64{1.5, -0.0, math.Inf(1)})
	w.WriteBytes([]byte{0xab})
	require.Nil(t, w.Err())
	assert.Equal(t, int64(4+4+24+1), w.Count())

	// header is little endian
	assert.Equal(t, []byte{3, 0, 0, 0}, buf.Bytes()[:4])

	r := NewReader(&buf)
	assert.Equal(t, 3, r.ReadInt())
	assert.Equal(t, -7, r.ReadInt())
	x := make([]float64, 3)
	r.ReadFloat64s(x)
	assert.Equal(t, 1.5, x[0])
	assert.True(t, math.Signbit(x[1]))
	assert.True(t, math.IsInf(x[2], 1))
	b := make([]byte, 1)
	r.ReadBytes(b)
	require.Nil(t, r.Err())
	assert.Equal(t, byte(0xab), b[0])
	assert.Equal(t, int64(33), r.Count())
}

func TestReaderErrors(t *testing.T) {
	testData := map[string]struct {
		data []byte
		fn   func(r *Reader)
		err  error
	}{
		"short header": {
			data: []byte{1, 0},
			fn:   func(r *Reader) { r.ReadInt() },
			err:  io.ErrUnexpectedEOF,
		},
		"empty": {
			data: nil,
			fn:   func(r *Reader) { r.ReadInt() },
			err:  io.EOF,
		},
		"negative length": {
			data: []byte{0xff, 0xff, 0xff, 0xff},
			fn:   func(r *Reader) { r.ReadLength() },
			err:  ErrNegativeLength,
		},
		"short payload": {
			data: make([]byte, 12),
			fn:   func(r *Reader) { r.ReadFloat64s(make([]float64, 2)) },
			err:  io.ErrUnexpectedEOF,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(td.data))
			td.fn(r)
			require.NotNil(t, r.Err())
			assert.ErrorIs(t, r.Err(), td.err)

			// sticky
			assert.Equal(t, 0, r.ReadInt())
			assert.ErrorIs(t, r.Err(), td.err)
		})
	}
}

func TestWriterOverflow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteInt(math.MaxInt32 + 1)
	assert.ErrorIs(t, w.Err(), ErrIntOverflow)
	w.WriteInt(1)
	assert.Equal(t, 0, buf.Len())
}

// allocated returns the bytes allocated while running fn.
func allocated(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

func TestReadFloat64sN(t *testing.T) {
	x := make([]float64, 3*chunkSize+7)
	for i := range x {
		x[i] = float64(i) - 0.5
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteFloat64s(x)
	require.Nil(t, w.Err())

	r := NewReader(&buf)
	res := r.ReadFloat64sN(len(x))
	require.Nil(t, r.Err())
	assert.Equal(t, x, res)
	assert.Equal(t, int64(8*len(x)), r.Count())

	r = NewReader(bytes.NewReader(nil))
	assert.Equal(t, []float64{}, r.ReadFloat64sN(0))
	require.Nil(t, r.Err())
}

func TestReadFloat64sNShortInput(t *testing.T) {
	testData := map[string]struct {
		data []byte
		n    int
		err  error
	}{
		"no payload": {
			data: nil,
			n:    math.MaxInt32,
			err:  io.EOF,
		},
		"partial payload": {
			data: make([]byte, 8*chunkSize+3),
			n:    1 << 28,
			err:  io.ErrUnexpectedEOF,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(td.data))
			var res []float64
			n := allocated(func() { res = r.ReadFloat64sN(td.n) })
			assert.Nil(t, res)
			assert.ErrorIs(t, r.Err(), td.err)
			assert.Less(t, n, uint64(1<<20))
		})
	}
}
