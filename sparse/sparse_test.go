package sparse

import (
	"testing"

	"github.com/aouyang1/go-dmat/cursor"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorLoad(t *testing.T) {
	testData := map[string]struct {
		length   int
		pairs    []Entry
		err      error
		expected []Entry
	}{
		"unsorted input": {
			length:   5,
			pairs:    []Entry{{3, 1.5}, {0, -2}, {4, 7}},
			expected: []Entry{{0, -2}, {3, 1.5}, {4, 7}},
		},
		"empty": {
			length:   3,
			pairs:    nil,
			expected: []Entry{},
		},
		"out of range": {
			length: 3,
			pairs:  []Entry{{3, 1}},
			err:    fault.ErrOutOfRange,
		},
		"negative index": {
			length: 3,
			pairs:  []Entry{{-1, 1}},
			err:    fault.ErrOutOfRange,
		},
		"duplicate": {
			length: 3,
			pairs:  []Entry{{1, 1}, {1, 2}},
			err:    fault.ErrInvalidArgument,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			v := NewVector(td.length)
			err := fault.Catch(func() { v.Load(td.pairs) })
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, len(td.expected), v.NNZ())
			for i, e := range td.expected {
				assert.Equal(t, e, v.Entries()[i])
			}
		})
	}
}

func TestVectorSetGet(t *testing.T) {
	v := NewVector(6)
	v.Set(4, 2)
	v.Set(1, 3)
	v.Set(5, 0)
	v.Set(1, 9)
	assert.Equal(t, []Entry{{1, 9}, {4, 2}}, v.Entries())
	assert.Equal(t, 9.0, v.Get(1))
	assert.Equal(t, 0.0, v.Get(0))

	v.Set(4, 0)
	assert.Equal(t, 2, v.NNZ())
	assert.False(t, v.IsZero())
	v.Compact()
	assert.Equal(t, []Entry{{1, 9}}, v.Entries())

	err := fault.Catch(func() { v.Get(6) })
	assert.ErrorIs(t, err, fault.ErrOutOfRange)
}

func TestVectorNext(t *testing.T) {
	v := NewVectorFrom(8, []Entry{{1, 1}, {2, 0}, {5, -3}})

	var c cursor.Cursor
	idx, val := v.Next(&c)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1.0, val)

	// an independent scan is unaffected
	var other cursor.Cursor
	idx, _ = v.Next(&other)
	assert.Equal(t, 1, idx)

	idx, val = v.Next(&c)
	assert.Equal(t, 5, idx)
	assert.Equal(t, -3.0, val)

	idx, val = v.Next(&c)
	assert.Equal(t, cursor.None, idx)
	assert.Equal(t, 0.0, val)

	var got []Entry
	for i, x := range v.NonZeroSeq() {
		got = append(got, Entry{i, x})
	}
	assert.Equal(t, []Entry{{1, 1}, {5, -3}}, got)
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(3, 2)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.True(t, m.IsZero(0))

	m.Set(2, 1, 4)
	assert.Equal(t, 4.0, m.At(2, 1))
	assert.Equal(t, 1, m.NNZ())
	assert.False(t, m.IsZero(1))

	err := fault.Catch(func() { m.Col(2) })
	assert.ErrorIs(t, err, fault.ErrOutOfRange)

	err = fault.Catch(func() { m.Reform(-1, 2) })
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}
