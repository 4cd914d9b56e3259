// Package sparse holds the compact representations consumed and produced by the dense
// containers: a vector stored as (index, value) entries sorted strictly by index, and a
// matrix stored as a sequence of such vectors.
package sparse

import (
	"cmp"
	"iter"
	"slices"

	"github.com/aouyang1/go-dmat/cursor"
	"github.com/aouyang1/go-dmat/fault"
)

// Entry is a single (index, value) pair.
type Entry struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Vector is a sparse vector of a fixed logical length. Entries are sorted ascending by index
// and no index appears twice. Entries holding zero may remain until Compact is called.
type Vector struct {
	length  int
	entries []Entry
}

// NewVector returns an empty sparse vector of the given length.
func NewVector(length int) *Vector {
	fault.ThrowIf(length < 0, fault.ErrInvalidArgument, "sparse.NewVector", "negative length")
	return &Vector{length: length}
}

// NewVectorFrom returns a sparse vector of the given length loaded with pairs.
func NewVectorFrom(length int, pairs []Entry) *Vector {
	v := NewVector(length)
	v.Load(pairs)
	return v
}

// Len returns the logical length.
func (v *Vector) Len() int {
	return v.length
}

// NNZ returns the number of stored entries.
func (v *Vector) NNZ() int {
	return len(v.entries)
}

// Entries returns the stored entries. The slice must not be modified.
func (v *Vector) Entries() []Entry {
	return v.entries
}

// Reform drops every entry and sets a new length.
func (v *Vector) Reform(length int) {
	fault.ThrowIf(length < 0, fault.ErrInvalidArgument, "sparse.Vector.Reform", "negative length")
	v.length = length
	v.entries = nil
}

func (v *Vector) checkIndex(idx int, op string) {
	if idx < 0 || idx >= v.length {
		fault.Throwf(fault.ErrOutOfRange, op, "index %d, length %d", idx, v.length)
	}
}

func (v *Vector) search(idx int) (int, bool) {
	return slices.BinarySearchFunc(v.entries, idx, func(e Entry, target int) int {
		return cmp.Compare(e.Index, target)
	})
}

// Get returns the value at idx.
func (v *Vector) Get(idx int) float64 {
	v.checkIndex(idx, "sparse.Vector.Get")
	pos, found := v.search(idx)
	if !found {
		return 0
	}
	return v.entries[pos].Value
}

// Set stores val at idx, inserting an entry in order when idx is not yet present.
func (v *Vector) Set(idx int, val float64) {
	v.checkIndex(idx, "sparse.Vector.Set")
	pos, found := v.search(idx)
	if found {
		v.entries[pos].Value = val
		return
	}
	if val == 0 {
		return
	}
	v.entries = slices.Insert(v.entries, pos, Entry{Index: idx, Value: val})
}

// Load replaces every entry with pairs. Pairs may arrive in any order but must be within
// range and unique.
func (v *Vector) Load(pairs []Entry) {
	const op = "sparse.Vector.Load"
	entries := slices.Clone(pairs)
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Index, b.Index)
	})
	for i, e := range entries {
		v.checkIndex(e.Index, op)
		if i > 0 && entries[i-1].Index == e.Index {
			fault.Throwf(fault.ErrInvalidArgument, op, "duplicate index %d", e.Index)
		}
	}
	v.entries = entries
}

// Compact removes stored zeros.
func (v *Vector) Compact() {
	v.entries = slices.DeleteFunc(v.entries, func(e Entry) bool {
		return e.Value == 0
	})
}

// IsZero reports whether every stored value is zero.
func (v *Vector) IsZero() bool {
	for _, e := range v.entries {
		if e.Value != 0 {
			return false
		}
	}
	return true
}

// Next returns the next nonzero entry after the cursor position and advances the cursor. At
// the end it returns cursor.None and 0.
func (v *Vector) Next(c *cursor.Cursor) (int, float64) {
	pos := c.Get()
	for ; pos < len(v.entries); pos++ {
		if v.entries[pos].Value != 0 {
			break
		}
	}
	c.Set(pos + 1)
	if pos < len(v.entries) {
		return v.entries[pos].Index, v.entries[pos].Value
	}
	return cursor.None, 0
}

// NonZeroSeq yields the nonzero entries in ascending index order.
func (v *Vector) NonZeroSeq() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		var c cursor.Cursor
		for {
			idx, val := v.Next(&c)
			if idx == cursor.None {
				return
			}
			if !yield(idx, val) {
				return
			}
		}
	}
}
