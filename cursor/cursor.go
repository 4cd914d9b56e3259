// Package cursor provides the caller-owned position used to walk the nonzero entries of a
// vector one call at a time. A cursor never belongs to the vector it scans, so any number of
// independent scans can run over the same read-only vector.
package cursor

// None is returned as the index once a scan is exhausted.
const None = -1

// Cursor is the position of a scan. The zero value starts at the beginning.
type Cursor struct {
	pos int
}

// Get returns the raw position, never below zero.
func (c *Cursor) Get() int {
	return max(c.pos, 0)
}

// Set moves the cursor to pos.
func (c *Cursor) Set(pos int) {
	c.pos = pos
}

// Reset rewinds to the beginning.
func (c *Cursor) Reset() {
	c.pos = 0
}
